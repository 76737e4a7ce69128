package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxslion/algod/pkg/store"
	"github.com/maxslion/algod/pkg/types"
)

func newTestManager(t *testing.T) (*Manager, *store.TaskStore) {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewManager(s), s
}

func TestRegisterTask(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "data.csv")

	st, ok := m.GetTask("t1")
	require.True(t, ok)
	assert.Equal(t, types.StatusQueued, st.Status)
	assert.Equal(t, "SCM-WF02", st.SchemeCode)
	assert.Equal(t, 0, st.Percentage)
}

func TestRecordProgressRules(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	m.RecordProgress("t1", 40, "working")

	st, _ := m.GetTask("t1")
	assert.Equal(t, types.StatusRunning, st.Status)
	assert.Equal(t, 40, st.Percentage)

	// Percentage never decreases.
	m.RecordProgress("t1", 20, "stale")
	st, _ = m.GetTask("t1")
	assert.Equal(t, 40, st.Percentage)
	assert.Equal(t, "stale", st.Message)

	// A pending cancel keeps its status through progress updates.
	m.RequestCancel("t1", "Cancel requested")
	m.RecordProgress("t1", 60, "still going")
	st, _ = m.GetTask("t1")
	assert.Equal(t, types.StatusCancelRequested, st.Status)
	assert.Equal(t, 60, st.Percentage)

	// Terminal tasks ignore progress entirely.
	require.True(t, m.MarkFinished("t1", types.StatusCancelled, "Cancelled"))
	m.RecordProgress("t1", 99, "zombie")
	st, _ = m.GetTask("t1")
	assert.Equal(t, types.StatusCancelled, st.Status)
	assert.Equal(t, 100, st.Percentage)
}

func TestMarkFinishedFirstTerminalWins(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	assert.True(t, m.MarkFinished("t1", types.StatusSuccess, "Completed"))
	assert.False(t, m.MarkFinished("t1", types.StatusCancelled, "Cancelled"))

	st, _ := m.GetTask("t1")
	assert.Equal(t, types.StatusSuccess, st.Status)
}

func TestRequestCancelOnTerminalTask(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	m.MarkFinished("t1", types.StatusSuccess, "Completed")
	assert.False(t, m.RequestCancel("t1", "too late"))
	assert.False(t, m.IsCancelRequested("t1"))
}

func TestIsCancelRequested(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	assert.False(t, m.IsCancelRequested("t1"))

	m.RequestCancel("t1", "Cancel requested")
	assert.True(t, m.IsCancelRequested("t1"))

	m.MarkFinished("t1", types.StatusCancelled, "Cancelled")
	assert.True(t, m.IsCancelRequested("t1"))
}

func TestWatcherReceivesEventsInOrder(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	m.EnsureQueue("t1")
	for i := 1; i <= 3; i++ {
		m.Publish(types.ProgressEvent{TaskID: "t1", Percentage: i * 10, Message: "step", Timestamp: time.Now().UnixMilli()})
	}

	ch := m.RegisterWatcher("t1")
	defer m.CloseWatcher("t1")

	var got []int
	for i := 0; i < 3; i++ {
		select {
		case ev := <-ch:
			got = append(got, ev.Percentage)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for progress event")
		}
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestLateWatcherGetsSyntheticReplay(t *testing.T) {
	m, _ := newTestManager(t)

	m.RegisterTask("t1", "SCM-WF02", "")
	m.MarkFinished("t1", types.StatusSuccess, "Completed")

	// The task already completed and its channel is long gone; the watcher
	// still observes one event carrying the last known state.
	ch := m.RegisterWatcher("t1")
	defer m.CloseWatcher("t1")

	select {
	case ev := <-ch:
		assert.Equal(t, 100, ev.Percentage)
		assert.Equal(t, "Completed", ev.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a synthetic replay event")
	}
}

func TestDBWriterPersistsEvents(t *testing.T) {
	m, s := newTestManager(t)
	m.StartDBWriter()

	m.EnqueueDB(WriteEvent{Op: "start", TaskID: "t1", SchemeCode: "SCM-WF02", DataRef: "x"})
	m.EnqueueDB(WriteEvent{Op: "progress", TaskID: "t1", Percentage: 40, Message: "working", Status: types.StatusRunning})
	m.EnqueueDB(WriteEvent{Op: "finish", TaskID: "t1", Status: types.StatusSuccess, Message: "Completed"})
	m.Close()

	rec, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusSuccess, rec.Status)
	assert.Equal(t, 100, rec.Percentage)
	assert.Equal(t, "SCM-WF02", rec.SchemeCode)

	stats := m.DBStats()
	assert.Equal(t, int64(3), stats.Success)
	assert.Equal(t, int64(0), stats.Fail)
}

func TestDBWriterCountsFailures(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	m := NewManager(s)
	m.StartDBWriter()

	// Closing the store underneath the writer makes every apply fail; the
	// writer must drop the event and keep going rather than exit.
	require.NoError(t, s.Close())

	m.EnqueueDB(WriteEvent{Op: "finish", TaskID: "t1", Status: types.StatusFailed, Message: "Failed"})
	m.Close()

	stats := m.DBStats()
	assert.Equal(t, int64(1), stats.Fail)
	assert.NotEmpty(t, stats.LastError)
}

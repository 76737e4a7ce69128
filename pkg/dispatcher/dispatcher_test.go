package dispatcher

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxslion/algod/pkg/hardware"
	_ "github.com/maxslion/algod/pkg/plugins"
	"github.com/maxslion/algod/pkg/procmgr"
	"github.com/maxslion/algod/pkg/progress"
	"github.com/maxslion/algod/pkg/sink"
	"github.com/maxslion/algod/pkg/store"
	"github.com/maxslion/algod/pkg/types"
)

// fakeWorker scripts stand in for the real re-exec worker binary so the
// dispatcher's parent-side plumbing can be exercised without GPUs or a
// built algod binary.
func fakeWorker(taskID string) []string {
	lines := []string{
		`{"type":"progress","task_id":"` + taskID + `","percentage":50,"message":"Halfway","timestamp":1}`,
		`{"type":"progress","task_id":"` + taskID + `","percentage":100,"message":"Completed","timestamp":2}`,
		`{"type":"finish","task_id":"` + taskID + `","status":"SUCCESS","message":"Completed"}`,
		`{"type":"result","task_id":"` + taskID + `","status":"SUCCESS","data":{"ok":true}}`,
	}
	script := "read spec\n"
	for _, line := range lines {
		script += "printf '%s\\n' '" + line + "'\n"
	}
	return []string{"/bin/sh", "-c", script}
}

var stuckWorker = []string{"/bin/sh", "-c", "read spec; exec sleep 60"}

type fixture struct {
	disp      *Dispatcher
	progress  *progress.Manager
	store     *store.TaskStore
	pm        *procmgr.Manager
	resultDir string
}

func newFixture(t *testing.T, command []string) *fixture {
	t.Helper()

	taskStore, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { taskStore.Close() })

	progressMgr := progress.NewManager(taskStore)

	var disp *Dispatcher
	pm, err := procmgr.NewManager(procmgr.Config{MaxWorkers: 2, Command: command}, func(taskID string, line []byte) {
		disp.HandleWorkerLine(taskID, line)
	})
	require.NoError(t, err)
	t.Cleanup(func() { pm.Shutdown(true, true) })

	hw := hardware.NewManager(pm)
	t.Cleanup(hw.Shutdown)

	resultDir := t.TempDir()
	sinkClient, err := sink.NewClient(resultDir, "")
	require.NoError(t, err)
	t.Cleanup(sinkClient.Close)

	disp = New(hw, progressMgr, sinkClient, t.TempDir())
	return &fixture{disp: disp, progress: progressMgr, store: taskStore, pm: pm, resultDir: resultDir}
}

func (f *fixture) storedStatus(t *testing.T, taskID string) types.Status {
	t.Helper()
	rec, err := f.store.Get(taskID)
	require.NoError(t, err)
	return rec.Status
}

func (f *fixture) artifactStatus(t *testing.T, taskID string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(f.resultDir, taskID+".json"))
	require.NoError(t, err)
	var artifact map[string]any
	require.NoError(t, json.Unmarshal(raw, &artifact))
	return artifact["status"].(string)
}

func TestSubmitUnknownScheme(t *testing.T) {
	f := newFixture(t, fakeWorker("unused"))

	f.disp.Submit("t-unknown", "NOPE", "", nil)

	st, ok := f.progress.GetTask("t-unknown")
	require.True(t, ok)
	assert.Equal(t, types.StatusFailed, st.Status)

	f.progress.Close()
	assert.Equal(t, types.StatusFailed, f.storedStatus(t, "t-unknown"))
	assert.Equal(t, "FAILED", f.artifactStatus(t, "t-unknown"))
}

func TestHappyCPUPath(t *testing.T) {
	f := newFixture(t, fakeWorker("cpu-1"))

	f.disp.Submit("cpu-1", "SCM-WF03", "", nil)

	require.Eventually(t, func() bool {
		st, _ := f.progress.GetTask("cpu-1")
		return st.Status == types.StatusSuccess
	}, 5*time.Second, 20*time.Millisecond)

	// The progress channel carries the worker's events in producer order.
	ch := f.progress.RegisterWatcher("cpu-1")
	defer f.progress.CloseWatcher("cpu-1")
	first := <-ch
	assert.Equal(t, 50, first.Percentage)

	f.progress.Close()
	assert.Equal(t, types.StatusSuccess, f.storedStatus(t, "cpu-1"))
	assert.Equal(t, "SUCCESS", f.artifactStatus(t, "cpu-1"))
}

func TestCancelUnknownTask(t *testing.T) {
	f := newFixture(t, fakeWorker("unused"))

	res := f.disp.Cancel("ghost", false)
	assert.False(t, res.Accepted)
	assert.Equal(t, types.CancelStatusNotFound, res.Status)
}

func TestCancelFinishedTask(t *testing.T) {
	f := newFixture(t, fakeWorker("cpu-1"))

	f.disp.Submit("cpu-1", "SCM-WF03", "", nil)
	require.Eventually(t, func() bool {
		st, _ := f.progress.GetTask("cpu-1")
		return st.Status.Terminal()
	}, 5*time.Second, 20*time.Millisecond)

	res := f.disp.Cancel("cpu-1", false)
	assert.False(t, res.Accepted)
	assert.Equal(t, "Task already finished", res.Message)

	// Cancelling twice neither double-kills nor resurrects state.
	res = f.disp.Cancel("cpu-1", true)
	assert.False(t, res.Accepted)
	st, _ := f.progress.GetTask("cpu-1")
	assert.Equal(t, types.StatusSuccess, st.Status)
}

func TestForceCancelStuckTask(t *testing.T) {
	f := newFixture(t, stuckWorker)

	f.disp.Submit("cpu-stuck", "SCM-WF03", "", nil)
	require.Eventually(t, func() bool { return f.pm.IsRunning("cpu-stuck") }, 2*time.Second, 10*time.Millisecond)

	res := f.disp.Cancel("cpu-stuck", true)
	assert.True(t, res.Accepted)
	assert.Equal(t, types.CancelStatusCancelled, res.Status)

	require.Eventually(t, func() bool { return !f.pm.IsRunning("cpu-stuck") }, time.Second, 10*time.Millisecond)

	st, _ := f.progress.GetTask("cpu-stuck")
	assert.Equal(t, types.StatusCancelled, st.Status)

	f.progress.Close()
	assert.Equal(t, types.StatusCancelled, f.storedStatus(t, "cpu-stuck"))
	assert.Equal(t, "CANCELLED", f.artifactStatus(t, "cpu-stuck"))
}

func TestGracefulCancelEscalation(t *testing.T) {
	f := newFixture(t, stuckWorker)

	f.disp.Submit("cpu-term", "SCM-WF03", "", nil)
	require.Eventually(t, func() bool { return f.pm.IsRunning("cpu-term") }, 2*time.Second, 10*time.Millisecond)

	res := f.disp.Cancel("cpu-term", false)
	assert.True(t, res.Accepted)
	assert.Equal(t, types.CancelStatusTerminating, res.Status)

	// sleep dies on SIGTERM; the dispatcher's watcher observes the exit and
	// writes the terminal state.
	require.Eventually(t, func() bool {
		st, _ := f.progress.GetTask("cpu-term")
		return st.Status == types.StatusCancelled
	}, 5*time.Second, 50*time.Millisecond)
}

func TestCooperativeCancelFallback(t *testing.T) {
	f := newFixture(t, fakeWorker("unused"))

	// A registered task with no live subprocess and no future takes the
	// cooperative path.
	f.progress.RegisterTask("t-coop", "SCM-WF03", "")
	res := f.disp.Cancel("t-coop", false)
	assert.True(t, res.Accepted)
	assert.Equal(t, types.CancelStatusCancelRequested, res.Status)
	assert.True(t, f.progress.IsCancelRequested("t-coop"))
}

package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/maxslion/algod/api/proto"
	"github.com/maxslion/algod/pkg/dispatcher"
	"github.com/maxslion/algod/pkg/hardware"
	_ "github.com/maxslion/algod/pkg/plugins"
	"github.com/maxslion/algod/pkg/procmgr"
	"github.com/maxslion/algod/pkg/progress"
	"github.com/maxslion/algod/pkg/sink"
	"github.com/maxslion/algod/pkg/store"
	"github.com/maxslion/algod/pkg/types"
)

// newTestServer wires the full stack with a no-op shell worker so handlers
// can be exercised without a built algod binary.
func newTestServer(t *testing.T) (*Server, *progress.Manager, *store.TaskStore) {
	t.Helper()

	taskStore, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { taskStore.Close() })

	progressMgr := progress.NewManager(taskStore)

	var disp *dispatcher.Dispatcher
	command := []string{"/bin/sh", "-c", "read spec; exit 0"}
	pm, err := procmgr.NewManager(procmgr.Config{MaxWorkers: 1, Command: command}, func(taskID string, line []byte) {
		disp.HandleWorkerLine(taskID, line)
	})
	require.NoError(t, err)
	t.Cleanup(func() { pm.Shutdown(true, true) })

	hw := hardware.NewManager(pm)
	t.Cleanup(hw.Shutdown)

	sinkClient, err := sink.NewClient(t.TempDir(), "")
	require.NoError(t, err)
	t.Cleanup(sinkClient.Close)

	disp = dispatcher.New(hw, progressMgr, sinkClient, t.TempDir())
	return NewServer(disp, hw, taskStore, progressMgr), progressMgr, taskStore
}

func TestGetAvailableSchemes(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.GetAvailableSchemes(context.Background(), &pb.SchemeRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Schemes)

	seen := map[string]bool{}
	for _, scheme := range resp.Schemes {
		assert.NotEmpty(t, scheme.Code)
		assert.NotEmpty(t, scheme.Name)
		assert.Contains(t, []string{"CPU", "GPU"}, scheme.ResourceType)
		assert.False(t, seen[scheme.Code], "duplicate scheme code %s", scheme.Code)
		seen[scheme.Code] = true
	}
	assert.True(t, seen["SCM-WF02"])
}

func TestSubmitTaskAcknowledges(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.SubmitTask(context.Background(), &pb.TaskSubmission{
		TaskId:     "t1",
		SchemeCode: "NOPE",
		ParamsJson: `{"load_limit":0.7}`,
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestSubmitTaskToleratesBadParams(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.SubmitTask(context.Background(), &pb.TaskSubmission{
		TaskId:     "t2",
		SchemeCode: "NOPE",
		ParamsJson: "{not json",
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted, "params parse errors must not reject the submission")
}

func TestSubmitTaskGeneratesMissingID(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.SubmitTask(context.Background(), &pb.TaskSubmission{SchemeCode: "NOPE"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Contains(t, resp.Message, "Task accepted: ")
}

func TestCancelTaskNotFound(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.CancelTask(context.Background(), &pb.CancelRequest{TaskId: "ghost"})
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Equal(t, "NOT_FOUND", resp.Status)
}

func TestCheckHealth(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp, err := s.CheckHealth(context.Background(), &pb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, pb.HealthStatus_SERVING, resp.Status)
	assert.NotEmpty(t, resp.Metrics["device"])
	assert.Contains(t, []string{"available", "none"}, resp.Metrics["gpu"])
	assert.Contains(t, resp.Metrics, "db_write_ok")
}

func TestGetTaskStatus(t *testing.T) {
	s, _, taskStore := newTestServer(t)

	require.NoError(t, taskStore.UpsertStart("t1", "SCM-WF02", "x"))
	require.NoError(t, taskStore.Finish("t1", types.StatusSuccess, "Completed", ""))

	resp, err := s.GetTaskStatus(context.Background(), &pb.TaskQuery{TaskId: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.TaskId)
	assert.Equal(t, "SUCCESS", resp.Status)
	assert.Equal(t, int32(100), resp.Percentage)

	// Unknown tasks yield an empty status rather than an error.
	resp, err = s.GetTaskStatus(context.Background(), &pb.TaskQuery{TaskId: "ghost"})
	require.NoError(t, err)
	assert.Empty(t, resp.TaskId)
}

func TestListTasks(t *testing.T) {
	s, _, taskStore := newTestServer(t)

	require.NoError(t, taskStore.UpsertStart("t1", "SCM-WF02", ""))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, taskStore.UpsertStart("t2", "STM-WF01", ""))

	resp, err := s.ListTasks(context.Background(), &pb.TaskListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, "t2", resp.Tasks[0].TaskId, "newest first")
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "github.com/maxslion/algod/api/proto"
	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/dispatcher"
	"github.com/maxslion/algod/pkg/hardware"
	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/progress"
	"github.com/maxslion/algod/pkg/store"
	"github.com/maxslion/algod/pkg/types"
)

// watchIdleTimeout closes a progress stream that has seen no event for this
// long; the client may reconnect.
const watchIdleTimeout = 60 * time.Second

// Server implements the AlgoControlService gRPC service. It is a thin
// adapter over the dispatcher and the stores.
type Server struct {
	pb.UnimplementedAlgoControlServiceServer

	dispatcher *dispatcher.Dispatcher
	hw         *hardware.Manager
	taskStore  *store.TaskStore
	progress   *progress.Manager

	grpc   *grpc.Server
	logger zerolog.Logger
}

// NewServer creates the control service
func NewServer(disp *dispatcher.Dispatcher, hw *hardware.Manager, taskStore *store.TaskStore, progressMgr *progress.Manager) *Server {
	return &Server{
		dispatcher: disp,
		hw:         hw,
		taskStore:  taskStore,
		progress:   progressMgr,
		grpc:       grpc.NewServer(),
		logger:     log.WithComponent("api"),
	}
}

// Start starts the gRPC server on addr and blocks until it stops
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	pb.RegisterAlgoControlServiceServer(s.grpc, s)
	s.logger.Info().Str("addr", addr).Msg("AlgoControlService listening")
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server, bounded by the context deadline
func (s *Server) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpc.Stop()
	}
}

// GetAvailableSchemes returns every registered algorithm
func (s *Server) GetAvailableSchemes(ctx context.Context, req *pb.SchemeRequest) (*pb.SchemeList, error) {
	metas := algorithm.Schemes()
	schemes := make([]*pb.Scheme, 0, len(metas))
	for _, meta := range metas {
		schemes = append(schemes, &pb.Scheme{
			Code:         meta.Code,
			Name:         meta.Name,
			Description:  meta.Description,
			ResourceType: string(meta.ResourceType),
			Model:        meta.Model,
			ClassName:    meta.ClassName,
		})
	}
	return &pb.SchemeList{Schemes: schemes}, nil
}

// SubmitTask accepts a task and dispatches it asynchronously. A params_json
// parse error yields empty params, not a rejection. A missing task_id gets a
// generated one, echoed back in the acknowledgement message.
func (s *Server) SubmitTask(ctx context.Context, req *pb.TaskSubmission) (*pb.TaskSubmissionResponse, error) {
	params := map[string]any{}
	if req.ParamsJson != "" {
		if err := json.Unmarshal([]byte(req.ParamsJson), &params); err != nil {
			s.logger.Warn().Err(err).Str("task_id", req.TaskId).Msg("Ignoring malformed params_json")
			params = map[string]any{}
		}
	}

	taskID := req.TaskId
	if taskID == "" {
		taskID = uuid.New().String()
	}

	go s.dispatcher.Submit(taskID, req.SchemeCode, req.DataRef, params)
	return &pb.TaskSubmissionResponse{Accepted: true, Message: "Task accepted: " + taskID}, nil
}

// CancelTask delegates to the dispatcher's cancellation state machine
func (s *Server) CancelTask(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	res := s.dispatcher.Cancel(req.TaskId, req.Force)
	return &pb.CancelResponse{
		Accepted: res.Accepted,
		Message:  res.Message,
		Status:   string(res.Status),
	}, nil
}

// CheckHealth reports the device summary and DB writer counters
func (s *Server) CheckHealth(ctx context.Context, req *pb.HealthCheckRequest) (*pb.HealthStatus, error) {
	gpu := "none"
	if s.hw.HasGPU() {
		gpu = "available"
	}
	stats := s.progress.DBStats()
	return &pb.HealthStatus{
		Status: pb.HealthStatus_SERVING,
		Metrics: map[string]string{
			"device":        s.hw.DeviceInfo(),
			"gpu":           gpu,
			"db_write_ok":   strconv.FormatInt(stats.Success, 10),
			"db_write_fail": strconv.FormatInt(stats.Fail, 10),
		},
	}, nil
}

// WatchTaskProgress streams progress events until the task is terminal or
// the stream has been silent for the idle timeout.
func (s *Server) WatchTaskProgress(req *pb.ProgressRequest, stream grpc.ServerStreamingServer[pb.ProgressUpdate]) error {
	ch := s.progress.RegisterWatcher(req.TaskId)
	defer s.progress.CloseWatcher(req.TaskId)

	idle := time.NewTimer(watchIdleTimeout)
	defer idle.Stop()

	for {
		select {
		case ev := <-ch:
			if err := stream.Send(&pb.ProgressUpdate{
				TaskId:     ev.TaskID,
				Percentage: int32(ev.Percentage),
				Message:    ev.Message,
				Timestamp:  ev.Timestamp,
			}); err != nil {
				return err
			}
			st, _ := s.progress.GetTask(req.TaskId)
			if ev.Percentage >= 100 || st.Status.Terminal() {
				return nil
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(watchIdleTimeout)
		case <-idle.C:
			s.logger.Info().Str("task_id", req.TaskId).Msg("Watcher idle timeout, closing stream")
			return nil
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}

// ListTasks returns every stored task, newest first
func (s *Server) ListTasks(ctx context.Context, req *pb.TaskListRequest) (*pb.TaskList, error) {
	records, err := s.taskStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks := make([]*pb.TaskStatus, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, recordToProto(rec))
	}
	return &pb.TaskList{Tasks: tasks}, nil
}

// GetTaskStatus returns the stored state of one task. An unknown task yields
// an empty status, matching the store's last-known-state semantics.
func (s *Server) GetTaskStatus(ctx context.Context, req *pb.TaskQuery) (*pb.TaskStatus, error) {
	rec, err := s.taskStore.Get(req.TaskId)
	if errors.Is(err, store.ErrNotFound) {
		return &pb.TaskStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task %s: %w", req.TaskId, err)
	}
	return recordToProto(rec), nil
}

func recordToProto(rec *types.TaskRecord) *pb.TaskStatus {
	return &pb.TaskStatus{
		TaskId:       rec.TaskID,
		SchemeCode:   rec.SchemeCode,
		Status:       string(rec.Status),
		Percentage:   int32(rec.Percentage),
		Message:      rec.Message,
		ErrorMessage: rec.ErrorMessage,
		DataRef:      rec.DataRef,
		UpdatedAt:    rec.UpdatedAt,
	}
}

package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/hardware"
	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/metrics"
	"github.com/maxslion/algod/pkg/progress"
	"github.com/maxslion/algod/pkg/runner"
	"github.com/maxslion/algod/pkg/sink"
	"github.com/maxslion/algod/pkg/types"
	"github.com/maxslion/algod/pkg/worker"
)

const (
	// killWatchTimeout bounds how long a TERMINATING task may linger before
	// the dispatcher's watcher force-kills it.
	killWatchTimeout  = 10 * time.Second
	killWatchInterval = 500 * time.Millisecond
)

// Dispatcher is the entry point for every task submission. It selects the
// executor, wires the progress and cancellation plumbing, records the
// lifecycle, and owns the cancellation state machine.
type Dispatcher struct {
	hw       *hardware.Manager
	progress *progress.Manager
	sink     *sink.Client
	logDir   string

	mu      sync.Mutex
	futures map[string]*hardware.Future

	logger zerolog.Logger
}

// New creates a dispatcher over the given executors, progress manager and
// result sink.
func New(hw *hardware.Manager, progressMgr *progress.Manager, sinkClient *sink.Client, logDir string) *Dispatcher {
	return &Dispatcher{
		hw:       hw,
		progress: progressMgr,
		sink:     sinkClient,
		logDir:   logDir,
		futures:  make(map[string]*hardware.Future),
		logger:   log.WithComponent("dispatcher"),
	}
}

// Submit dispatches a task to the appropriate executor. Errors never reach
// the caller: every failure is mirrored as a FAILED terminal state in the
// progress manager, the store and the sink.
func (d *Dispatcher) Submit(taskID, schemeCode, dataRef string, params map[string]any) {
	metrics.TasksSubmitted.Inc()

	algo := algorithm.Get(schemeCode)
	if algo == nil {
		d.failFast(taskID, schemeCode, dataRef, fmt.Sprintf("Scheme %s not found", schemeCode))
		return
	}
	meta := algo.Meta()

	d.progress.StartDBWriter()
	d.progress.RegisterTask(taskID, schemeCode, dataRef)
	d.progress.EnsureQueue(taskID)
	d.progress.EnqueueDB(progress.WriteEvent{
		Op:         "start",
		TaskID:     taskID,
		SchemeCode: schemeCode,
		DataRef:    dataRef,
	})

	executor := d.hw.ExecutorFor(meta.ResourceType)
	switch exec := executor.(type) {
	case *hardware.ThreadPool:
		d.submitThread(exec, algo, taskID, dataRef, params)
	default:
		d.submitProcess(taskID, schemeCode, dataRef, params)
	}
}

// submitProcess hands the task to the process manager. There is no future
// handle for a subprocess; cancellation goes through the process manager.
func (d *Dispatcher) submitProcess(taskID, schemeCode, dataRef string, params map[string]any) {
	spec, err := json.Marshal(worker.JobSpec{
		TaskID:     taskID,
		SchemeCode: schemeCode,
		DataRef:    dataRef,
		Params:     params,
		LogDir:     d.logDir,
	})
	if err != nil {
		d.failSubmission(taskID, err)
		return
	}
	if err := d.hw.CPUPool().Submit(taskID, spec); err != nil {
		d.failSubmission(taskID, err)
	}
}

// submitThread runs the task on the in-process GPU pool and keeps the future
// so a cooperative cancel can stop a job that has not started yet.
func (d *Dispatcher) submitThread(pool *hardware.ThreadPool, algo algorithm.Algorithm, taskID, dataRef string, params map[string]any) {
	emitter := &managerEmitter{d: d}
	cancelled := func() bool { return d.progress.IsCancelRequested(taskID) }
	logger := log.WithTaskID(taskID)

	future := pool.Submit(func() {
		runner.Run(context.Background(), algo, taskID, dataRef, params, emitter, cancelled, logger)
	})

	d.mu.Lock()
	d.futures[taskID] = future
	d.mu.Unlock()

	go func() {
		<-future.Done()
		d.mu.Lock()
		delete(d.futures, taskID)
		d.mu.Unlock()
	}()
}

// HandleWorkerLine is the process manager's line handler: it forwards each
// worker IPC message into the progress manager and the result sink.
func (d *Dispatcher) HandleWorkerLine(taskID string, line []byte) {
	msg, err := worker.Decode(line)
	if err != nil {
		d.logger.Warn().Err(err).Str("task_id", taskID).Msg("Dropping malformed worker message")
		return
	}

	switch msg.Type {
	case worker.MsgProgress:
		d.progress.Publish(types.ProgressEvent{
			TaskID:     msg.TaskID,
			Percentage: msg.Percentage,
			Message:    msg.Message,
			Timestamp:  msg.Timestamp,
		})
	case worker.MsgFinish:
		if d.progress.MarkFinished(msg.TaskID, msg.Status, msg.Message) {
			d.progress.EnqueueDB(progress.WriteEvent{
				Op:           "finish",
				TaskID:       msg.TaskID,
				Status:       msg.Status,
				Message:      msg.Message,
				ErrorMessage: msg.ErrorMessage,
			})
		}
	case worker.MsgResult:
		d.sink.SendResult(msg.TaskID, msg.Status, msg.Data, msg.ErrorMessage)
	default:
		d.logger.Warn().Str("type", msg.Type).Str("task_id", taskID).Msg("Unknown worker message type")
	}
}

// Cancel requests cancellation of a task. With force the worker subprocess
// is killed immediately; otherwise cancellation is cooperative with a
// SIGTERM-then-SIGKILL escalation for CPU tasks.
func (d *Dispatcher) Cancel(taskID string, force bool) types.CancelResult {
	st, known := d.progress.GetTask(taskID)
	if known && st.Status.Terminal() {
		return types.CancelResult{
			Accepted: false,
			Message:  "Task already finished",
			Status:   types.CancelStatusFinished,
		}
	}

	// Thread branch: a GPU job that has not started yet can be cancelled
	// through its future. A running thread cannot be killed; it falls back
	// to the cooperative path below.
	d.mu.Lock()
	future := d.futures[taskID]
	d.mu.Unlock()
	if future != nil && future.Cancel() {
		d.markCancelled(taskID)
		return types.CancelResult{
			Accepted: true,
			Message:  "Cancelled before start",
			Status:   types.CancelStatusCancelled,
		}
	}

	// Process branch: a live subprocess is signalled directly.
	if d.hw.CPUPool().IsRunning(taskID) {
		res := d.hw.CPUPool().Cancel(taskID, force)
		switch res.Status {
		case types.CancelStatusKilled:
			d.markCancelled(taskID)
			return types.CancelResult{
				Accepted: true,
				Message:  res.Message,
				Status:   types.CancelStatusCancelled,
				PID:      res.PID,
			}
		case types.CancelStatusTerminating:
			d.progress.RequestCancel(taskID, "Cancel requested")
			d.enqueueCancelRequested(taskID)
			go d.watchTermination(taskID)
			return res
		case types.CancelStatusError:
			return res
		}
		// NOT_FOUND or FINISHED: the process went away between the check
		// and the signal; fall through to the cooperative path.
	}

	if !known {
		return types.CancelResult{
			Accepted: false,
			Message:  "Task not found",
			Status:   types.CancelStatusNotFound,
		}
	}

	// Cooperative fallback: the task is running in-process or has not been
	// picked up yet. The runner observes the flag at its next report; a
	// worker subprocess learns of it over its stdin.
	d.progress.RequestCancel(taskID, "Cancel requested")
	d.enqueueCancelRequested(taskID)
	d.hw.CPUPool().RequestCancel(taskID)
	return types.CancelResult{
		Accepted: true,
		Message:  "Cancel requested",
		Status:   types.CancelStatusCancelRequested,
	}
}

// watchTermination polls a TERMINATING task and force-kills it when it
// outlives the watch window. The worker killed this way wrote no terminal
// row, so the watcher writes it.
func (d *Dispatcher) watchTermination(taskID string) {
	deadline := time.Now().Add(killWatchTimeout)
	for time.Now().Before(deadline) {
		if !d.hw.CPUPool().IsRunning(taskID) {
			d.markCancelled(taskID)
			return
		}
		time.Sleep(killWatchInterval)
	}
	d.hw.CPUPool().Cancel(taskID, true)
	d.markCancelled(taskID)
}

// markCancelled writes the CANCELLED terminal state everywhere, once
func (d *Dispatcher) markCancelled(taskID string) {
	if !d.progress.MarkFinished(taskID, types.StatusCancelled, "Cancelled") {
		return
	}
	d.progress.Publish(types.ProgressEvent{
		TaskID:     taskID,
		Percentage: 100,
		Message:    "Cancelled",
		Timestamp:  time.Now().UnixMilli(),
	})
	d.progress.EnqueueDB(progress.WriteEvent{
		Op:      "finish",
		TaskID:  taskID,
		Status:  types.StatusCancelled,
		Message: "Cancelled",
	})
	d.sink.SendResult(taskID, types.StatusCancelled, nil, "")
}

func (d *Dispatcher) enqueueCancelRequested(taskID string) {
	st, _ := d.progress.GetTask(taskID)
	d.progress.EnqueueDB(progress.WriteEvent{
		Op:         "progress",
		TaskID:     taskID,
		Percentage: st.Percentage,
		Message:    "Cancel requested",
		Status:     types.StatusCancelRequested,
	})
}

// failFast records an immediately-failed submission (unknown scheme,
// unavailable executor) in store and sink.
func (d *Dispatcher) failFast(taskID, schemeCode, dataRef, message string) {
	d.logger.Error().Str("task_id", taskID).Str("scheme_code", schemeCode).Msg(message)
	d.progress.StartDBWriter()
	d.progress.RegisterTask(taskID, schemeCode, dataRef)
	d.progress.MarkFinished(taskID, types.StatusFailed, "Failed")
	d.progress.EnqueueDB(progress.WriteEvent{
		Op:         "start",
		TaskID:     taskID,
		SchemeCode: schemeCode,
		DataRef:    dataRef,
	})
	d.progress.EnqueueDB(progress.WriteEvent{
		Op:           "finish",
		TaskID:       taskID,
		Status:       types.StatusFailed,
		Message:      "Failed",
		ErrorMessage: message,
	})
	d.sink.SendResult(taskID, types.StatusFailed, nil, message)
}

// failSubmission mirrors an executor refusal as a FAILED terminal state
func (d *Dispatcher) failSubmission(taskID string, err error) {
	d.logger.Error().Err(err).Str("task_id", taskID).Msg("Task submission failed")
	d.progress.Publish(types.ProgressEvent{
		TaskID:     taskID,
		Percentage: 100,
		Message:    "Failed",
		Timestamp:  time.Now().UnixMilli(),
	})
	if d.progress.MarkFinished(taskID, types.StatusFailed, "Failed") {
		d.progress.EnqueueDB(progress.WriteEvent{
			Op:           "finish",
			TaskID:       taskID,
			Status:       types.StatusFailed,
			Message:      "Failed",
			ErrorMessage: err.Error(),
		})
		d.sink.SendResult(taskID, types.StatusFailed, nil, err.Error())
	}
}

// managerEmitter is the in-process runner emitter: events go straight into
// the progress manager and the sink.
type managerEmitter struct {
	d *Dispatcher
}

func (e *managerEmitter) Progress(ev types.ProgressEvent) {
	e.d.progress.Publish(ev)
}

func (e *managerEmitter) Finished(taskID string, status types.Status, message, errorMessage string) {
	if e.d.progress.MarkFinished(taskID, status, message) {
		e.d.progress.EnqueueDB(progress.WriteEvent{
			Op:           "finish",
			TaskID:       taskID,
			Status:       status,
			Message:      message,
			ErrorMessage: errorMessage,
		})
	}
}

func (e *managerEmitter) Result(taskID string, status types.Status, data map[string]any, errorMessage string) {
	e.d.sink.SendResult(taskID, status, data, errorMessage)
}

package runner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/dataloader"
	"github.com/maxslion/algod/pkg/types"
)

// Emitter receives the lifecycle output of a task run. The in-process
// implementation writes straight into the progress manager and result sink;
// the subprocess implementation streams the same calls to the parent as
// JSON lines.
type Emitter interface {
	// Progress mirrors a progress event into the task's channel and the
	// status map.
	Progress(ev types.ProgressEvent)

	// Finished records a terminal status in the status map and enqueues the
	// durable finish write.
	Finished(taskID string, status types.Status, message, errorMessage string)

	// Result delivers the final result to the sink.
	Result(taskID string, status types.Status, data map[string]any, errorMessage string)
}

// reporter adapts an Emitter into the algorithm-facing progress interface.
// Every update is an edge-triggered cancellation point.
type reporter struct {
	emitter   Emitter
	cancelled func() bool
}

func (r *reporter) Update(taskID string, percentage int, message string) error {
	if r.cancelled() {
		return algorithm.ErrCancelled
	}
	r.emitter.Progress(types.ProgressEvent{
		TaskID:     taskID,
		Percentage: percentage,
		Message:    message,
		Timestamp:  time.Now().UnixMilli(),
	})
	return nil
}

// Run executes one task to a terminal state: resolve the data ref, run the
// algorithm, and mirror the outcome through the emitter. The same logic runs
// in-process for GPU tasks and inside the worker subprocess for CPU tasks.
func Run(ctx context.Context, algo algorithm.Algorithm, taskID, dataRef string, params map[string]any, emitter Emitter, cancelled func() bool, logger zerolog.Logger) {
	if cancelled() {
		finishCancelled(taskID, emitter, logger)
		return
	}

	rep := &reporter{emitter: emitter, cancelled: cancelled}
	if err := rep.Update(taskID, 0, "Initializing..."); err != nil {
		finishCancelled(taskID, emitter, logger)
		return
	}

	data, _, err := dataloader.Load(ctx, dataRef)
	if err != nil {
		finishFailed(taskID, emitter, logger, err)
		return
	}

	execCtx := algorithm.NewContext(taskID, params, data, rep, logger)
	logger.Info().Str("task_id", taskID).Str("scheme", algo.Meta().Name).Msg("Task started")

	result, err := algo.Execute(execCtx)
	switch {
	case errors.Is(err, algorithm.ErrCancelled):
		finishCancelled(taskID, emitter, logger)
	case err != nil:
		finishFailed(taskID, emitter, logger, err)
	default:
		emitter.Progress(types.ProgressEvent{
			TaskID:     taskID,
			Percentage: 100,
			Message:    "Completed",
			Timestamp:  time.Now().UnixMilli(),
		})
		emitter.Finished(taskID, types.StatusSuccess, "Completed", "")
		emitter.Result(taskID, types.StatusSuccess, result, "")
		logger.Info().Str("task_id", taskID).Msg("Task completed")
	}
}

func finishCancelled(taskID string, emitter Emitter, logger zerolog.Logger) {
	emitter.Progress(types.ProgressEvent{
		TaskID:     taskID,
		Percentage: 100,
		Message:    "Cancelled",
		Timestamp:  time.Now().UnixMilli(),
	})
	emitter.Finished(taskID, types.StatusCancelled, "Cancelled", "")
	emitter.Result(taskID, types.StatusCancelled, nil, "")
	logger.Info().Str("task_id", taskID).Msg("Task cancelled")
}

func finishFailed(taskID string, emitter Emitter, logger zerolog.Logger, err error) {
	// The full error goes to the log; only the message reaches the store.
	logger.Error().Err(err).Str("task_id", taskID).Msg("Task failed")
	emitter.Progress(types.ProgressEvent{
		TaskID:     taskID,
		Percentage: 100,
		Message:    "Failed",
		Timestamp:  time.Now().UnixMilli(),
	})
	emitter.Finished(taskID, types.StatusFailed, "Failed", err.Error())
	emitter.Result(taskID, types.StatusFailed, nil, err.Error())
}

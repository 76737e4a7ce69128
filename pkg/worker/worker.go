package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/runner"
	"github.com/maxslion/algod/pkg/types"
)

// Run is the entry point of a worker subprocess. It reads the job spec from
// the first line of in, executes the task, and streams lifecycle messages to
// out. Cancellation arrives either as a "cancel" line on in or as SIGTERM;
// both flip the same flag the runner observes at its next progress report.
//
// The returned code is the process exit status.
func Run(ctx context.Context, in io.Reader, out io.Writer) int {
	reader := bufio.NewReader(in)
	specLine, err := reader.ReadBytes('\n')
	if err != nil && len(specLine) == 0 {
		fmt.Fprintln(os.Stderr, "worker: no job spec on stdin")
		return 2
	}

	var spec JobSpec
	if err := json.Unmarshal(specLine, &spec); err != nil {
		fmt.Fprintf(os.Stderr, "worker: bad job spec: %v\n", err)
		return 2
	}

	// The subprocess form reinitializes logging: same file, same rotation.
	log.Init(log.Config{Level: log.InfoLevel, Output: os.Stderr, LogDir: spec.LogDir})
	logger := log.WithComponent("worker")

	var cancelled atomic.Bool
	go watchStdin(reader, &cancelled, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info().Str("task_id", spec.TaskID).Msg("SIGTERM received, cancelling task")
		cancelled.Store(true)
	}()

	emitter := &lineEmitter{out: out}
	algo := algorithm.Get(spec.SchemeCode)
	if algo == nil {
		err := fmt.Errorf("scheme %s not found", spec.SchemeCode)
		logger.Error().Err(err).Str("task_id", spec.TaskID).Msg("Cannot run task")
		emitter.Finished(spec.TaskID, types.StatusFailed, "Failed", err.Error())
		emitter.Result(spec.TaskID, types.StatusFailed, nil, err.Error())
		return 1
	}

	runner.Run(ctx, algo, spec.TaskID, spec.DataRef, spec.Params, emitter, cancelled.Load, logger)
	return 0
}

// watchStdin waits for the cooperative cancel line from the parent
func watchStdin(reader *bufio.Reader, cancelled *atomic.Bool, logger zerolog.Logger) {
	for {
		line, err := reader.ReadString('\n')
		if strings.TrimSpace(line) == "cancel" {
			logger.Info().Msg("Cooperative cancel received")
			cancelled.Store(true)
		}
		if err != nil {
			return
		}
	}
}

// lineEmitter streams runner events to the parent as JSON lines
type lineEmitter struct {
	mu  sync.Mutex
	out io.Writer
}

func (e *lineEmitter) send(msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.out.Write(append(raw, '\n'))
}

func (e *lineEmitter) Progress(ev types.ProgressEvent) {
	e.send(Message{
		Type:       MsgProgress,
		TaskID:     ev.TaskID,
		Percentage: ev.Percentage,
		Message:    ev.Message,
		Timestamp:  ev.Timestamp,
	})
}

func (e *lineEmitter) Finished(taskID string, status types.Status, message, errorMessage string) {
	e.send(Message{
		Type:         MsgFinish,
		TaskID:       taskID,
		Status:       status,
		Message:      message,
		ErrorMessage: errorMessage,
		Timestamp:    time.Now().UnixMilli(),
	})
}

func (e *lineEmitter) Result(taskID string, status types.Status, data map[string]any, errorMessage string) {
	e.send(Message{
		Type:         MsgResult,
		TaskID:       taskID,
		Status:       status,
		Data:         data,
		ErrorMessage: errorMessage,
		Timestamp:    time.Now().UnixMilli(),
	})
}

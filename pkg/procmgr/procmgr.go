package procmgr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/metrics"
	"github.com/maxslion/algod/pkg/types"
)

const (
	// TerminateGracePeriod is how long a worker gets between SIGTERM and the
	// escalating SIGKILL.
	TerminateGracePeriod = 5 * time.Second

	shutdownJoinTimeout = 10 * time.Second

	// maxLineSize bounds a single IPC line from a worker's stdout
	maxLineSize = 1 << 20
)

// LineHandler receives each stdout line a worker subprocess emits
type LineHandler func(taskID string, line []byte)

// managed is the handle for one worker subprocess. It is owned exclusively
// by the Manager and never exposed.
type managed struct {
	cmd             *exec.Cmd
	taskID          string
	startedAt       time.Time
	cancelRequested bool
	stdin           io.WriteCloser
	done            chan struct{}
}

func (p *managed) alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Config tunes the process manager
type Config struct {
	// MaxWorkers caps concurrent subprocesses. Zero means
	// max(1, physical cores − 2).
	MaxWorkers int

	// Command is the worker invocation; the job spec is written to its
	// stdin as one JSON line. Empty means re-exec this binary with the
	// "worker" subcommand.
	Command []string
}

// Manager spawns, tracks and signals CPU worker subprocesses individually,
// so a single stuck task can be terminated without touching the rest of the
// pool. A counting semaphore caps concurrency; the slot is released exactly
// once per submit, by the monitor goroutine, however the subprocess dies.
type Manager struct {
	mu      sync.Mutex
	procs   map[string]*managed
	sem     chan struct{}
	command []string
	handler LineHandler

	shutdown   bool
	maxWorkers int
	logger     zerolog.Logger
}

// NewManager creates a process manager delivering worker output to handler
func NewManager(cfg Config, handler LineHandler) (*Manager, error) {
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	command := cfg.Command
	if len(command) == 0 {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate own executable: %w", err)
		}
		command = []string{self, "worker"}
	}

	m := &Manager{
		procs:      make(map[string]*managed),
		sem:        make(chan struct{}, workers),
		command:    command,
		handler:    handler,
		maxWorkers: workers,
		logger:     log.WithComponent("procmgr"),
	}
	m.logger.Info().Int("max_workers", workers).Msg("Process manager initialized")
	return m, nil
}

// DefaultWorkers returns max(1, physical cores − 2)
func DefaultWorkers() int {
	cores, err := cpu.Counts(false)
	if err != nil || cores <= 0 {
		cores = 1
	}
	if cores-2 > 1 {
		return cores - 2
	}
	return 1
}

// MaxWorkers returns the concurrency cap
func (m *Manager) MaxWorkers() int {
	return m.maxWorkers
}

// Name identifies this executor
func (m *Manager) Name() string {
	return "cpu-processes"
}

// Submit starts a worker subprocess for the task, writing spec as one JSON
// line on its stdin. Blocks while the pool is at capacity; submissions are
// never dropped.
func (m *Manager) Submit(taskID string, spec []byte) error {
	m.mu.Lock()
	if m.shutdown {
		m.mu.Unlock()
		return fmt.Errorf("process manager is shut down")
	}
	m.mu.Unlock()

	select {
	case m.sem <- struct{}{}:
	default:
		m.logger.Warn().Str("task_id", taskID).Int("max_workers", m.maxWorkers).Msg("At capacity, task queued")
		m.sem <- struct{}{}
	}

	if err := m.start(taskID, spec); err != nil {
		<-m.sem
		return err
	}
	return nil
}

func (m *Manager) start(taskID string, spec []byte) error {
	cmd := exec.Command(m.command[0], m.command[1:]...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open worker stdin: %w", err)
	}

	// The stdout pipe is owned here rather than through StdoutPipe so the
	// pump can drain to EOF before Wait closes anything. No worker line is
	// ever lost, however the process dies.
	stdout, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to open worker stdout: %w", err)
	}
	cmd.Stdout = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		stdout.Close()
		return fmt.Errorf("failed to start worker for %s: %w", taskID, err)
	}
	pw.Close()

	if _, err := stdin.Write(append(spec, '\n')); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		stdout.Close()
		return fmt.Errorf("failed to send job spec to worker for %s: %w", taskID, err)
	}

	proc := &managed{
		cmd:       cmd,
		taskID:    taskID,
		startedAt: time.Now(),
		stdin:     stdin,
		done:      make(chan struct{}),
	}

	m.mu.Lock()
	m.procs[taskID] = proc
	m.mu.Unlock()

	metrics.RunningWorkers.Inc()
	m.logger.Info().Str("task_id", taskID).Int("pid", cmd.Process.Pid).Msg("Worker started")

	go m.monitor(proc, stdout)
	return nil
}

// pump forwards the worker's stdout lines to the handler until EOF
func (m *Manager) pump(proc *managed, stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		m.handler(proc.taskID, line)
	}
	if err := scanner.Err(); err != nil {
		m.logger.Warn().Err(err).Str("task_id", proc.taskID).Msg("Worker output stream error")
	}
}

// monitor drains the worker's stdout, waits for the subprocess to exit,
// then removes the handle and releases the semaphore slot. This is the only
// place the slot is released. Draining must finish before Wait, which closes
// the pipes.
func (m *Manager) monitor(proc *managed, stdout *os.File) {
	m.pump(proc, stdout)
	stdout.Close()
	err := proc.cmd.Wait()
	close(proc.done)

	m.mu.Lock()
	delete(m.procs, proc.taskID)
	m.mu.Unlock()

	metrics.RunningWorkers.Dec()
	<-m.sem

	evt := m.logger.Info()
	if err != nil {
		evt = m.logger.Warn().Err(err)
	}
	evt.Str("task_id", proc.taskID).Dur("runtime", time.Since(proc.startedAt)).Msg("Worker exited")
}

// RequestCancel delivers a cooperative cancel to the worker over its stdin.
// The worker observes it at its next progress report.
func (m *Manager) RequestCancel(taskID string) bool {
	m.mu.Lock()
	proc, ok := m.procs[taskID]
	if ok {
		proc.cancelRequested = true
	}
	m.mu.Unlock()
	if !ok || !proc.alive() {
		return false
	}
	if _, err := io.WriteString(proc.stdin, "cancel\n"); err != nil {
		m.logger.Warn().Err(err).Str("task_id", taskID).Msg("Failed to deliver cooperative cancel")
		return false
	}
	return true
}

// Cancel terminates a running task's subprocess. With force it is killed
// immediately; otherwise it receives SIGTERM and an escalator force-kills it
// after the grace period if it is still alive.
func (m *Manager) Cancel(taskID string, force bool) types.CancelResult {
	m.mu.Lock()
	proc, ok := m.procs[taskID]
	if ok {
		proc.cancelRequested = true
	}
	m.mu.Unlock()

	if !ok {
		return types.CancelResult{
			Accepted: false,
			Message:  "Task not found or already finished",
			Status:   types.CancelStatusNotFound,
		}
	}

	pid := proc.cmd.Process.Pid
	if !proc.alive() {
		return types.CancelResult{
			Accepted: false,
			Message:  "Task already finished",
			Status:   types.CancelStatusFinished,
			PID:      pid,
		}
	}

	if force {
		return m.forceKill(proc)
	}
	return m.gracefulTerminate(proc)
}

func (m *Manager) gracefulTerminate(proc *managed) types.CancelResult {
	pid := proc.cmd.Process.Pid
	if err := proc.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		m.logger.Error().Err(err).Str("task_id", proc.taskID).Msg("Failed to terminate worker")
		return types.CancelResult{
			Accepted: false,
			Message:  fmt.Sprintf("Failed to terminate: %v", err),
			Status:   types.CancelStatusError,
			PID:      pid,
		}
	}
	m.logger.Info().Str("task_id", proc.taskID).Int("pid", pid).Msg("Sent SIGTERM to worker")

	go func() {
		select {
		case <-proc.done:
		case <-time.After(TerminateGracePeriod):
			m.logger.Warn().Str("task_id", proc.taskID).Msg("Worker did not terminate, sending SIGKILL")
			m.forceKill(proc)
		}
	}()

	return types.CancelResult{
		Accepted: true,
		Message:  fmt.Sprintf("SIGTERM sent, will force-kill after %s", TerminateGracePeriod),
		Status:   types.CancelStatusTerminating,
		PID:      pid,
	}
}

func (m *Manager) forceKill(proc *managed) types.CancelResult {
	pid := proc.cmd.Process.Pid
	if err := proc.cmd.Process.Kill(); err != nil && proc.alive() {
		m.logger.Error().Err(err).Str("task_id", proc.taskID).Msg("Failed to kill worker")
		return types.CancelResult{
			Accepted: false,
			Message:  fmt.Sprintf("Failed to kill: %v", err),
			Status:   types.CancelStatusError,
			PID:      pid,
		}
	}
	metrics.WorkersKilled.Inc()
	m.logger.Info().Str("task_id", proc.taskID).Int("pid", pid).Msg("Sent SIGKILL to worker")
	return types.CancelResult{
		Accepted: true,
		Message:  "Force killed",
		Status:   types.CancelStatusKilled,
		PID:      pid,
	}
}

// IsRunning reports whether the task has a live subprocess
func (m *Manager) IsRunning(taskID string) bool {
	m.mu.Lock()
	proc, ok := m.procs[taskID]
	m.mu.Unlock()
	return ok && proc.alive()
}

// RunningTasks lists task ids with live subprocesses
func (m *Manager) RunningTasks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.procs))
	for taskID, proc := range m.procs {
		if proc.alive() {
			out = append(out, taskID)
		}
	}
	return out
}

// Shutdown stops accepting work. With cancelPending every live worker is
// force-killed; with wait each join is bounded at 10s.
func (m *Manager) Shutdown(wait, cancelPending bool) {
	m.mu.Lock()
	m.shutdown = true
	procs := make([]*managed, 0, len(m.procs))
	for _, proc := range m.procs {
		procs = append(procs, proc)
	}
	m.mu.Unlock()

	if cancelPending {
		for _, proc := range procs {
			if proc.alive() {
				m.forceKill(proc)
			}
		}
	}
	if wait {
		for _, proc := range procs {
			select {
			case <-proc.done:
			case <-time.After(shutdownJoinTimeout):
				m.logger.Warn().Str("task_id", proc.taskID).Msg("Worker did not exit before shutdown timeout")
			}
		}
	}
	m.logger.Info().Msg("Process manager shutdown complete")
}

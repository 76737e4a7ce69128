package progress

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/metrics"
	"github.com/maxslion/algod/pkg/store"
	"github.com/maxslion/algod/pkg/types"
)

const (
	// channelBuffer bounds a task's progress channel. Watchers that fall
	// this far behind lose the oldest updates, never the terminal one the
	// status map still carries.
	channelBuffer = 256

	dbQueueBuffer  = 1024
	persistRetries = 3
	persistBackoff = 50 * time.Millisecond
)

// WriteEvent is a durable-write request drained by the DB writer
type WriteEvent struct {
	Op           string // "start", "progress" or "finish"
	TaskID       string
	SchemeCode   string
	DataRef      string
	Percentage   int
	Message      string
	Status       types.Status
	ErrorMessage string
}

// Stats carries DB writer counters
type Stats struct {
	Success   int64
	Fail      int64
	LastError string
}

// Manager owns the process-wide task status map, the per-task progress
// channels and the durable-write queue. Worker subprocesses reach it through
// the dispatcher's IPC pump; the manager itself is only ever touched by the
// parent process, which keeps the task store single-writer.
type Manager struct {
	mu       sync.RWMutex
	status   map[string]types.TaskStatus
	channels map[string]chan types.ProgressEvent

	store      *store.TaskStore
	dbCh       chan WriteEvent
	writerOnce sync.Once
	writerDone chan struct{}

	statsMu sync.Mutex
	stats   Stats

	logger zerolog.Logger
}

// NewManager creates a progress manager persisting through the given store
func NewManager(taskStore *store.TaskStore) *Manager {
	return &Manager{
		status:     make(map[string]types.TaskStatus),
		channels:   make(map[string]chan types.ProgressEvent),
		store:      taskStore,
		dbCh:       make(chan WriteEvent, dbQueueBuffer),
		writerDone: make(chan struct{}),
		logger:     log.WithComponent("progress"),
	}
}

// RegisterTask records a task as QUEUED in the status map
func (m *Manager) RegisterTask(taskID, schemeCode, dataRef string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[taskID] = types.TaskStatus{
		TaskID:     taskID,
		SchemeCode: schemeCode,
		Status:     types.StatusQueued,
		Percentage: 0,
		Message:    "Queued",
		DataRef:    dataRef,
		UpdatedAt:  time.Now().UnixMilli(),
	}
}

// RecordProgress writes a progress update into the status map. Terminal
// tasks are left untouched, a pending cancel keeps its CANCEL_REQUESTED
// status, and the percentage never decreases.
func (m *Manager) RecordProgress(taskID string, percentage int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.status[taskID]
	if current.Status.Terminal() {
		return
	}
	next := types.StatusRunning
	if current.Status == types.StatusCancelRequested {
		next = types.StatusCancelRequested
	}
	if percentage < current.Percentage {
		percentage = current.Percentage
	}
	current.TaskID = taskID
	current.Status = next
	current.Percentage = percentage
	current.Message = message
	current.UpdatedAt = time.Now().UnixMilli()
	m.status[taskID] = current
}

// MarkFinished moves a task to a terminal status. The first terminal state
// wins; later calls are ignored.
func (m *Manager) MarkFinished(taskID string, status types.Status, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.status[taskID]
	if !current.Status.CanTransition(status) {
		return false
	}
	current.TaskID = taskID
	current.Status = status
	current.Percentage = 100
	current.Message = message
	current.UpdatedAt = time.Now().UnixMilli()
	m.status[taskID] = current
	metrics.TasksFinished.WithLabelValues(string(status)).Inc()
	return true
}

// RequestCancel flags a task as CANCEL_REQUESTED. Returns false when the
// task is already terminal.
func (m *Manager) RequestCancel(taskID, message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.status[taskID]
	if current.Status.Terminal() {
		return false
	}
	current.TaskID = taskID
	current.Status = types.StatusCancelRequested
	current.Message = message
	current.UpdatedAt = time.Now().UnixMilli()
	m.status[taskID] = current
	return true
}

// IsCancelRequested reports whether cancellation was requested (or already
// happened) for a task. The cooperative cancel check in the runner reads this.
func (m *Manager) IsCancelRequested(taskID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := m.status[taskID].Status
	return st == types.StatusCancelRequested || st == types.StatusCancelled
}

// GetTask returns the last known in-memory status for a task
func (m *Manager) GetTask(taskID string) (types.TaskStatus, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.status[taskID]
	return st, ok
}

// ListTasks returns the in-memory status of every known task
func (m *Manager) ListTasks() []types.TaskStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.TaskStatus, 0, len(m.status))
	for _, st := range m.status {
		out = append(out, st)
	}
	return out
}

// EnsureQueue creates the progress channel for a task if it does not exist.
// Producers call this before the first publish so early events are buffered
// for a watcher that attaches later.
func (m *Manager) EnsureQueue(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.channels[taskID]; !ok {
		m.channels[taskID] = make(chan types.ProgressEvent, channelBuffer)
	}
}

// Publish pushes a progress event onto the task's channel and mirrors it
// into the status map. A full channel drops the oldest event first so the
// newest update always lands.
func (m *Manager) Publish(ev types.ProgressEvent) {
	m.RecordProgress(ev.TaskID, ev.Percentage, ev.Message)
	metrics.ProgressEvents.Inc()

	m.mu.Lock()
	ch, ok := m.channels[ev.TaskID]
	if !ok {
		ch = make(chan types.ProgressEvent, channelBuffer)
		m.channels[ev.TaskID] = ch
	}
	m.mu.Unlock()

	for {
		select {
		case ch <- ev:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// RegisterWatcher attaches a consumer to a task's progress channel. For a
// known task a synthetic event carrying the last known status is queued
// behind any events already buffered on the channel, so a late-attaching
// watcher always observes at least one message.
func (m *Manager) RegisterWatcher(taskID string) <-chan types.ProgressEvent {
	m.mu.Lock()
	ch, ok := m.channels[taskID]
	if !ok {
		ch = make(chan types.ProgressEvent, channelBuffer)
		m.channels[taskID] = ch
	}
	m.mu.Unlock()

	if st, known := m.GetTask(taskID); known {
		m.pushSynthetic(ch, st)
	}
	return ch
}

func (m *Manager) pushSynthetic(ch chan types.ProgressEvent, st types.TaskStatus) {
	ev := types.ProgressEvent{
		TaskID:     st.TaskID,
		Percentage: st.Percentage,
		Message:    st.Message,
		Timestamp:  time.Now().UnixMilli(),
	}
	select {
	case ch <- ev:
	default:
	}
}

// CloseWatcher detaches the consumer; the channel is dropped with it
func (m *Manager) CloseWatcher(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.channels, taskID)
}

// EnqueueDB queues a durable-write event for the DB writer
func (m *Manager) EnqueueDB(ev WriteEvent) {
	m.dbCh <- ev
}

// StartDBWriter starts the single background writer draining the durable
// write queue into the task store. Safe to call more than once.
func (m *Manager) StartDBWriter() {
	m.writerOnce.Do(func() {
		go m.runWriter()
	})
}

// Close shuts the DB queue and waits for the writer to drain
func (m *Manager) Close() {
	m.StartDBWriter() // ensure writerDone is closed even if nothing ran
	close(m.dbCh)
	<-m.writerDone
}

// DBStats returns the writer's success/failure counters
func (m *Manager) DBStats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return m.stats
}

// runWriter applies queued events to the task store until the queue closes.
// Each event gets up to persistRetries attempts with exponential backoff
// between them, then is dropped with the failure counted.
func (m *Manager) runWriter() {
	defer close(m.writerDone)

	for ev := range m.dbCh {
		var err error
		for attempt := 1; attempt <= persistRetries; attempt++ {
			err = m.apply(ev)
			if err == nil {
				break
			}
			if attempt < persistRetries {
				time.Sleep(persistBackoff * time.Duration(1<<attempt))
			}
		}
		m.statsMu.Lock()
		if err != nil {
			m.stats.Fail++
			m.stats.LastError = err.Error()
		} else {
			m.stats.Success++
		}
		m.statsMu.Unlock()
		if err != nil {
			metrics.DBWrites.WithLabelValues("error").Inc()
			m.logger.Error().Err(err).Str("task_id", ev.TaskID).Str("op", ev.Op).Msg("Persist failed after retries, dropping event")
		} else {
			metrics.DBWrites.WithLabelValues("ok").Inc()
		}
	}
	m.logger.Info().Msg("DB writer exiting: queue closed")
}

func (m *Manager) apply(ev WriteEvent) error {
	switch ev.Op {
	case "start":
		return m.store.UpsertStart(ev.TaskID, ev.SchemeCode, ev.DataRef)
	case "finish":
		return m.store.Finish(ev.TaskID, ev.Status, ev.Message, ev.ErrorMessage)
	case "progress":
		status := ev.Status
		if status == "" {
			status = types.StatusRunning
		}
		return m.store.UpdateProgress(ev.TaskID, ev.Percentage, ev.Message, status)
	}
	m.logger.Warn().Str("op", ev.Op).Msg("Unknown DB write op")
	return nil
}

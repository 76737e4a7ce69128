package types

// Status represents the lifecycle state of a task
type Status string

const (
	StatusQueued          Status = "QUEUED"
	StatusRunning         Status = "RUNNING"
	StatusCancelRequested Status = "CANCEL_REQUESTED"
	StatusCancelled       Status = "CANCELLED"
	StatusSuccess         Status = "SUCCESS"
	StatusFailed          Status = "FAILED"
)

// Terminal reports whether s is a terminal status. Once a task reaches a
// terminal status no further transition may change it.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a task may move from s to next. The rules
// centralize status policing so invalid transitions (for example
// SUCCESS → RUNNING) are rejected at the source rather than by convention.
func (s Status) CanTransition(next Status) bool {
	if s.Terminal() {
		return false
	}
	if s == StatusCancelRequested {
		// A cancel in flight only resolves to a terminal state; progress may
		// still be recorded but the status must not revert to RUNNING.
		return next.Terminal() || next == StatusCancelRequested
	}
	return true
}

// ResourceType selects the hardware executor for an algorithm
type ResourceType string

const (
	ResourceCPU ResourceType = "CPU"
	ResourceGPU ResourceType = "GPU"
)

// TaskRecord is the durable view of a task kept in the task store
type TaskRecord struct {
	TaskID       string `json:"task_id"`
	SchemeCode   string `json:"scheme_code"`
	Status       Status `json:"status"`
	Percentage   int    `json:"percentage"`
	Message      string `json:"message"`
	ErrorMessage string `json:"error_message"`
	DataRef      string `json:"data_ref"`
	CreatedAt    int64  `json:"created_at"` // milliseconds since epoch
	UpdatedAt    int64  `json:"updated_at"`
}

// TaskStatus is the in-memory view of a task kept in the status map. It is
// what late-attaching watchers and cancellation checks observe.
type TaskStatus struct {
	TaskID     string `json:"task_id"`
	SchemeCode string `json:"scheme_code"`
	Status     Status `json:"status"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
	DataRef    string `json:"data_ref"`
	UpdatedAt  int64  `json:"updated_at"`
}

// ProgressEvent is a single progress update flowing through a task's
// progress channel
type ProgressEvent struct {
	TaskID     string `json:"task_id"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
	Timestamp  int64  `json:"timestamp"`
}

// CancelStatus is the outcome of a cancellation attempt
type CancelStatus string

const (
	CancelStatusCancelled       CancelStatus = "CANCELLED"
	CancelStatusTerminating     CancelStatus = "TERMINATING"
	CancelStatusKilled          CancelStatus = "KILLED"
	CancelStatusCancelRequested CancelStatus = "CANCEL_REQUESTED"
	CancelStatusNotFound        CancelStatus = "NOT_FOUND"
	CancelStatusFinished        CancelStatus = "FINISHED"
	CancelStatusError           CancelStatus = "ERROR"
)

// CancelResult reports the outcome of a cancel request
type CancelResult struct {
	Accepted bool
	Message  string
	Status   CancelStatus
	PID      int
}

package worker

import (
	"encoding/json"
	"fmt"

	"github.com/maxslion/algod/pkg/types"
)

// Message types exchanged on a worker's stdout, one JSON object per line.
// The parent's pump decodes each line and forwards it into the progress
// manager and result sink, which keeps the status map and the task store
// parent-owned.
const (
	MsgProgress = "progress"
	MsgFinish   = "finish"
	MsgResult   = "result"
)

// JobSpec is the job description the parent writes to a worker's stdin as
// the first line. The only other input a worker ever receives on stdin is
// the literal line "cancel".
type JobSpec struct {
	TaskID     string         `json:"task_id"`
	SchemeCode string         `json:"scheme_code"`
	DataRef    string         `json:"data_ref"`
	Params     map[string]any `json:"params,omitempty"`
	LogDir     string         `json:"log_dir,omitempty"`
}

// Message is one IPC line from worker to parent
type Message struct {
	Type         string         `json:"type"`
	TaskID       string         `json:"task_id"`
	Percentage   int            `json:"percentage,omitempty"`
	Message      string         `json:"message,omitempty"`
	Timestamp    int64          `json:"timestamp,omitempty"`
	Status       types.Status   `json:"status,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
}

// Decode parses one IPC line
func Decode(line []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(line, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to decode worker message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("worker message missing type")
	}
	return msg, nil
}

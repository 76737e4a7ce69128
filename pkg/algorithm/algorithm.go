package algorithm

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/dataloader"
	"github.com/maxslion/algod/pkg/types"
)

// ErrCancelled is returned by Reporter.Update when cancellation of the task
// has been requested. Algorithms propagate it out of Execute; the runner maps
// it to the CANCELLED terminal state.
var ErrCancelled = errors.New("task cancelled")

// Meta describes a registered algorithm for service discovery
type Meta struct {
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	ResourceType types.ResourceType `json:"resource_type"`
	Model        string             `json:"model,omitempty"`
	ClassName    string             `json:"class,omitempty"`
}

// Reporter receives progress updates from a running algorithm. Update returns
// ErrCancelled when the task should stop.
type Reporter interface {
	Update(taskID string, percentage int, message string) error
}

// Algorithm is the contract every scheme implements
type Algorithm interface {
	Meta() Meta
	Execute(ctx *Context) (map[string]any, error)
}

// Context carries everything an algorithm needs during execution
type Context struct {
	TaskID string
	Params map[string]any
	Data   *dataloader.Frame

	reporter Reporter
	logger   zerolog.Logger
}

// NewContext builds an execution context for a task
func NewContext(taskID string, params map[string]any, data *dataloader.Frame, reporter Reporter, logger zerolog.Logger) *Context {
	if params == nil {
		params = map[string]any{}
	}
	return &Context{
		TaskID:   taskID,
		Params:   params,
		Data:     data,
		reporter: reporter,
		logger:   logger,
	}
}

// Log writes a message to the task's logger
func (c *Context) Log(level zerolog.Level, message string) {
	c.logger.WithLevel(level).Str("task_id", c.TaskID).Msg(message)
}

// ReportProgress reports execution progress. The returned error is
// ErrCancelled when a cancel was requested; algorithms must return it from
// Execute without wrapping additional work around it.
func (c *Context) ReportProgress(percentage int, message string) error {
	return c.reporter.Update(c.TaskID, percentage, message)
}

// ParamFloat reads a numeric parameter with a default. JSON numbers decode as
// float64, so that is the canonical parameter type.
func (c *Context) ParamFloat(key string, def float64) float64 {
	v, ok := c.Params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

// ParamString reads a string parameter with a default
func (c *Context) ParamString(key, def string) string {
	if v, ok := c.Params[key].(string); ok {
		return v
	}
	return def
}

// Validate checks that a Meta is complete enough to register
func (m Meta) Validate() error {
	if m.Code == "" {
		return fmt.Errorf("algorithm meta missing code")
	}
	if m.Name == "" {
		return fmt.Errorf("algorithm %s missing name", m.Code)
	}
	if m.ResourceType != types.ResourceCPU && m.ResourceType != types.ResourceGPU {
		return fmt.Errorf("algorithm %s has invalid resource_type %q", m.Code, m.ResourceType)
	}
	return nil
}

package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/maxslion/algod/api/proto"
	"github.com/maxslion/algod/pkg/dataloader"
	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/types"
)

const sendTimeout = 10 * time.Second

// Client delivers final task results. The local JSON artifact is always
// written and is authoritative; remote delivery to the result receiver is
// best-effort, at most once.
type Client struct {
	resultDir string
	target    string

	conn *grpc.ClientConn
	stub pb.ResultReceiverServiceClient

	logger zerolog.Logger
}

// NewClient creates a result sink writing artifacts under resultDir. An
// empty target disables remote delivery.
func NewClient(resultDir, target string) (*Client, error) {
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create result directory: %w", err)
	}

	c := &Client{
		resultDir: resultDir,
		target:    target,
		logger:    log.WithComponent("sink"),
	}
	if target != "" {
		conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("failed to create result receiver client: %w", err)
		}
		c.conn = conn
		c.stub = pb.NewResultReceiverServiceClient(conn)
	}
	return c, nil
}

// Close releases the remote connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// SendResult persists the result artifact and forwards it to the remote
// receiver when one is configured. Remote failures are logged and swallowed.
func (c *Client) SendResult(taskID string, status types.Status, data map[string]any, errorMessage string) {
	artifact := map[string]any{
		"task_id": taskID,
		"status":  string(status),
		"data":    safeValue(data),
		"error":   errorMessage,
	}
	raw, err := json.Marshal(artifact)
	if err != nil {
		c.logger.Error().Err(err).Str("task_id", taskID).Msg("Failed to serialize result artifact")
		return
	}

	path := filepath.Join(c.resultDir, taskID+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		c.logger.Error().Err(err).Str("task_id", taskID).Msg("Failed to write result artifact")
	}

	if c.stub == nil {
		return
	}

	resultJSON := ""
	if data != nil {
		if encoded, err := json.Marshal(safeValue(data)); err == nil {
			resultJSON = string(encoded)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	_, err = c.stub.ReportResult(ctx, &pb.TaskResult{
		TaskId:       taskID,
		Status:       resultStatus(status),
		ResultJson:   resultJSON,
		ErrorMessage: errorMessage,
		LogPath:      "",
	})
	if err != nil {
		c.logger.Error().Err(err).Str("task_id", taskID).Msg("Failed to deliver result, local artifact remains authoritative")
	}
}

func resultStatus(status types.Status) pb.TaskResult_ResultStatus {
	switch status {
	case types.StatusSuccess:
		return pb.TaskResult_SUCCESS
	case types.StatusCancelled:
		return pb.TaskResult_CANCELLED
	default:
		return pb.TaskResult_FAILED
	}
}

// safeValue maps domain values onto JSON-friendly shapes: frames become
// record lists, time points become RFC 3339 strings, anything that still
// refuses to serialize becomes its string form.
func safeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.Format(time.RFC3339)
	case *dataloader.Frame:
		if val == nil {
			return nil
		}
		return val.Records()
	case map[string]any:
		if val == nil {
			return nil
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = safeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = safeValue(item)
		}
		return out
	default:
		if _, err := json.Marshal(val); err != nil {
			return fmt.Sprint(val)
		}
		return val
	}
}

package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxslion/algod/pkg/dataloader"
	"github.com/maxslion/algod/pkg/types"
)

func TestSendResultWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	c, err := NewClient(dir, "")
	require.NoError(t, err)
	defer c.Close()

	c.SendResult("t1", types.StatusSuccess, map[string]any{"violations_found": 2}, "")

	raw, err := os.ReadFile(filepath.Join(dir, "t1.json"))
	require.NoError(t, err)

	var artifact map[string]any
	require.NoError(t, json.Unmarshal(raw, &artifact))
	assert.Equal(t, "t1", artifact["task_id"])
	assert.Equal(t, "SUCCESS", artifact["status"])
	assert.Equal(t, "", artifact["error"])
	data := artifact["data"].(map[string]any)
	assert.Equal(t, float64(2), data["violations_found"])
}

func TestSendResultFailedCarriesError(t *testing.T) {
	dir := t.TempDir()
	c, err := NewClient(dir, "")
	require.NoError(t, err)
	defer c.Close()

	c.SendResult("t2", types.StatusFailed, nil, "scheme NOPE not found")

	raw, err := os.ReadFile(filepath.Join(dir, "t2.json"))
	require.NoError(t, err)

	var artifact map[string]any
	require.NoError(t, json.Unmarshal(raw, &artifact))
	assert.Equal(t, "FAILED", artifact["status"])
	assert.Equal(t, "scheme NOPE not found", artifact["error"])
	assert.Nil(t, artifact["data"])
}

func TestSafeValueSerializer(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	frame := dataloader.NewFrame([]string{"bus"}, [][]any{{"B1"}})

	out := safeValue(map[string]any{
		"when":  ts,
		"frame": frame,
		"plain": 42,
		"list":  []any{ts, "x"},
	}).(map[string]any)

	assert.Equal(t, "2026-03-01T12:30:00Z", out["when"])
	assert.Equal(t, 42, out["plain"])

	records := out["frame"].([]map[string]any)
	require.Len(t, records, 1)
	assert.Equal(t, "B1", records[0]["bus"])

	list := out["list"].([]any)
	assert.Equal(t, "2026-03-01T12:30:00Z", list[0])
}

func TestSafeValueUnserializable(t *testing.T) {
	// Channels have no JSON form; they fall back to their string form.
	v := safeValue(make(chan int))
	_, isString := v.(string)
	assert.True(t, isString)
}

func TestResultStatusMapping(t *testing.T) {
	assert.Equal(t, "SUCCESS", resultStatus(types.StatusSuccess).String())
	assert.Equal(t, "FAILED", resultStatus(types.StatusFailed).String())
	assert.Equal(t, "CANCELLED", resultStatus(types.StatusCancelled).String())
}

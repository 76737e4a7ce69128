package worker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/maxslion/algod/pkg/plugins"
	"github.com/maxslion/algod/pkg/types"
)

func runWorker(t *testing.T, stdin string) []Message {
	t.Helper()

	var out bytes.Buffer
	code := Run(context.Background(), strings.NewReader(stdin), &out)
	assert.Equal(t, 0, code)

	var msgs []Message
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		msg, err := Decode(scanner.Bytes())
		require.NoError(t, err)
		msgs = append(msgs, msg)
	}
	return msgs
}

func specLine(t *testing.T, spec JobSpec) string {
	t.Helper()
	raw, err := json.Marshal(spec)
	require.NoError(t, err)
	return string(raw) + "\n"
}

func TestWorkerRunsTaskToSuccess(t *testing.T) {
	msgs := runWorker(t, specLine(t, JobSpec{TaskID: "t1", SchemeCode: "SCM-WF03"}))
	require.NotEmpty(t, msgs)

	var last, finish, result *Message
	for i := range msgs {
		switch msgs[i].Type {
		case MsgProgress:
			last = &msgs[i]
		case MsgFinish:
			finish = &msgs[i]
		case MsgResult:
			result = &msgs[i]
		}
	}

	require.NotNil(t, last)
	assert.Equal(t, 100, last.Percentage)
	assert.Equal(t, "Completed", last.Message)

	require.NotNil(t, finish)
	assert.Equal(t, types.StatusSuccess, finish.Status)

	require.NotNil(t, result)
	assert.Equal(t, types.StatusSuccess, result.Status)
	assert.Equal(t, float64(85), result.Data["buses_checked"])
}

func TestWorkerProgressIsOrdered(t *testing.T) {
	msgs := runWorker(t, specLine(t, JobSpec{TaskID: "t1", SchemeCode: "STM-WF03"}))

	prev := -1
	for _, msg := range msgs {
		if msg.Type != MsgProgress {
			continue
		}
		assert.GreaterOrEqual(t, msg.Percentage, prev)
		prev = msg.Percentage
	}
	assert.Equal(t, 100, prev)
}

func TestWorkerCooperativeCancel(t *testing.T) {
	// The cancel line is already buffered behind the spec, so the flag is
	// set before the first progress report.
	stdin := specLine(t, JobSpec{TaskID: "t1", SchemeCode: "SCM-WF03"}) + "cancel\n"
	msgs := runWorker(t, stdin)

	var finish *Message
	for i := range msgs {
		if msgs[i].Type == MsgFinish {
			finish = &msgs[i]
		}
	}
	require.NotNil(t, finish)
	assert.Equal(t, types.StatusCancelled, finish.Status)
}

func TestWorkerUnknownScheme(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), strings.NewReader(specLine(t, JobSpec{TaskID: "t1", SchemeCode: "NOPE"})), &out)
	assert.Equal(t, 1, code)

	var finish *Message
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		msg, err := Decode(scanner.Bytes())
		require.NoError(t, err)
		if msg.Type == MsgFinish {
			finish = &msg
		}
	}
	require.NotNil(t, finish)
	assert.Equal(t, types.StatusFailed, finish.Status)
	assert.Contains(t, finish.ErrorMessage, "not found")
}

func TestWorkerRejectsBadSpec(t *testing.T) {
	var out bytes.Buffer
	code := Run(context.Background(), strings.NewReader("not json\n"), &out)
	assert.Equal(t, 2, code)
}

func TestDecodeRejectsMalformedLines(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"task_id":"t1"}`))
	assert.ErrorContains(t, err, "missing type")
}

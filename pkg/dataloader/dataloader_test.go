package dataloader

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "grid.csv", "bus,load_mw,online\nB1,120.5,true\nB2,90,false\n")

	frame, meta, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "file", meta["source"])
	assert.Equal(t, "csv", meta["format"])

	require.Equal(t, 2, frame.Len())
	assert.Equal(t, []string{"bus", "load_mw", "online"}, frame.Columns())

	row := frame.Row(0)
	assert.Equal(t, "B1", row["bus"])
	assert.Equal(t, 120.5, row["load_mw"])
	assert.Equal(t, true, row["online"])

	v, err := frame.Value(1, "load_mw")
	require.NoError(t, err)
	assert.Equal(t, int64(90), v)
}

func TestLoadJSONArray(t *testing.T) {
	path := writeFile(t, "grid.json", `[{"bus":"B1","load":12},{"bus":"B2","load":9}]`)

	frame, meta, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", meta["format"])
	assert.Equal(t, 2, frame.Len())
	assert.Equal(t, "B2", frame.Row(1)["bus"])
}

func TestLoadJSONObject(t *testing.T) {
	path := writeFile(t, "single.json", `{"bus":"B1","load":12}`)

	frame, _, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 1, frame.Len())
	assert.Equal(t, "B1", frame.Row(0)["bus"])
}

func TestLoadFileURL(t *testing.T) {
	path := writeFile(t, "grid.csv", "a\n1\n")

	frame, _, err := Load(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, 1, frame.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorContains(t, err, "data file not found")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "grid.xml", "<grid/>")

	_, _, err := Load(context.Background(), path)
	assert.ErrorContains(t, err, "unsupported data file type")
}

func TestLoadEmptyRef(t *testing.T) {
	frame, meta, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, frame.Len())
	assert.Equal(t, "none", meta["source"])
}

func TestMySQLRefRequiresTableOrQuery(t *testing.T) {
	_, _, err := Load(context.Background(), "mysql://root:pw@localhost:3306/grid")
	assert.ErrorContains(t, err, "requires ?table= or ?query=")
}

func TestRedisRefRequiresKey(t *testing.T) {
	_, _, err := Load(context.Background(), "redis://localhost:6379/0?type=hash")
	assert.ErrorContains(t, err, "requires ?key=")
}

func TestRedisRefRejectsBadDB(t *testing.T) {
	_, _, err := Load(context.Background(), "redis://localhost:6379/notanumber?key=k")
	assert.ErrorContains(t, err, "invalid redis db")
}

func TestMySQLDSN(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"mysql://root:pw@db.local:3307/grid?table=t", "root:pw@tcp(db.local:3307)/grid?parseTime=true"},
		{"mysql://root@db.local/grid?table=t", "root@tcp(db.local:3306)/grid?parseTime=true"},
	}
	for _, tc := range tests {
		parsed, err := url.Parse(tc.ref)
		require.NoError(t, err)
		assert.Equal(t, tc.want, mysqlDSN(parsed, "grid"))
	}
}

func TestFrameRecordsRoundTrip(t *testing.T) {
	frame := NewFrame([]string{"a", "b"}, [][]any{{1, "x"}, {2, "y"}})
	records := frame.Records()
	require.Len(t, records, 2)

	back := FromRecords(records)
	assert.Equal(t, frame.Columns(), back.Columns())
	assert.Equal(t, records, back.Records())
}

func TestFrameValueErrors(t *testing.T) {
	frame := NewFrame([]string{"a"}, [][]any{{1}})

	_, err := frame.Value(5, "a")
	assert.ErrorContains(t, err, "out of range")

	_, err = frame.Value(0, "missing")
	assert.ErrorContains(t, err, "unknown column")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.GRPCHost)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Empty(t, cfg.ReporterTarget)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "./result", cfg.ResultDir)
	assert.Equal(t, "./logs", cfg.LogDir)
	assert.Equal(t, "0.0.0.0:50051", cfg.ListenAddr())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ALGO_GRPC_HOST", "127.0.0.1")
	t.Setenv("ALGO_GRPC_PORT", "6000")
	t.Setenv("RESULT_REPORTER_TARGET", "receiver:9000")
	t.Setenv("ALGO_DATA_DIR", "/var/lib/algod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:6000", cfg.ListenAddr())
	assert.Equal(t, "receiver:9000", cfg.ReporterTarget)
	assert.Equal(t, "/var/lib/algod", cfg.DataDir)
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("ALGO_GRPC_PORT", "70000")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid ALGO_GRPC_PORT")
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds service configuration resolved from environment variables
type Config struct {
	GRPCHost       string
	GRPCPort       int
	ReporterTarget string // empty disables remote result delivery

	DataDir        string
	ResultDir      string
	LogDir         string
	PluginManifest string // optional path restricting the enabled scheme set
}

// Load resolves the configuration from the environment. Every knob has a
// default so the service starts with no environment at all.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("grpc_host", "0.0.0.0")
	v.SetDefault("grpc_port", 50051)
	v.SetDefault("reporter_target", "")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("result_dir", "./result")
	v.SetDefault("log_dir", "./logs")
	v.SetDefault("plugin_manifest", "")

	bindings := map[string]string{
		"grpc_host":       "ALGO_GRPC_HOST",
		"grpc_port":       "ALGO_GRPC_PORT",
		"reporter_target": "RESULT_REPORTER_TARGET",
		"data_dir":        "ALGO_DATA_DIR",
		"result_dir":      "ALGO_RESULT_DIR",
		"log_dir":         "ALGO_LOG_DIR",
		"plugin_manifest": "ALGO_PLUGIN_MANIFEST",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		GRPCHost:       v.GetString("grpc_host"),
		GRPCPort:       v.GetInt("grpc_port"),
		ReporterTarget: v.GetString("reporter_target"),
		DataDir:        v.GetString("data_dir"),
		ResultDir:      v.GetString("result_dir"),
		LogDir:         v.GetString("log_dir"),
		PluginManifest: v.GetString("plugin_manifest"),
	}
	if cfg.GRPCPort <= 0 || cfg.GRPCPort > 65535 {
		return nil, fmt.Errorf("invalid ALGO_GRPC_PORT: %d", cfg.GRPCPort)
	}
	return cfg, nil
}

// ListenAddr returns the host:port the gRPC server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.GRPCHost, c.GRPCPort)
}

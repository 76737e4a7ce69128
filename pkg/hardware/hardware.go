package hardware

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/log"
	"github.com/maxslion/algod/pkg/procmgr"
	"github.com/maxslion/algod/pkg/types"
)

// Executor is either the CPU process pool or the GPU thread pool
type Executor interface {
	Name() string
}

// Manager probes the hardware once at startup and owns the two executors:
// the CPU process pool (the process manager) and the GPU thread pool. When
// no GPU is present the GPU executor aliases the CPU pool.
type Manager struct {
	hasGPU     bool
	deviceInfo string

	cpu *procmgr.Manager
	gpu *ThreadPool

	logger zerolog.Logger
}

// NewManager detects GPU hardware and wires the executors around the given
// process manager.
func NewManager(cpu *procmgr.Manager) *Manager {
	m := &Manager{
		cpu:        cpu,
		deviceInfo: "CPU",
		logger:     log.WithComponent("hardware"),
	}
	m.detect()

	if m.hasGPU {
		m.gpu = NewThreadPool(2)
		m.logger.Info().Str("device", m.deviceInfo).Msg("GPU detected, thread pool active")
	} else {
		m.logger.Info().Msg("No GPU detected, system running in CPU mode")
	}
	return m
}

// detect probes for a CUDA-capable accelerator through NVML. Any failure
// leaves the service in CPU-only mode.
func (m *Manager) detect() {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		m.logger.Warn().Str("reason", nvml.ErrorString(ret)).Msg("GPU detection skipped")
		return
	}
	defer func() {
		if !m.hasGPU {
			_ = nvml.Shutdown()
		}
	}()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS || count == 0 {
		return
	}
	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return
	}
	name, ret := device.GetName()
	if ret != nvml.SUCCESS {
		name = "unknown GPU"
	}
	m.hasGPU = true
	m.deviceInfo = fmt.Sprintf("%dx %s", count, name)
}

// HasGPU reports whether a CUDA-capable accelerator was found at startup
func (m *Manager) HasGPU() bool {
	return m.hasGPU
}

// DeviceInfo returns the detected device summary ("CPU" when no GPU)
func (m *Manager) DeviceInfo() string {
	return m.deviceInfo
}

// CPUPool returns the process-based CPU executor
func (m *Manager) CPUPool() *procmgr.Manager {
	return m.cpu
}

// GPUPool returns the thread pool, or nil when no GPU is present
func (m *Manager) GPUPool() *ThreadPool {
	return m.gpu
}

// ExecutorFor returns the GPU executor for GPU-preferring algorithms when a
// GPU exists, otherwise the CPU executor.
func (m *Manager) ExecutorFor(pref types.ResourceType) Executor {
	if pref == types.ResourceGPU && m.hasGPU {
		return m.gpu
	}
	return m.cpu
}

// Shutdown stops the GPU pool and releases the NVML handle
func (m *Manager) Shutdown() {
	if m.gpu != nil {
		m.gpu.Stop()
	}
	if m.hasGPU {
		_ = nvml.Shutdown()
	}
}

package scm

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/types"
)

func init() {
	algorithm.Register(&ShortCircuitCheck{})
}

// ShortCircuitCheck runs the short-circuit current workflow (SCM-WF03)
type ShortCircuitCheck struct{}

func (a *ShortCircuitCheck) Meta() algorithm.Meta {
	return algorithm.Meta{
		Code:         "SCM-WF03",
		Name:         "Safety Check - Short Circuit",
		Description:  "Short-circuit current calculation and verification",
		ResourceType: types.ResourceCPU,
	}
}

func (a *ShortCircuitCheck) Execute(ctx *algorithm.Context) (map[string]any, error) {
	ctx.Log(zerolog.InfoLevel, "short-circuit check started")
	if err := ctx.ReportProgress(15, "Collecting bus data..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	if err := ctx.ReportProgress(50, "Calculating short-circuit currents..."); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)

	if err := ctx.ReportProgress(85, "Checking breaker ratings..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	return map[string]any{
		"buses_checked":     85,
		"max_sc_current_ka": 42.5,
		"over_rating_buses": []any{},
		"demo":              true,
	}, nil
}

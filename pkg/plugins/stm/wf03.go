package stm

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/types"
)

func init() {
	algorithm.Register(&ReportGenerator{})
}

// ReportGenerator runs the report compilation workflow (STM-WF03)
type ReportGenerator struct{}

func (a *ReportGenerator) Meta() algorithm.Meta {
	return algorithm.Meta{
		Code:         "STM-WF03",
		Name:         "Digital Twin - Report Generation",
		Description:  "Simulation result visualization and report generation",
		ResourceType: types.ResourceCPU,
	}
}

func (a *ReportGenerator) Execute(ctx *algorithm.Context) (map[string]any, error) {
	ctx.Log(zerolog.InfoLevel, "report generation started")
	if err := ctx.ReportProgress(20, "Collecting simulation data..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	if err := ctx.ReportProgress(50, "Generating charts..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	if err := ctx.ReportProgress(80, "Compiling report..."); err != nil {
		return nil, err
	}
	time.Sleep(500 * time.Millisecond)

	return map[string]any{
		"report_id":        "RPT-2026-001",
		"pages":            15,
		"charts_generated": 8,
		"format":           "PDF",
		"demo":             true,
	}, nil
}

// Package m01 holds the sample plugin distributed to algorithm authors. It
// doubles as the reference for the plugin contract: implement Meta and
// Execute, register from init, report progress through the context.
package m01

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/types"
)

func init() {
	algorithm.Register(&SafetyCheck{})
}

// SafetyCheck is the sample GPU algorithm (DEMO01_WF01): a GNN load
// prediction with a power-flow recheck when the predicted load crosses the
// configured limit.
type SafetyCheck struct{}

func (a *SafetyCheck) Meta() algorithm.Meta {
	return algorithm.Meta{
		Code:         "DEMO01_WF01",
		Name:         "Sample Safety Check",
		Description:  "GNN screening with power-flow recheck",
		ResourceType: types.ResourceGPU,
	}
}

func (a *SafetyCheck) Execute(ctx *algorithm.Context) (map[string]any, error) {
	// load_limit is the optional threshold parameter; 0.8 by default.
	limit := ctx.ParamFloat("load_limit", 0.8)

	dataInfo := "(no data)"
	if ctx.Data != nil && ctx.Data.Len() > 0 {
		dataInfo = "plugin-loaded data"
	}
	ctx.Log(zerolog.InfoLevel, "loading data from: "+dataInfo)

	if err := ctx.ReportProgress(10, "Loading Snapshot..."); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)

	if err := ctx.ReportProgress(30, "AI Inference (GNN)..."); err != nil {
		return nil, err
	}
	predLoad := 0.85

	result := map[string]any{
		"is_safe":    true,
		"violations": []any{},
	}

	if predLoad > limit {
		ctx.Log(zerolog.WarnLevel, "high load detected, starting mechanism check")
		if err := ctx.ReportProgress(60, "Running Power Flow Verification..."); err != nil {
			return nil, err
		}
		time.Sleep(2 * time.Second)

		result["is_safe"] = false
		result["violations"] = []any{"Line-A", "Transformer-B"}
	}

	return result, nil
}

package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// FinalizeNode returns a state node that verifies a classification result
// reached the end of the graph and logs the outcome. Risk level is already
// derived when the result is built, so no further synthesis happens here.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		result, err := extractResult(s)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "classification complete",
			"category", result.Category,
			"severity", result.Severity,
			"risk_level", result.RiskLevel,
			"confidence", result.Confidence,
			"fallback", modelFailed(s),
		)

		return s, nil
	})
}

package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/safenet-ai/safenet/internal/classify"
)

// FallbackNode returns a state node that classifies the submitted text with
// deterministic keyword rules. It runs when the model path failed and is the
// guarantee that every submission produces a classification.
func FallbackNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("fallback: %w", err)
		}

		result := classify.Rules(req.Text, req.HasEvidence)

		rt.Logger.InfoContext(
			ctx, "fallback node complete",
			"category", result.Category,
			"severity", result.Severity,
			"risk_level", result.RiskLevel,
		)

		s = s.Set(KeyResult, *result)
		return s, nil
	})
}

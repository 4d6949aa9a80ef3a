package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/pkg/formatting"
)

// ClassifyNode returns a state node that sends the submitted text to the
// configured language model and normalizes the response into a Result.
// Model failures never abort the graph: the node records the failure in
// state and the graph routes to the rule-based fallback node instead.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		result, err := classifyModel(ctx, rt, req)
		if err != nil {
			rt.Logger.WarnContext(
				ctx, "model classification failed, routing to rules",
				"mode", ModeFor(req),
				"error", err,
			)

			s = s.Set(KeyModelFailed, true)
			return s, nil
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"category", result.Category,
			"severity", result.Severity,
			"risk_level", result.RiskLevel,
		)

		s = s.Set(KeyResult, *result)
		s = s.Set(KeyModelFailed, false)
		return s, nil
	})
}

func classifyModel(ctx context.Context, rt *Runtime, req classify.Request) (*classify.Result, error) {
	prompt, err := ComposePrompt(ctx, rt.Prompts, ModeFor(req), req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassifyFailed, err)
	}

	a, err := agent.New(&rt.Agent)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrClassifyFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrClassifyFailed, err)
	}

	parsed, err := formatting.Parse[classify.ModelResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrClassifyFailed, err)
	}

	return classify.FromModel(parsed, req), nil
}

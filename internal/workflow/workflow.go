package workflow

import (
	"context"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/safenet-ai/safenet/internal/classify"
)

// Execute runs the classification workflow for a single submission. It
// builds the state graph (classify → fallback? → finalize), seeds it with
// the request, executes it, and extracts the Result from the final state.
// Execute never fails: when no model agent is configured, or when the graph
// itself errors, it classifies with deterministic rules instead.
func Execute(ctx context.Context, rt *Runtime, req classify.Request) *classify.Result {
	if !rt.Configured() {
		rt.Logger.InfoContext(ctx, "model agent not configured, using rule-based classification")
		return classify.Rules(req.Text, req.HasEvidence)
	}

	graph, err := buildGraph(rt)
	if err != nil {
		rt.Logger.WarnContext(ctx, "build graph failed, using rule-based classification", "error", err)
		return classify.Rules(req.Text, req.HasEvidence)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		rt.Logger.WarnContext(ctx, "execute graph failed, using rule-based classification", "error", err)
		return classify.Rules(req.Text, req.HasEvidence)
	}

	result, err := extractResult(finalState)
	if err != nil {
		rt.Logger.WarnContext(ctx, "extract result failed, using rule-based classification", "error", err)
		return classify.Rules(req.Text, req.HasEvidence)
	}

	return result
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("safenet-classify")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("fallback", FallbackNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt)); err != nil {
		return nil, err
	}

	// classify → fallback (when the model path failed)
	if err := graph.AddEdge("classify", "fallback", modelFailed); err != nil {
		return nil, err
	}

	// classify → finalize (when the model produced a result)
	if err := graph.AddEdge("classify", "finalize", state.Not(modelFailed)); err != nil {
		return nil, err
	}

	// fallback → finalize (unconditional)
	if err := graph.AddEdge("fallback", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

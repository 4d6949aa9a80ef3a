package workflow

import (
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/internal/prompts"
)

const (
	KeyRequest     = "request"
	KeyResult      = "result"
	KeyModelFailed = "model_failed"
)

// ModeFor selects the prompt mode for a classification request.
// Submissions backed by an evidence file use evidence mode; text-only
// submissions use conversational mode.
func ModeFor(req classify.Request) prompts.Mode {
	if req.HasEvidence {
		return prompts.ModeEvidence
	}
	return prompts.ModeConversational
}

func extractRequest(s state.State) (classify.Request, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return classify.Request{}, fmt.Errorf("%w: missing %s in state", ErrClassifyFailed, KeyRequest)
	}

	req, ok := val.(classify.Request)
	if !ok {
		return classify.Request{}, fmt.Errorf("%w: %s is not classify.Request", ErrClassifyFailed, KeyRequest)
	}

	return req, nil
}

func extractResult(s state.State) (*classify.Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrResultMissing, KeyResult)
	}

	result, ok := val.(classify.Result)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not classify.Result", ErrResultMissing, KeyResult)
	}

	return &result, nil
}

func modelFailed(s state.State) bool {
	val, ok := s.Get(KeyModelFailed)
	if !ok {
		return false
	}

	failed, ok := val.(bool)
	return ok && failed
}

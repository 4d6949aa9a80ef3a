// Package workflow implements the content risk classification workflow for
// Safenet. A state graph sends submitted text to the configured language
// model and routes to rule-based classification when the model is
// unavailable or returns an unusable response. Execution never fails: the
// rule-based path always produces a result.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrClassifyFailed = errors.New("model classification failed")
	ErrPromptFailed   = errors.New("prompt composition failed")
	ErrResultMissing  = errors.New("classification result missing from state")
)

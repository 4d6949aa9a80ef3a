package classify

import "math"

// ModelResponse mirrors the JSON contract the model is instructed to emit.
// Pointer numerics distinguish "missing" from zero so defaults can apply.
// Model output is untrusted; FromModel clamps and defaults every field.
type ModelResponse struct {
	Category           string   `json:"category"`
	Severity           *float64 `json:"severity"`
	Confidence         *float64 `json:"confidence"`
	Rationale          string   `json:"rationale"`
	HighlightedPhrases []string `json:"highlighted_phrases"`
	Advice             *string  `json:"advice,omitempty"`
}

const defaultModelConfidence = 0.5

// FromModel normalizes a parsed model response into a Result. Severity is
// clamped to [0,100] defaulting to 0, confidence is clamped to [0,1]
// defaulting to 0.5, and unknown or absent categories become non_abusive.
// RiskLevel is always recomputed from the normalized fields; the model's
// own risk judgment is never taken as authoritative.
func FromModel(resp ModelResponse, req Request) *Result {
	conversational := !req.HasEvidence

	category := Category(resp.Category)
	if !category.Valid(conversational) {
		category = CategoryNonAbusive
	}

	severity := 0
	if resp.Severity != nil {
		severity = clampInt(int(math.Round(*resp.Severity)), 0, maxSeverity)
	}

	confidence := defaultModelConfidence
	if resp.Confidence != nil {
		confidence = clampFloat(*resp.Confidence, 0, 1)
	}

	phrases := resp.HighlightedPhrases
	if phrases == nil {
		phrases = []string{}
	}

	result := &Result{
		Category:           category,
		Severity:           severity,
		RiskLevel:          RiskFor(category, severity, req.Text),
		Confidence:         confidence,
		Rationale:          resp.Rationale,
		HighlightedPhrases: phrases,
		IsConversational:   conversational,
	}

	if conversational {
		result.Advice = resp.Advice
	}

	return result
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

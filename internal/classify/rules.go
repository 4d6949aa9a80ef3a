package classify

import (
	"slices"
	"strings"
)

const (
	threatWeight   = 30
	stalkingWeight = 20

	maxSeverity        = 100
	baseConfidence     = 0.5
	confidencePerMatch = 0.1
	maxRuleConfidence  = 0.95
)

const (
	threatRationale   = "Direct threat indicators detected"
	stalkingRationale = "Stalking behavior patterns identified"
	noMatchRationale  = "No clear abuse indicators detected in the content."
)

// Advice tiers for conversational submissions, selected by severity.
const (
	adviceHighSeverity = "This content is concerning. Document everything, avoid engaging with the sender, and reach out to a support organization or trusted person as soon as you can. If you feel you are in immediate danger, contact emergency services."
	adviceMidSeverity  = "Trust your instincts about this interaction. Consider setting firm boundaries, limiting contact with the sender, and keeping a record of any further messages in case the behavior escalates."
	adviceLowSeverity  = "No clear abuse indicators were detected, but your feelings about this interaction are valid. Seeking support is always a reasonable step if something feels wrong."
)

const (
	adviceHighThreshold = 60
	adviceMidThreshold  = 30
)

// Rules is the deterministic fallback classifier. It scans the text against
// the threat and stalking lexicons, accumulates severity with a saturating
// sum, assigns the first matching category, and derives confidence from the
// number of flagged phrases. It has no external dependencies and never fails.
func Rules(text string, hasEvidence bool) *Result {
	lowered := strings.ToLower(text)

	severity := 0
	category := CategoryNonAbusive
	var phrases []string
	var rationaleParts []string

	for _, keyword := range threatKeywords {
		if containsPhrase(lowered, keyword) {
			phrases = append(phrases, keyword)
			severity += threatWeight
			if category == CategoryNonAbusive {
				category = CategoryThreats
			}
			if !slices.Contains(rationaleParts, threatRationale) {
				rationaleParts = append(rationaleParts, threatRationale)
			}
		}
	}

	for _, indicator := range stalkingIndicators {
		if containsPhrase(lowered, indicator) {
			phrases = append(phrases, indicator)
			severity += stalkingWeight
			if category == CategoryNonAbusive {
				category = CategoryStalking
			}
			if !slices.Contains(rationaleParts, stalkingRationale) {
				rationaleParts = append(rationaleParts, stalkingRationale)
			}
		}
	}

	severity = min(severity, maxSeverity)
	phrases = dedupe(phrases)
	confidence := min(maxRuleConfidence, baseConfidence+confidencePerMatch*float64(len(phrases)))

	rationale := noMatchRationale
	if len(rationaleParts) > 0 {
		rationale = strings.Join(rationaleParts, ". ") + "."
	}

	result := &Result{
		Category:           category,
		Severity:           severity,
		RiskLevel:          RiskFor(category, severity, text),
		Confidence:         confidence,
		Rationale:          rationale,
		HighlightedPhrases: phrases,
		IsConversational:   !hasEvidence,
	}

	if !hasEvidence {
		advice := adviceFor(severity)
		result.Advice = &advice
	}

	return result
}

func adviceFor(severity int) string {
	switch {
	case severity >= adviceHighThreshold:
		return adviceHighSeverity
	case severity >= adviceMidThreshold:
		return adviceMidSeverity
	default:
		return adviceLowSeverity
	}
}

// dedupe removes duplicate phrases, preserving first-seen order.
func dedupe(phrases []string) []string {
	if phrases == nil {
		return []string{}
	}

	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

package classify

import "strings"

// Risk aggregation weights and thresholds. The weighted score is
// monotonic: a higher score never yields a lower risk tier.
const (
	riskSeverityCritical = 40
	riskSeverityElevated = 25
	riskSeverityModerate = 10

	riskCategoryMajor = 30
	riskCategoryMinor = 15

	riskImmediateDanger = 20

	riskHighThreshold   = 50
	riskMediumThreshold = 25
)

// RiskFor derives the risk level from category, severity, and the source
// text. It is a pure function and the single source of truth for risk
// level: both classifier paths use it, and model output never supplies a
// risk level directly.
func RiskFor(category Category, severity int, text string) RiskLevel {
	lowered := strings.ToLower(text)
	score := 0

	switch {
	case severity >= 70:
		score += riskSeverityCritical
	case severity >= 40:
		score += riskSeverityElevated
	case severity >= 20:
		score += riskSeverityModerate
	}

	switch category {
	case CategoryThreats, CategoryStalking, CategoryImageBasedAbuse:
		score += riskCategoryMajor
	case CategorySexualContent, CategoryHarassment:
		score += riskCategoryMinor
	}

	if hasImmediateDanger(lowered) {
		score += riskImmediateDanger
	}

	switch {
	case score >= riskHighThreshold:
		return RiskHigh
	case score >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

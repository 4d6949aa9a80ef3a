// Package classify implements the content risk classification core for Safenet.
// It provides the keyword lexicons, the risk aggregation formula, the
// deterministic rule-based classifier, and normalization of model-produced
// classifications. Everything in this package is pure: no network, no
// storage, no shared mutable state.
package classify

import "slices"

// Category identifies the abuse category assigned to analyzed content.
type Category string

// Abuse categories. CategoryUnclear is only produced in conversational mode,
// where the model may decline to commit to a category.
const (
	CategoryHarassment      Category = "harassment"
	CategoryThreats         Category = "threats"
	CategoryStalking        Category = "stalking"
	CategoryImageBasedAbuse Category = "image_based_abuse"
	CategoryHateSpeech      Category = "hate_speech"
	CategorySexualContent   Category = "sexual_content"
	CategoryNonAbusive      Category = "non_abusive"
	CategoryUnclear         Category = "unclear"
)

var categories = []Category{
	CategoryHarassment,
	CategoryThreats,
	CategoryStalking,
	CategoryImageBasedAbuse,
	CategoryHateSpeech,
	CategorySexualContent,
	CategoryNonAbusive,
}

// Categories returns the closed set of categories accepted in evidence mode.
func Categories() []Category {
	return categories
}

// Valid reports whether c is a recognized category. Conversational mode
// additionally accepts CategoryUnclear.
func (c Category) Valid(conversational bool) bool {
	if conversational && c == CategoryUnclear {
		return true
	}
	return slices.Contains(categories, c)
}

// RiskLevel is the derived low/medium/high risk tier for classified content.
type RiskLevel string

// Risk tiers.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Language tags supported by the lexicons and prompt variants.
const (
	LanguageEnglish = "en"
	LanguageAmharic = "am"
)

// NormalizeLanguage returns lang if supported, defaulting to English otherwise.
func NormalizeLanguage(lang string) string {
	if lang == LanguageAmharic {
		return LanguageAmharic
	}
	return LanguageEnglish
}

// Request carries the inputs to a classification. Text is the sole content
// analyzed; no external state is read. HasEvidence selects the evidence-backed
// contract (true) or the conversational contract (false).
type Request struct {
	Text        string
	Language    string
	HasEvidence bool
}

// Result is the unified classification output shape produced by both the
// rule-based and model-backed paths. RiskLevel is always derived by RiskFor,
// never taken from model output. Advice is populated only in conversational
// mode.
type Result struct {
	Category           Category  `json:"category"`
	Severity           int       `json:"severity"`
	RiskLevel          RiskLevel `json:"risk_level"`
	Confidence         float64   `json:"confidence"`
	Rationale          string    `json:"rationale"`
	HighlightedPhrases []string  `json:"highlighted_phrases"`
	Advice             *string   `json:"advice,omitempty"`
	IsConversational   bool      `json:"is_conversational"`
}

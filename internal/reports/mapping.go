package reports

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/pkg/query"
	"github.com/safenet-ai/safenet/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "reports", "r").
	Project("id", "ID").
	Project("created_at", "CreatedAt").
	Project("expires_at", "ExpiresAt").
	Project("platform_id", "PlatformID").
	Project("language", "Language").
	Project("original_text", "OriginalText").
	Project("extracted_text", "ExtractedText").
	Project("category", "Category").
	Project("severity", "Severity").
	Project("risk_level", "RiskLevel").
	Project("confidence", "Confidence").
	Project("rationale", "Rationale").
	Project("highlighted_phrases", "HighlightedPhrases").
	Project("advice", "Advice").
	Project("is_conversational", "IsConversational").
	Project("file_hash", "FileHash").
	Project("anonymous", "Anonymous").
	Project("metadata", "Metadata")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for report queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Category   *classify.Category  `json:"category,omitempty"`
	RiskLevel  *classify.RiskLevel `json:"risk_level,omitempty"`
	PlatformID *string             `json:"platform_id,omitempty"`
	Language   *string             `json:"language,omitempty"`
	Anonymous  *bool               `json:"anonymous,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Category", f.Category).
		WhereEquals("RiskLevel", f.RiskLevel).
		WhereEquals("PlatformID", f.PlatformID).
		WhereEquals("Language", f.Language).
		WhereEquals("Anonymous", f.Anonymous)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("category"); c != "" {
		category := classify.Category(c)
		f.Category = &category
	}

	if rl := values.Get("risk_level"); rl != "" {
		level := classify.RiskLevel(rl)
		f.RiskLevel = &level
	}

	if p := values.Get("platform_id"); p != "" {
		f.PlatformID = &p
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	if a := values.Get("anonymous"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Anonymous = &v
		}
	}

	return f
}

func scanReport(s repository.Scanner) (Report, error) {
	var rep Report
	var phrasesRaw []byte
	var metadataRaw []byte

	err := s.Scan(
		&rep.ID,
		&rep.CreatedAt,
		&rep.ExpiresAt,
		&rep.PlatformID,
		&rep.Language,
		&rep.OriginalText,
		&rep.ExtractedText,
		&rep.Category,
		&rep.Severity,
		&rep.RiskLevel,
		&rep.Confidence,
		&rep.Rationale,
		&phrasesRaw,
		&rep.Advice,
		&rep.IsConversational,
		&rep.FileHash,
		&rep.Anonymous,
		&metadataRaw,
	)

	if err != nil {
		return rep, err
	}

	if len(phrasesRaw) > 0 {
		if err := json.Unmarshal(phrasesRaw, &rep.HighlightedPhrases); err != nil {
			return rep, fmt.Errorf("unmarshal highlighted_phrases: %w", err)
		}
	}

	if rep.HighlightedPhrases == nil {
		rep.HighlightedPhrases = []string{}
	}

	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &rep.Metadata); err != nil {
			return rep, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	if rep.Metadata == nil {
		rep.Metadata = map[string]any{}
	}

	return rep, nil
}

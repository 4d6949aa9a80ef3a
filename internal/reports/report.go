// Package reports implements the abuse report domain for Safenet.
// It provides types, data access, and business logic for submitting
// reports, classifying their content, attaching evidence files, and
// producing aggregate statistics.
package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/internal/evidence"
)

// Report represents a submitted abuse report with its classification result.
// Classification fields are immutable after insert.
type Report struct {
	ID                 uuid.UUID          `json:"id"`
	CreatedAt          time.Time          `json:"created_at"`
	ExpiresAt          time.Time          `json:"expires_at"`
	PlatformID         string             `json:"platform_id"`
	Language           string             `json:"language"`
	OriginalText       *string            `json:"original_text"`
	ExtractedText      string             `json:"extracted_text"`
	Category           classify.Category  `json:"category"`
	Severity           int                `json:"severity"`
	RiskLevel          classify.RiskLevel `json:"risk_level"`
	Confidence         float64            `json:"confidence"`
	Rationale          string             `json:"rationale"`
	HighlightedPhrases []string           `json:"highlighted_phrases"`
	Advice             *string            `json:"advice"`
	IsConversational   bool               `json:"is_conversational"`
	FileHash           *string            `json:"file_hash"`
	Anonymous          bool               `json:"anonymous"`
	Metadata           map[string]any     `json:"metadata"`
}

// Detail combines a report with its attached evidence files.
type Detail struct {
	Report
	Files []evidence.File `json:"files"`
}

// FileUpload carries an evidence file submitted alongside a report.
// PageCount is optional and only set for PDF evidence.
type FileUpload struct {
	Data      []byte
	Filename  string
	MimeType  string
	PageCount *int
}

// CreateCommand carries the data needed to submit a new report.
// Text is the content to classify (for screenshot evidence, the
// caller-extracted text). File is optional; its presence selects
// evidence-mode classification.
type CreateCommand struct {
	Text         string
	OriginalText *string
	Language     string
	PlatformID   string
	Anonymous    bool
	Metadata     map[string]any
	File         *FileUpload
}

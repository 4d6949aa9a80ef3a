// Package evidence implements the evidence file domain for Safenet.
// It provides types, data access, and business logic for storing and
// retrieving screenshot evidence attached to abuse reports, backed by
// blob storage.
package evidence

import (
	"time"

	"github.com/google/uuid"
)

// File represents a stored evidence file with its metadata and blob storage reference.
type File struct {
	ID         uuid.UUID `json:"id"`
	ReportID   uuid.UUID `json:"report_id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	FileHash   string    `json:"file_hash"`
	StorageKey string    `json:"storage_key"`
	PageCount  *int      `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CreateCommand carries the data needed to upload and register an evidence file.
// Data holds the raw file bytes. FileHash is the hex-encoded SHA-256 of Data,
// computed by the caller so the owning report can record the same hash.
// PageCount is optional and only set for PDF evidence.
type CreateCommand struct {
	ReportID  uuid.UUID
	Data      []byte
	Filename  string
	MimeType  string
	FileHash  string
	PageCount *int
}

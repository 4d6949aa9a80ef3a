package evidence

import (
	"github.com/safenet-ai/safenet/pkg/query"
	"github.com/safenet-ai/safenet/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "evidence_files", "e").
	Project("id", "ID").
	Project("report_id", "ReportID").
	Project("filename", "Filename").
	Project("file_size", "FileSize").
	Project("mime_type", "MimeType").
	Project("file_hash", "FileHash").
	Project("storage_key", "StorageKey").
	Project("page_count", "PageCount").
	Project("uploaded_at", "UploadedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

func scanFile(s repository.Scanner) (File, error) {
	var f File
	err := s.Scan(
		&f.ID,
		&f.ReportID,
		&f.Filename,
		&f.FileSize,
		&f.MimeType,
		&f.FileHash,
		&f.StorageKey,
		&f.PageCount,
		&f.UploadedAt,
	)
	return f, err
}

package evidence

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/safenet-ai/safenet/pkg/query"
	"github.com/safenet-ai/safenet/pkg/repository"
	"github.com/safenet-ai/safenet/pkg/storage"
)

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates an evidence repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
) System {
	return &repo{
		db:      db,
		storage: store,
		logger:  logger.With("system", "evidence"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*File, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]File, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ReportID", &reportID).
		Build()

	files, err := repository.QueryMany(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, fmt.Errorf("query evidence files: %w", err)
	}
	return files, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*File, error) {
	id := uuid.New()
	key := buildStorageKey(cmd.ReportID, id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.MimeType); err != nil {
		return nil, fmt.Errorf("upload evidence blob: %w", err)
	}

	q := `
		INSERT INTO evidence_files(id, report_id, filename, file_size, mime_type, file_hash, storage_key, page_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, report_id, filename, file_size, mime_type, file_hash, storage_key, page_count, uploaded_at`

	insertArgs := []any{
		id,
		cmd.ReportID,
		cmd.Filename,
		int64(len(cmd.Data)),
		cmd.MimeType,
		cmd.FileHash,
		key,
		cmd.PageCount,
	}

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (File, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanFile)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("evidence file created", "id", f.ID, "report_id", f.ReportID, "filename", f.Filename)
	return &f, nil
}

// Download returns the file metadata and a stream of its blob content.
// The caller must close the reader.
func (r *repo) Download(ctx context.Context, id uuid.UUID) (*File, io.ReadCloser, error) {
	f, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := r.storage.Download(ctx, f.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("download evidence blob: %w", err)
	}

	return f, body, nil
}

// DeleteByReport removes all evidence files for a report, including their
// blobs. Blob deletion happens after the DB rows are removed; failures are
// logged rather than surfaced since the rows are already gone.
func (r *repo) DeleteByReport(ctx context.Context, reportID uuid.UUID) error {
	files, err := r.ListByReport(ctx, reportID)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		_, err := tx.ExecContext(ctx, "DELETE FROM evidence_files WHERE report_id = $1", reportID)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	for _, f := range files {
		if delErr := r.storage.Delete(ctx, f.StorageKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", f.StorageKey,
				"error", delErr,
			)
		}
	}

	if len(files) > 0 {
		r.logger.Info("evidence files deleted", "report_id", reportID, "count", len(files))
	}
	return nil
}

func buildStorageKey(reportID, fileID uuid.UUID, filename string) string {
	return fmt.Sprintf("evidence/%s/%s/%s", reportID, fileID, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "evidence"
	}
	return url.PathEscape(name)
}

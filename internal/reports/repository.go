package reports

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/internal/evidence"
	"github.com/safenet-ai/safenet/internal/platforms"
	"github.com/safenet-ai/safenet/internal/prompts"
	"github.com/safenet-ai/safenet/internal/workflow"
	"github.com/safenet-ai/safenet/pkg/pagination"
	"github.com/safenet-ai/safenet/pkg/query"
	"github.com/safenet-ai/safenet/pkg/repository"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Reports are retained for 90 days after submission.
const retentionDays = 90

const minTextLength = 10

const returningColumns = `id, created_at, expires_at, platform_id, language,
		original_text, extracted_text, category, severity, risk_level,
		confidence, rationale, highlighted_phrases, advice, is_conversational,
		file_hash, anonymous, metadata`

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	evidence   evidence.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a report repository implementing the System interface.
// It internally constructs the workflow runtime from the provided dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	files evidence.System,
	prompts prompts.System,
) System {
	rt := &workflow.Runtime{
		Agent:   agent,
		Prompts: prompts,
		Logger:  logger.With("workflow", "classify"),
	}
	return &repo{
		db:         db,
		rt:         rt,
		evidence:   files,
		logger:     logger.With("system", "reports"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Report], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ExtractedText", "Rationale")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanReport)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Detail, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	files, err := r.evidence.ListByReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list evidence files: %w", err)
	}

	return &Detail{Report: rep, Files: files}, nil
}

// Create classifies the submitted content and persists the report. The
// classification never fails: when no model is configured or the model path
// errors, deterministic rules produce the result. An attached file is
// hashed, stored as an evidence record, and selects evidence-mode
// classification.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Detail, error) {
	text := strings.TrimSpace(cmd.Text)
	if len(text) < minTextLength {
		return nil, ErrTextTooShort
	}

	language := classify.NormalizeLanguage(cmd.Language)
	platformID := platforms.Normalize(cmd.PlatformID)

	result := workflow.Execute(ctx, r.rt, classify.Request{
		Text:        text,
		Language:    language,
		HasEvidence: cmd.File != nil,
	})

	var fileHash *string
	if cmd.File != nil {
		sum := sha256.Sum256(cmd.File.Data)
		h := hex.EncodeToString(sum[:])
		fileHash = &h
	}

	phrasesJSON, err := json.Marshal(result.HighlightedPhrases)
	if err != nil {
		return nil, fmt.Errorf("marshal highlighted_phrases: %w", err)
	}

	metadata := cmd.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	id := uuid.New()

	q := fmt.Sprintf(`
		INSERT INTO reports(
			id, expires_at, platform_id, language, original_text,
			extracted_text, category, severity, risk_level, confidence,
			rationale, highlighted_phrases, advice, is_conversational,
			file_hash, anonymous, metadata
		)
		VALUES ($1, NOW() + make_interval(days => %d), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING %s`, retentionDays, returningColumns)

	insertArgs := []any{
		id,
		platformID,
		language,
		cmd.OriginalText,
		text,
		result.Category,
		result.Severity,
		result.RiskLevel,
		result.Confidence,
		result.Rationale,
		phrasesJSON,
		result.Advice,
		result.IsConversational,
		fileHash,
		cmd.Anonymous,
		metadataJSON,
	}

	rep, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Report, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanReport)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	var files []evidence.File
	if cmd.File != nil {
		f, err := r.evidence.Create(ctx, evidence.CreateCommand{
			ReportID:  rep.ID,
			Data:      cmd.File.Data,
			Filename:  cmd.File.Filename,
			MimeType:  cmd.File.MimeType,
			FileHash:  *fileHash,
			PageCount: cmd.File.PageCount,
		})
		if err != nil {
			r.compensateReport(ctx, rep.ID)
			return nil, fmt.Errorf("store evidence file: %w", err)
		}
		files = append(files, *f)
	}

	r.logger.Info("report created",
		"id", rep.ID,
		"platform_id", rep.PlatformID,
		"category", rep.Category,
		"risk_level", rep.RiskLevel,
		"has_evidence", cmd.File != nil,
	)
	return &Detail{Report: rep, Files: files}, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.evidence.DeleteByReport(ctx, id); err != nil {
		return fmt.Errorf("delete evidence files: %w", err)
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM reports WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("report deleted", "id", id)
	return nil
}

func (r *repo) compensateReport(ctx context.Context, id uuid.UUID) {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM reports WHERE id = $1", id); err != nil {
		r.logger.Warn("compensating report delete failed", "id", id, "error", err)
	}
}

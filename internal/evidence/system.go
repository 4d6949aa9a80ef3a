package evidence

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// System defines the public contract for evidence domain operations.
type System interface {
	Handler() *Handler

	Find(ctx context.Context, id uuid.UUID) (*File, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]File, error)
	Create(ctx context.Context, cmd CreateCommand) (*File, error)
	Download(ctx context.Context, id uuid.UUID) (*File, io.ReadCloser, error)
	DeleteByReport(ctx context.Context, reportID uuid.UUID) error
}

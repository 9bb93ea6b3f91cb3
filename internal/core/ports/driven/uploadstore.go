package driven

import (
	"context"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// UploadStore persists upload history records.
type UploadStore interface {
	// Save inserts or replaces a record by ID.
	Save(ctx context.Context, record *domain.UploadRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if missing.
	Get(ctx context.Context, id string) (*domain.UploadRecord, error)

	// List returns the most recent records first.
	// A limit of zero or less returns every record.
	List(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

package driving

import (
	"context"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// UploadService submits RFP documents to the backend.
type UploadService interface {
	// Upload reads the file at path and submits it.
	// An empty path returns domain.ErrNoFileSelected without contacting the backend.
	Upload(ctx context.Context, path string) (*domain.UploadReceipt, error)

	// UploadFile submits an already-opened file.
	UploadFile(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error)

	// History returns recent upload attempts, newest first.
	History(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

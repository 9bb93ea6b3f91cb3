package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// Ensure UploadService implements the interface.
var _ driving.UploadService = (*UploadService)(nil)

// UploadService submits RFP documents and keeps a history of attempts.
type UploadService struct {
	backend driven.Backend
	store   driven.UploadStore // optional
	now     func() time.Time
}

// NewUploadService creates a new upload service.
// store may be nil, in which case no history is kept.
func NewUploadService(backend driven.Backend, store driven.UploadStore) *UploadService {
	return &UploadService{
		backend: backend,
		store:   store,
		now:     time.Now,
	}
}

// Upload reads the file at path and submits it to the backend.
func (s *UploadService) Upload(ctx context.Context, path string) (*domain.UploadReceipt, error) {
	if path == "" {
		return nil, domain.ErrNoFileSelected
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	if !domain.IsPDFPath(path) {
		logger.Warn("Uploading %s which does not have a .pdf extension", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return s.UploadFile(ctx, domain.UploadedFile{
		Name:    filepath.Base(path),
		Size:    info.Size(),
		Content: f,
	})
}

// UploadFile submits an already-opened file and records the outcome.
func (s *UploadService) UploadFile(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error) {
	if file.Content == nil || file.Name == "" {
		return nil, domain.ErrNoFileSelected
	}
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Debug("Uploading %s (%d bytes) to %s", file.Name, file.Size, s.backend.BaseURL())
	receipt, err := s.backend.UploadRFP(ctx, file)

	record := &domain.UploadRecord{
		ID:         uuid.New().String(),
		FileName:   file.Name,
		Size:       file.Size,
		Status:     domain.UploadSucceeded,
		UploadedAt: s.now(),
	}
	if err != nil {
		record.Status = domain.UploadFailed
		record.Error = err.Error()
	}
	s.record(ctx, record)

	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", file.Name, err)
	}
	logger.Info("Uploaded %s", file.Name)
	return receipt, nil
}

// History returns recent upload attempts, newest first.
func (s *UploadService) History(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	if s.store == nil {
		return []domain.UploadRecord{}, nil
	}
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("upload history: %w", err)
	}
	return records, nil
}

// record persists a history entry. Failures are logged, never returned.
func (s *UploadService) record(ctx context.Context, record *domain.UploadRecord) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, record); err != nil {
		logger.Warn("Failed to record upload of %s: %v", record.FileName, err)
	}
}

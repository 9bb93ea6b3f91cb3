package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
)

// Ensure UploadStore implements the interface.
var _ driven.UploadStore = (*UploadStore)(nil)

// UploadStore is an in-memory implementation of driven.UploadStore.
// History is lost when the process exits.
type UploadStore struct {
	mu      sync.RWMutex
	records map[string]domain.UploadRecord
}

// NewUploadStore creates a new in-memory upload store.
func NewUploadStore() *UploadStore {
	return &UploadStore{
		records: make(map[string]domain.UploadRecord),
	}
}

// Save stores or replaces a record.
func (s *UploadStore) Save(_ context.Context, record *domain.UploadRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("%w: upload record requires an id", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = *record
	return nil
}

// Get retrieves a record by ID.
func (s *UploadStore) Get(_ context.Context, id string) (*domain.UploadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first, capped at limit when positive.
func (s *UploadStore) List(_ context.Context, limit int) ([]domain.UploadRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.UploadRecord, 0, len(s.records))
	for _, r := range s.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].UploadedAt.Equal(records[j].UploadedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].UploadedAt.After(records[j].UploadedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
)

// mockBackend implements driven.Backend for testing.
type mockBackend struct {
	baseURL string

	uploadFunc   func(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error)
	summaryFunc  func(ctx context.Context) (domain.TechnicalSummary, error)
	scopeFunc    func(ctx context.Context) (domain.ScopeOfSupply, error)
	specFunc     func(ctx context.Context) ([]domain.SpecMatchRow, error)
	oemFunc      func(ctx context.Context) (*domain.OEMRecommendations, error)
	uploadCalls  int
	uploadedBody []byte
}

var _ driven.Backend = (*mockBackend)(nil)

func (m *mockBackend) UploadRFP(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error) {
	m.uploadCalls++
	if file.Content != nil {
		m.uploadedBody, _ = io.ReadAll(file.Content)
	}
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, file)
	}
	return &domain.UploadReceipt{Body: map[string]any{"status": "ok"}}, nil
}

func (m *mockBackend) FetchTechnicalSummary(ctx context.Context) (domain.TechnicalSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx)
	}
	return domain.TechnicalSummary{}, nil
}

func (m *mockBackend) FetchScopeOfSupply(ctx context.Context) (domain.ScopeOfSupply, error) {
	if m.scopeFunc != nil {
		return m.scopeFunc(ctx)
	}
	return domain.ScopeOfSupply{}, nil
}

func (m *mockBackend) FetchSpecMatch(ctx context.Context) ([]domain.SpecMatchRow, error) {
	if m.specFunc != nil {
		return m.specFunc(ctx)
	}
	return []domain.SpecMatchRow{}, nil
}

func (m *mockBackend) FetchOEMRecommendations(ctx context.Context) (*domain.OEMRecommendations, error) {
	if m.oemFunc != nil {
		return m.oemFunc(ctx)
	}
	return &domain.OEMRecommendations{Value: map[string]any{}}, nil
}

func (m *mockBackend) BaseURL() string {
	if m.baseURL == "" {
		return domain.DefaultBackendURL
	}
	return m.baseURL
}

// mockUploadStore implements driven.UploadStore for testing.
type mockUploadStore struct {
	mu      sync.Mutex
	records []domain.UploadRecord
	saveErr error
	listErr error
}

var _ driven.UploadStore = (*mockUploadStore)(nil)

func (m *mockUploadStore) Save(_ context.Context, record *domain.UploadRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockUploadStore) Get(_ context.Context, id string) (*domain.UploadRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id {
			r := m.records[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUploadStore) List(_ context.Context, limit int) ([]domain.UploadRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.UploadRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		out = append(out, m.records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")

package web

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// mockDashboardService is a mock implementation of driving.DashboardService.
type mockDashboardService struct {
	summary    domain.TechnicalSummary
	summaryErr error
	scope      domain.ScopeOfSupply
	scopeErr   error
	rows       []domain.SpecMatchRow
	rowsErr    error
	recs       *domain.OEMRecommendations
	recsErr    error
	nilRecs    bool
	calls      int32
}

func (m *mockDashboardService) TechnicalSummary(_ context.Context) (domain.TechnicalSummary, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.summary, m.summaryErr
}

func (m *mockDashboardService) ScopeOfSupply(_ context.Context) (domain.ScopeOfSupply, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.scope, m.scopeErr
}

func (m *mockDashboardService) SpecMatch(_ context.Context) ([]domain.SpecMatchRow, error) {
	atomic.AddInt32(&m.calls, 1)
	return m.rows, m.rowsErr
}

func (m *mockDashboardService) OEMRecommendations(_ context.Context) (*domain.OEMRecommendations, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.recsErr != nil {
		return nil, m.recsErr
	}
	if m.nilRecs {
		return nil, nil
	}
	if m.recs == nil {
		return &domain.OEMRecommendations{Value: map[string]any{}}, nil
	}
	return m.recs, nil
}

func (m *mockDashboardService) Origin() string { return "http://backend.test" }

// mockUploadService is a mock implementation of driving.UploadService.
type mockUploadService struct {
	err   error
	files []domain.UploadedFile
	body  []byte
}

func (m *mockUploadService) Upload(_ context.Context, _ string) (*domain.UploadReceipt, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockUploadService) UploadFile(_ context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error) {
	m.files = append(m.files, file)
	if file.Content != nil {
		m.body, _ = io.ReadAll(file.Content)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.UploadReceipt{Body: map[string]any{"status": "ok"}}, nil
}

func (m *mockUploadService) History(_ context.Context, _ int) ([]domain.UploadRecord, error) {
	return []domain.UploadRecord{}, nil
}

package mcp

import (
	"context"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// mockDashboardService is a mock implementation of driving.DashboardService.
type mockDashboardService struct {
	summary domain.TechnicalSummary
	scope   domain.ScopeOfSupply
	rows    []domain.SpecMatchRow
	recs    *domain.OEMRecommendations
	err     error
}

func (m *mockDashboardService) TechnicalSummary(_ context.Context) (domain.TechnicalSummary, error) {
	return m.summary, m.err
}

func (m *mockDashboardService) ScopeOfSupply(_ context.Context) (domain.ScopeOfSupply, error) {
	return m.scope, m.err
}

func (m *mockDashboardService) SpecMatch(_ context.Context) ([]domain.SpecMatchRow, error) {
	return m.rows, m.err
}

func (m *mockDashboardService) OEMRecommendations(_ context.Context) (*domain.OEMRecommendations, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recs, nil
}

func (m *mockDashboardService) Origin() string { return domain.DefaultBackendURL }

// mockUploadService is a mock implementation of driving.UploadService.
type mockUploadService struct {
	receipt   *domain.UploadReceipt
	records   []domain.UploadRecord
	err       error
	paths     []string
	lastLimit int
}

func (m *mockUploadService) Upload(_ context.Context, path string) (*domain.UploadReceipt, error) {
	m.paths = append(m.paths, path)
	return m.receipt, m.err
}

func (m *mockUploadService) UploadFile(_ context.Context, _ domain.UploadedFile) (*domain.UploadReceipt, error) {
	return m.receipt, m.err
}

func (m *mockUploadService) History(_ context.Context, limit int) ([]domain.UploadRecord, error) {
	m.lastLimit = limit
	return m.records, m.err
}

// Verify interface compliance.
var (
	_ driving.DashboardService = (*mockDashboardService)(nil)
	_ driving.UploadService    = (*mockUploadService)(nil)
)

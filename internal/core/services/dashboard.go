package services

import (
	"context"
	"fmt"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// Ensure DashboardService implements the interface.
var _ driving.DashboardService = (*DashboardService)(nil)

// DashboardService reads the analysis panels from the backend.
type DashboardService struct {
	backend driven.Backend
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(backend driven.Backend) *DashboardService {
	return &DashboardService{backend: backend}
}

// TechnicalSummary fetches the technical summary of the current RFP.
func (s *DashboardService) TechnicalSummary(ctx context.Context) (domain.TechnicalSummary, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Fetching technical summary from %s", s.backend.BaseURL())
	summary, err := s.backend.FetchTechnicalSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("technical summary: %w", err)
	}
	logger.Debug("Technical summary has %d keys", len(summary))
	return summary, nil
}

// ScopeOfSupply fetches the scope-of-supply breakdown.
func (s *DashboardService) ScopeOfSupply(ctx context.Context) (domain.ScopeOfSupply, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Fetching scope of supply from %s", s.backend.BaseURL())
	scope, err := s.backend.FetchScopeOfSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("scope of supply: %w", err)
	}
	return scope, nil
}

// SpecMatch fetches the RFP item to OEM SKU matches in backend order.
func (s *DashboardService) SpecMatch(ctx context.Context) ([]domain.SpecMatchRow, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Fetching spec match from %s", s.backend.BaseURL())
	rows, err := s.backend.FetchSpecMatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("spec match: %w", err)
	}
	if rows == nil {
		rows = []domain.SpecMatchRow{}
	}
	logger.Debug("Spec match returned %d rows", len(rows))
	return rows, nil
}

// OEMRecommendations fetches the OEM recommendations.
func (s *DashboardService) OEMRecommendations(ctx context.Context) (*domain.OEMRecommendations, error) {
	if s.backend == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Fetching OEM recommendations from %s", s.backend.BaseURL())
	recs, err := s.backend.FetchOEMRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("oem recommendations: %w", err)
	}
	return recs, nil
}

// Origin returns the backend origin, or an empty string when unconfigured.
func (s *DashboardService) Origin() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.BaseURL()
}

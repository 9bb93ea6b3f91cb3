package driving

import (
	"context"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// DashboardService exposes the four read-only analysis panels.
type DashboardService interface {
	// TechnicalSummary fetches the technical summary of the current RFP.
	TechnicalSummary(ctx context.Context) (domain.TechnicalSummary, error)

	// ScopeOfSupply fetches the scope-of-supply breakdown.
	ScopeOfSupply(ctx context.Context) (domain.ScopeOfSupply, error)

	// SpecMatch fetches the RFP item to OEM SKU matches.
	SpecMatch(ctx context.Context) ([]domain.SpecMatchRow, error)

	// OEMRecommendations fetches the OEM recommendations.
	OEMRecommendations(ctx context.Context) (*domain.OEMRecommendations, error)

	// Origin returns the backend origin the panels are read from.
	Origin() string
}

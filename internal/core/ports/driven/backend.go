package driven

import (
	"context"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// Backend is the transport to the RFP analysis service.
// Each call is one HTTP request. Errors wrap domain.ErrTransport,
// domain.ErrUnexpectedStatus or domain.ErrMalformedResponse.
type Backend interface {
	// UploadRFP sends a document as a multipart form with a single "file" part.
	UploadRFP(ctx context.Context, file domain.UploadedFile) (*domain.UploadReceipt, error)

	// FetchTechnicalSummary returns the technical summary object.
	FetchTechnicalSummary(ctx context.Context) (domain.TechnicalSummary, error)

	// FetchScopeOfSupply returns the scope-of-supply object.
	FetchScopeOfSupply(ctx context.Context) (domain.ScopeOfSupply, error)

	// FetchSpecMatch returns the matched rows in backend order.
	// An empty result is a non-nil empty slice.
	FetchSpecMatch(ctx context.Context) ([]domain.SpecMatchRow, error)

	// FetchOEMRecommendations returns the recommendation object or array.
	FetchOEMRecommendations(ctx context.Context) (*domain.OEMRecommendations, error)

	// BaseURL returns the origin requests are sent to.
	BaseURL() string
}

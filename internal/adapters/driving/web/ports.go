package web

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Ports aggregates what the web dashboard needs.
type Ports struct {
	Dashboard driving.DashboardService
	Upload    driving.UploadService

	// Metrics is served on /metrics when set.
	Metrics prometheus.Gatherer
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	return nil
}

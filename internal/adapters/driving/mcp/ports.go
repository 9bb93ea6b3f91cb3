package mcp

import (
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Dashboard fetches the four derived views.
	Dashboard driving.DashboardService

	// Upload submits RFPs and lists past attempts.
	Upload driving.UploadService
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

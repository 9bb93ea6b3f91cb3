// Package tui provides the interactive RFP dashboard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Dashboard fetches the four read-only panels.
	Dashboard driving.DashboardService

	// Upload submits RFP documents.
	Upload driving.UploadService

	// StartDir is where the file picker opens. Empty means the working directory.
	StartDir string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(dashboard driving.DashboardService, upload driving.UploadService) *Ports {
	return &Ports{
		Dashboard: dashboard,
		Upload:    upload,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dashboard == nil {
		return ErrMissingDashboardService
	}
	if p.Upload == nil {
		return ErrMissingUploadService
	}
	return nil
}

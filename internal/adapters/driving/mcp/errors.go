// Package mcp provides an MCP (Model Context Protocol) server adapter for BidAssist.
// It lets AI assistants upload RFPs and read the backend's derived views.
package mcp

import "errors"

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("mcp: dashboard service is required")

// ErrMissingUploadService is returned when the upload service is not provided.
var ErrMissingUploadService = errors.New("mcp: upload service is required")

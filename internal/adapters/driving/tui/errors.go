package tui

import "errors"

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("tui: dashboard service is required")

// ErrMissingUploadService is returned when the upload service is not provided.
var ErrMissingUploadService = errors.New("tui: upload service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

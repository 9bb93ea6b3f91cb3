// Package web serves the dashboard as a server-rendered HTML page.
//
// Every GET / is one mount: the four panels are fetched concurrently and
// rendered in their final loaded or failed state.
package web

import "errors"

// ErrMissingDashboardService is returned when the dashboard service is not provided.
var ErrMissingDashboardService = errors.New("web: dashboard service is required")

// ErrMissingUploadService is returned when the upload service is not provided.
var ErrMissingUploadService = errors.New("web: upload service is required")

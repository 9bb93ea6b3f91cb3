package domain

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultBackendURL is the origin the dashboard talks to when nothing is configured.
const DefaultBackendURL = "http://localhost:8000"

// BackendSettings configures the transport to the RFP analysis backend.
type BackendSettings struct {
	// URL is the backend origin, e.g. http://localhost:8000.
	URL string

	// Timeout bounds each request. Zero means no explicit timeout.
	Timeout time.Duration
}

// ServeSettings configures the web dashboard.
type ServeSettings struct {
	Addr string
}

// WatchSettings configures the directory watcher.
type WatchSettings struct {
	// Interval is the minimum spacing between two uploads.
	Interval time.Duration
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Backend BackendSettings
	Serve   ServeSettings
	Watch   WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Backend: BackendSettings{
			URL: DefaultBackendURL,
		},
		Serve: ServeSettings{
			Addr: ":8080",
		},
		Watch: WatchSettings{
			Interval: 2 * time.Second,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if err := ValidateBackendURL(s.Backend.URL); err != nil {
		return err
	}
	if s.Backend.Timeout < 0 {
		return fmt.Errorf("%w: backend timeout must not be negative", ErrInvalidInput)
	}
	if s.Serve.Addr == "" {
		return fmt.Errorf("%w: serve address is required", ErrInvalidInput)
	}
	if s.Watch.Interval <= 0 {
		return fmt.Errorf("%w: watch interval must be positive", ErrInvalidInput)
	}
	return nil
}

// ValidateBackendURL checks that raw is an absolute http or https URL.
func ValidateBackendURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: backend URL is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: backend URL: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: backend URL must use http or https, got %q", ErrInvalidInput, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: backend URL must include a host, got %q", ErrInvalidInput, raw)
	}
	return nil
}

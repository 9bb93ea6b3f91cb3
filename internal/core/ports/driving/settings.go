package driving

import "github.com/bidassist/bidassist-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBackendURL validates and persists the backend origin.
	SetBackendURL(url string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

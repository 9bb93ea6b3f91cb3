package services

import (
	"fmt"
	"os"
	"time"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBackendURL     = "backend.url"
	keyBackendTimeout = "backend.timeout_seconds"
	keyServeAddr      = "serve.addr"
	keyWatchInterval  = "watch.interval_seconds"
)

// EnvBackendURL overrides the configured backend origin when set.
const EnvBackendURL = "BIDASSIST_BACKEND_URL"

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Precedence is environment, then config file, then defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Backend: domain.BackendSettings{
			URL:     s.getString(keyBackendURL, defaults.Backend.URL),
			Timeout: s.getSeconds(keyBackendTimeout, defaults.Backend.Timeout),
		},
		Serve: domain.ServeSettings{
			Addr: s.getString(keyServeAddr, defaults.Serve.Addr),
		},
		Watch: domain.WatchSettings{
			Interval: s.getSeconds(keyWatchInterval, defaults.Watch.Interval),
		},
	}

	if env := os.Getenv(EnvBackendURL); env != "" {
		settings.Backend.URL = env
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyBackendURL, settings.Backend.URL); err != nil {
		return fmt.Errorf("save backend url: %w", err)
	}
	if err := s.configStore.Set(keyBackendTimeout, int(settings.Backend.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save backend timeout: %w", err)
	}
	if err := s.configStore.Set(keyServeAddr, settings.Serve.Addr); err != nil {
		return fmt.Errorf("save serve addr: %w", err)
	}
	if err := s.configStore.Set(keyWatchInterval, int(settings.Watch.Interval/time.Second)); err != nil {
		return fmt.Errorf("save watch interval: %w", err)
	}
	return nil
}

// SetBackendURL validates and persists the backend origin.
func (s *SettingsService) SetBackendURL(url string) error {
	if err := domain.ValidateBackendURL(url); err != nil {
		return err
	}
	if err := s.configStore.Set(keyBackendURL, url); err != nil {
		return fmt.Errorf("save backend url: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

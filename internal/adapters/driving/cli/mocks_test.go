package cli

import (
	"context"
	"time"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

// MockDashboardService implements driving.DashboardService for CLI tests.
type MockDashboardService struct {
	SummaryErr   error
	ScopeErr     error
	SpecMatchErr error
	OEMErr       error
	Rows         []domain.SpecMatchRow
}

func (m *MockDashboardService) TechnicalSummary(_ context.Context) (domain.TechnicalSummary, error) {
	if m.SummaryErr != nil {
		return nil, m.SummaryErr
	}
	return domain.TechnicalSummary{"voltage": "11kV"}, nil
}

func (m *MockDashboardService) ScopeOfSupply(_ context.Context) (domain.ScopeOfSupply, error) {
	if m.ScopeErr != nil {
		return nil, m.ScopeErr
	}
	return domain.ScopeOfSupply{"lot": "A"}, nil
}

func (m *MockDashboardService) SpecMatch(_ context.Context) ([]domain.SpecMatchRow, error) {
	if m.SpecMatchErr != nil {
		return nil, m.SpecMatchErr
	}
	if m.Rows != nil {
		return m.Rows, nil
	}
	return []domain.SpecMatchRow{
		{RFPItem: "Transformer", OEMSKU: "TX-1", MatchPercent: 92.5},
		{RFPItem: "Cable", OEMSKU: "CB-1", MatchPercent: 60},
	}, nil
}

func (m *MockDashboardService) OEMRecommendations(_ context.Context) (*domain.OEMRecommendations, error) {
	if m.OEMErr != nil {
		return nil, m.OEMErr
	}
	return &domain.OEMRecommendations{Value: []any{"OEM A", "OEM B"}}, nil
}

func (m *MockDashboardService) Origin() string { return domain.DefaultBackendURL }

// MockUploadService implements driving.UploadService for CLI tests.
type MockUploadService struct {
	UploadErr error
	Records   []domain.UploadRecord
	Paths     []string
	LastLimit int
}

func (m *MockUploadService) Upload(_ context.Context, path string) (*domain.UploadReceipt, error) {
	m.Paths = append(m.Paths, path)
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	return &domain.UploadReceipt{Body: map[string]any{"status": "processed"}}, nil
}

func (m *MockUploadService) UploadFile(_ context.Context, _ domain.UploadedFile) (*domain.UploadReceipt, error) {
	return nil, domain.ErrNotImplemented
}

func (m *MockUploadService) History(_ context.Context, limit int) ([]domain.UploadRecord, error) {
	m.LastLimit = limit
	return m.Records, nil
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	Settings   *domain.AppSettings
	Saved      *domain.AppSettings
	BackendURL string
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.Settings == nil {
		return domain.DefaultAppSettings(), nil
	}
	return m.Settings, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	m.Saved = settings
	return nil
}

func (m *MockSettingsService) SetBackendURL(url string) error {
	if err := domain.ValidateBackendURL(url); err != nil {
		return err
	}
	m.BackendURL = url
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// testServices holds the mocks installed by setupTestServices.
type testServices struct {
	Dashboard *MockDashboardService
	Upload    *MockUploadService
	Settings  *MockSettingsService
}

// setupTestServices installs mocks and returns them with a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		Dashboard: &MockDashboardService{},
		Upload: &MockUploadService{Records: []domain.UploadRecord{{
			ID:         "rec-1",
			FileName:   "tender.pdf",
			Size:       2048,
			Status:     domain.UploadSucceeded,
			UploadedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		}}},
		Settings: &MockSettingsService{},
	}
	SetServices(&Services{
		Dashboard: ts.Dashboard,
		Upload:    ts.Upload,
		Settings:  ts.Settings,
	})
	return ts, func() {
		SetServices(nil)
		specMatchJSON = false
		uploadJSON = false
		historyJSON = false
		historyLimit = 20
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}
}

// Command bidassist is the RFP BidAssist dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bidassist/bidassist-cli/internal/adapters/driven/backend"
	"github.com/bidassist/bidassist-cli/internal/adapters/driven/config/file"
	"github.com/bidassist/bidassist-cli/internal/adapters/driven/metrics"
	"github.com/bidassist/bidassist-cli/internal/adapters/driven/storage/memory"
	"github.com/bidassist/bidassist-cli/internal/adapters/driven/storage/sqlite"
	"github.com/bidassist/bidassist-cli/internal/adapters/driving/cli"
	"github.com/bidassist/bidassist-cli/internal/core/domain"
	"github.com/bidassist/bidassist-cli/internal/core/ports/driven"
	"github.com/bidassist/bidassist-cli/internal/core/services"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.BootstrapOptions) (*cli.Services, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	logger.Section("Bootstrap")
	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	backendURL := settings.Backend.URL
	if opts.BackendURL != "" {
		if err := domain.ValidateBackendURL(opts.BackendURL); err != nil {
			return nil, err
		}
		backendURL = opts.BackendURL
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewBackendMetrics(registry)

	client, err := backend.NewClient(backendURL,
		backend.WithTimeout(settings.Backend.Timeout),
		backend.WithUserAgent("bidassist/"+version),
		backend.WithRecorder(recorder),
	)
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}

	var (
		history driven.UploadStore
		closeFn func() error
	)
	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		logger.Warn("upload history falls back to memory: %v", err)
		history = memory.NewUploadStore()
	} else {
		history = store
		closeFn = store.Close
	}
	logger.Debug("backend %s, config %s", backendURL, configStore.Path())

	return &cli.Services{
		Dashboard:  services.NewDashboardService(client),
		Upload:     services.NewUploadService(client, history),
		Settings:   settingsService,
		Metrics:    registry,
		LogDir:     dir,
		ConfigPath: configStore.Path(),
		Close:      closeFn,
	}, nil
}

// Package cli provides the bidassist command line.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bidassist/bidassist-cli/internal/core/ports/driving"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// annotationNoServices marks commands that run without the bootstrap.
const annotationNoServices = "bidassist/no-services"

// Injected services. Commands check for nil before use.
var (
	dashboardService driving.DashboardService
	uploadService    driving.UploadService
	settingsService  driving.SettingsService
	metricsGatherer  prometheus.Gatherer
	logDir           string
	configPath       string
	closeServices    func() error
)

// Persistent flags.
var (
	backendFlag   string
	configDirFlag string
	verboseFlag   bool
)

// BootstrapOptions carries the persistent flags into service construction.
type BootstrapOptions struct {
	BackendURL string
	ConfigDir  string
	Verbose    bool
}

// Services is the wired core handed to the commands.
type Services struct {
	Dashboard driving.DashboardService
	Upload    driving.UploadService
	Settings  driving.SettingsService

	// Metrics is exposed by serve on /metrics.
	Metrics prometheus.Gatherer

	// LogDir receives tui.log.
	LogDir string

	// ConfigPath is shown by config show.
	ConfigPath string

	// Close releases stores. May be nil.
	Close func() error
}

// BootstrapFunc builds services once flags are parsed.
type BootstrapFunc func(opts BootstrapOptions) (*Services, error)

var bootstrap BootstrapFunc

var rootCmd = &cobra.Command{
	Use:   "bidassist",
	Short: "RFP BidAssist dashboard",
	Long: `bidassist uploads RFP documents to the BidAssist analysis backend and shows
what it derives from them: technical summary, scope of supply, spec match and
OEM recommendations.

Run without a subcommand in a terminal to open the interactive dashboard.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&backendFlag, "backend", "", "backend origin (overrides BIDASSIST_BACKEND_URL and config)")
	flags.StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.bidassist)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// SetBootstrap sets the function that builds services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices injects already built services.
func SetServices(s *Services) {
	if s == nil {
		dashboardService, uploadService, settingsService = nil, nil, nil
		metricsGatherer, logDir, configPath, closeServices = nil, "", "", nil
		return
	}
	dashboardService = s.Dashboard
	uploadService = s.Upload
	settingsService = s.Settings
	metricsGatherer = s.Metrics
	logDir = s.LogDir
	configPath = s.ConfigPath
	closeServices = s.Close
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("loading .env: %v", err)
	}

	if _, skip := cmd.Annotations[annotationNoServices]; skip {
		return nil
	}
	if bootstrap == nil || dashboardService != nil {
		return nil
	}

	svc, err := bootstrap(BootstrapOptions{
		BackendURL: backendFlag,
		ConfigDir:  configDirFlag,
		Verbose:    verboseFlag,
	})
	if err != nil {
		return err
	}
	SetServices(svc)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	logger.Sync()
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal(os.Stdout) {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// requireDashboard returns the dashboard service or a wiring error.
func requireDashboard() (driving.DashboardService, error) {
	if dashboardService == nil {
		return nil, errors.New("dashboard service not configured")
	}
	return dashboardService, nil
}

// requireUpload returns the upload service or a wiring error.
func requireUpload() (driving.UploadService, error) {
	if uploadService == nil {
		return nil, errors.New("upload service not configured")
	}
	return uploadService, nil
}

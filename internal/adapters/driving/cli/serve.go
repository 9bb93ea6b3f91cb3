package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/web"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

var (
	serveAddr    string
	serveLogJSON bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the dashboard as an HTML page for browser users.

Routes:
  GET  /         dashboard with all four panels
  POST /upload   upload form (multipart field "file")
  GET  /healthz  liveness
  GET  /metrics  Prometheus metrics for backend traffic`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "write logs as JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveLogJSON {
		logger.SetFormat(logger.FormatJSON)
	}
	if !verboseFlag {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := serveAddr
	if addr == "" && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			addr = settings.Serve.Addr
		}
	}
	if addr == "" {
		addr = ":8080"
	}

	server, err := web.NewServer(&web.Ports{
		Dashboard: dashboardService,
		Upload:    uploadService,
		Metrics:   metricsGatherer,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Dashboard listening on %s\n", addr)
	return server.Run(cmd.Context(), addr)
}

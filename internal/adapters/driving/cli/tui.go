package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/tui"
	"github.com/bidassist/bidassist-cli/internal/logger"
)

// tuiLogFile is written in the log directory while the TUI owns the screen.
const tuiLogFile = "tui.log"

var tuiStartDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive RFP dashboard.

The dashboard shows the upload panel, the technical summary, the scope of
supply, the spec-match table and OEM recommendations. Each panel fetches once
when it is mounted.

Controls:
  o         - Choose a PDF
  u         - Upload the chosen PDF
  tab       - Next panel
  ↑/k, ↓/j  - Scroll the focused panel
  r         - Refresh all panels
  enter     - Dismiss a notice
  q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiStartDir, "dir", "", "directory the file picker opens in")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	ports := tui.NewPorts(dashboardService, uploadService)
	ports.StartDir = tuiStartDir

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if logDir != "" {
		f, err := os.OpenFile(filepath.Join(logDir, tuiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			logger.SetOutput(f)
			defer func() {
				logger.SetOutput(os.Stderr)
				f.Close()
			}()
		}
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

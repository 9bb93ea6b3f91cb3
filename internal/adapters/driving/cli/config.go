package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the backend origin and other settings.

Settings are read from the environment (BIDASSIST_BACKEND_URL), then the
config file, then defaults. The --backend flag overrides all of them.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runConfigWizard,
}

var configSetBackendCmd = &cobra.Command{
	Use:   "set-backend <url>",
	Short: "Set the backend origin",
	Long:  `Validate and save the backend origin, e.g. http://localhost:8000.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetBackend,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configWizardCmd)
	configCmd.AddCommand(configSetBackendCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  URL: %s\n", settings.Backend.URL)
	if dashboardService != nil && dashboardService.Origin() != settings.Backend.URL {
		cmd.Printf("  In use: %s\n", dashboardService.Origin())
	}
	cmd.Printf("  Timeout: %s\n", describeDuration(settings.Backend.Timeout, "none"))
	cmd.Println()

	cmd.Println("[Serve]")
	cmd.Printf("  Address: %s\n", settings.Serve.Addr)
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Interval: %s\n", describeDuration(settings.Watch.Interval, "none"))
	cmd.Println()

	if configPath != "" {
		cmd.Printf("Config file: %s\n", configPath)
	}
	return nil
}

func runConfigWizard(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	current, err := settingsService.Get()
	if err != nil {
		current = domain.DefaultAppSettings()
	}

	cmd.Println("BidAssist Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Backend URL [%s]: ", current.Backend.URL)
	if input := readLine(reader); input != "" {
		current.Backend.URL = input
	}

	cmd.Printf("Backend timeout in seconds, 0 for none [%d]: ", int(current.Backend.Timeout/time.Second))
	current.Backend.Timeout = parseSeconds(readLine(reader), current.Backend.Timeout)

	cmd.Printf("Serve address [%s]: ", current.Serve.Addr)
	if input := readLine(reader); input != "" {
		current.Serve.Addr = input
	}

	cmd.Printf("Watch interval in seconds [%d]: ", int(current.Watch.Interval/time.Second))
	current.Watch.Interval = parseSeconds(readLine(reader), current.Watch.Interval)

	cmd.Println()
	if err := settingsService.Save(current); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")
	return nil
}

func runConfigSetBackend(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}
	if err := settingsService.SetBackendURL(args[0]); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}
	cmd.Printf("Backend set to %s\n", args[0])
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}
	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings reset to defaults.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseSeconds parses a whole number of seconds, keeping current on
// empty or invalid input.
func parseSeconds(input string, current time.Duration) time.Duration {
	if input == "" {
		return current
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return current
	}
	return time.Duration(n) * time.Second
}

func describeDuration(d time.Duration, zero string) string {
	if d <= 0 {
		return zero
	}
	return d.String()
}

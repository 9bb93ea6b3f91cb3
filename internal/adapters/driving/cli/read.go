package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

var specMatchJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the technical summary",
	Long:  `Fetches the technical summary of the last uploaded RFP and prints it as indented JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var scopeCmd = &cobra.Command{
	Use:   "scope",
	Short: "Print the scope of supply",
	Long:  `Fetches the scope of supply of the last uploaded RFP and prints it as indented JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runScope,
}

var oemCmd = &cobra.Command{
	Use:   "oem",
	Short: "Print OEM recommendations",
	Long:  `Fetches OEM recommendations for the last uploaded RFP and prints them as indented JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runOEM,
}

var specMatchCmd = &cobra.Command{
	Use:   "spec-match",
	Short: "Print the spec-match table",
	Long: `Fetches RFP items matched to OEM SKUs and prints them as a table in backend
order. Use --json for the raw rows.`,
	Args: cobra.NoArgs,
	RunE: runSpecMatch,
}

func init() {
	specMatchCmd.Flags().BoolVar(&specMatchJSON, "json", false, "output rows as JSON")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(scopeCmd)
	rootCmd.AddCommand(oemCmd)
	rootCmd.AddCommand(specMatchCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	svc, err := requireDashboard()
	if err != nil {
		return err
	}
	summary, err := svc.TechnicalSummary(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(domain.IndentJSON(summary))
	return nil
}

func runScope(cmd *cobra.Command, _ []string) error {
	svc, err := requireDashboard()
	if err != nil {
		return err
	}
	scope, err := svc.ScopeOfSupply(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(domain.IndentJSON(scope))
	return nil
}

func runOEM(cmd *cobra.Command, _ []string) error {
	svc, err := requireDashboard()
	if err != nil {
		return err
	}
	recs, err := svc.OEMRecommendations(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Println(domain.IndentJSON(recs.Data()))
	return nil
}

func runSpecMatch(cmd *cobra.Command, _ []string) error {
	svc, err := requireDashboard()
	if err != nil {
		return err
	}
	rows, err := svc.SpecMatch(cmd.Context())
	if err != nil {
		return err
	}

	if specMatchJSON {
		cmd.Println(domain.IndentJSON(rows))
		return nil
	}

	t := plainTable("RFP Item", "OEM SKU", "Spec Match %")
	for _, r := range rows {
		t.Row(r.RFPItem, r.OEMSKU, r.FormattedMatch())
	}
	cmd.Println(t.Render())
	if len(rows) == 0 {
		cmd.Println("No spec-match rows.")
	}
	return nil
}

// plainTable returns an unstyled bordered table for terminal output.
func plainTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// fprintJSON is used by commands that print a receipt.
func fprintJSON(cmd *cobra.Command, label string, v any) {
	if v == nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s\n", label, domain.IndentJSON(v))
}

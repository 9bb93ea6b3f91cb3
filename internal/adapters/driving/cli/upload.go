package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

var uploadJSON bool

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload an RFP document",
	Long: `Uploads one RFP PDF to the backend for processing. The attempt is recorded
in the upload history whether it succeeds or not.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadJSON, "json", false, "print only the backend receipt as JSON")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	svc, err := requireUpload()
	if err != nil {
		return err
	}

	receipt, err := svc.Upload(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	var body any
	if receipt != nil {
		body = receipt.Body
	}
	if uploadJSON {
		cmd.Println(domain.IndentJSON(body))
		return nil
	}

	cmd.Println("RFP uploaded & processed.")
	fprintJSON(cmd, "Receipt", body)
	return nil
}

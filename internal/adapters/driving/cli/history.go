package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past upload attempts",
	Long:  `Lists recorded RFP upload attempts, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

type historyRecord struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	UploadedAt string `json:"uploaded_at"`
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := requireUpload()
	if err != nil {
		return err
	}

	records, err := svc.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		out := make([]historyRecord, len(records))
		for i, r := range records {
			out[i] = historyRecord{
				ID:         r.ID,
				FileName:   r.FileName,
				Size:       r.Size,
				Status:     string(r.Status),
				Error:      r.Error,
				UploadedAt: r.UploadedAt.UTC().Format(time.RFC3339),
			}
		}
		cmd.Println(domain.IndentJSON(out))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No uploads recorded.")
		return nil
	}

	t := plainTable("Uploaded", "File", "Size", "Status", "Error")
	for _, r := range records {
		t.Row(
			r.UploadedAt.Local().Format("2006-01-02 15:04:05"),
			r.FileName,
			strconv.FormatInt(r.Size, 10),
			string(r.Status),
			r.Error,
		)
	}
	cmd.Println(t.Render())
	return nil
}

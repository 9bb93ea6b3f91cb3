package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bidassist/bidassist-cli/internal/adapters/driving/watch"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Upload new RFP PDFs from a directory",
	Long: `Watches a directory and uploads each new PDF once it has finished writing.
Hidden files and non-PDF files are ignored. Uploads are spaced by --interval.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "minimum gap between uploads (default from config, 2s)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, err := requireUpload()
	if err != nil {
		return err
	}

	interval := watchInterval
	if interval <= 0 && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			interval = settings.Watch.Interval
		}
	}

	out := cmd.OutOrStdout()
	w, err := watch.NewWatcher(args[0], svc,
		watch.WithInterval(interval),
		watch.WithResultHandler(func(r watch.Result) {
			if r.Err != nil {
				fmt.Fprintf(out, "FAILED   %s: %v\n", filepath.Base(r.Path), r.Err)
				return
			}
			fmt.Fprintf(out, "UPLOADED %s\n", filepath.Base(r.Path))
		}),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Watching %s for new PDFs (ctrl+c to stop)\n", args[0])
	return w.Run(cmd.Context())
}

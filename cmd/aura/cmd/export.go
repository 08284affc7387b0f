package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/app"
)

func ExportCmd() *cobra.Command {
	var (
		upload bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export goals and analytics as JSON",
		Long: `Write a JSON snapshot of active goals, mood analytics, and goal progress.

By default the snapshot goes to stdout, or to --output. With --upload it is
stored in the configured S3 bucket (S3_BUCKET) and a download link is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				if upload {
					key, err := a.ExportService.Upload(ctx)
					if err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintf(out, "✓ Uploaded %s\n", key)

					url, err := a.ExportService.DownloadURL(ctx, key)
					if err == nil {
						fmt.Fprintln(out, url)
					}
					return nil
				}

				data, err := json.MarshalIndent(a.ExportService.Snapshot(ctx), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode snapshot: %w", err)
				}

				if output == "" {
					_, err = fmt.Fprintln(out, string(data))
					return err
				}
				err = os.WriteFile(output, append(data, '\n'), 0o644)
				if err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				color.New(color.FgGreen).Fprintf(out, "✓ Exported to %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&upload, "upload", false, "upload the snapshot to S3")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the snapshot to a file")
	return cmd
}

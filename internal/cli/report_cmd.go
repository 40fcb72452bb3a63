package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	var metrics metricsFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the advice as a PDF report",
		Example: `  healthadvice report --weight 70 --height 175 --out my-report.pdf
  healthadvice report -w 95 -H 180 -a 40 -l light --out reports/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.GenerateReport(cmd.Context(), metrics.raw())
			if err != nil {
				return err
			}

			path := outPath
			switch {
			case path == "":
				path = report.Filename
			case isDir(path):
				path = filepath.Join(path, report.Filename)
			}

			if err := os.WriteFile(path, report.Content, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s %s\n",
				formatter.Bold(path), formatter.Dim("("+report.ID+")"))
			return nil
		},
	}

	metrics.bind(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file or directory (default: generated name in the current directory)")

	return cmd
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

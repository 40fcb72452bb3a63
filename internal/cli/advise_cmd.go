package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/cli/formatter"
)

func newAdviseCmd(app *App) *cobra.Command {
	var metrics metricsFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Compute BMI, calorie needs and plans",
		Example: `  healthadvice advise --weight 70 --height 175 --age 30 --gender male --activity moderate
  healthadvice advise -w 60 -H 160 -g female -l sedentary --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advice, err := app.Advice.Advise(cmd.Context(), metrics.raw())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(advice.Result)
			}

			fmt.Fprint(out, formatter.FormatAdvice(advice.Metrics, advice.Result, app.plain))
			return nil
		},
	}

	metrics.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func newOptionsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List accepted genders, activity levels, ranges and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := app.Advice.Options()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalogue)
			}

			fmt.Fprint(out, formatter.FormatOptions(catalogue))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the options as JSON")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/audit"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/config"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/pdf"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/service"
	"go.uber.org/zap"
)

// App holds the services used by CLI commands. They are wired in the root
// command's pre-run hook once --verbose is known.
type App struct {
	Config  *config.Config
	Advice  *service.AdviceService
	Reports *service.ReportService
	Logger  *zap.Logger

	verbose bool
	plain   bool
}

// NewRootCmd creates the top-level "healthadvice" command. interactive
// controls whether output is boxed by default.
func NewRootCmd(cfg *config.Config, interactive bool) *cobra.Command {
	app := &App{Config: cfg}

	root := &cobra.Command{
		Use:           "healthadvice",
		Short:         "BMI, calorie needs and fitness and diet plans from your metrics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.wire()
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log service activity to stderr")
	root.PersistentFlags().BoolVar(&app.plain, "plain", !interactive, "Render without boxes")

	root.AddCommand(
		newAdviseCmd(app),
		newOptionsCmd(app),
		newReportCmd(app),
	)

	return root
}

func (a *App) wire() error {
	logger := zap.NewNop()
	if a.verbose {
		var err error
		if logger, err = a.Config.NewLogger(); err != nil {
			return err
		}
	}
	a.Logger = logger

	auditLogger := audit.NewLogger(logger)
	a.Advice = service.NewAdviceService(auditLogger, logger)
	a.Reports = service.NewReportService(
		a.Advice,
		pdf.NewPDFGenerator(logger),
		auditLogger,
		service.ReportOptions{
			Title:  a.Config.Report.Title,
			Author: a.Config.Report.Author,
		},
		logger,
	)
	return nil
}

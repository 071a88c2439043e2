package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wam/internal/cli/formatter"
	"github.com/alexanderramin/wam/internal/config"
	"github.com/alexanderramin/wam/internal/service"
	"github.com/spf13/cobra"
)

// App holds the collaborators used by the root command.
type App struct {
	Config   config.Config
	Observer service.UseCaseObserver
	// LogWriter receives use-case records when the effective config
	// enables them. Nil disables logging.
	LogWriter io.Writer

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// PickFile chooses a report file when none is given on the command line.
	PickFile func(ctx context.Context, initialDir string) (string, error)
}

// NewRootCmd creates the "wam" command.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string
	var rescale bool

	root := &cobra.Command{
		Use:   "wam [report.html]",
		Short: "Weighted average mark from a grade report page",
		Long: `Reads the grade report table from a saved HTML page, checks that the
component weights add up to 100%, and prints the weighted average mark.

When the weights fall short you can add missing grades by hand or let the
weights be rescaled proportionally. Weights above 100% are always rescaled.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if configPath != "" {
				var err error
				cfg, err = config.LoadFile(configPath, cfg)
				if err != nil {
					return err
				}
			}

			observer := app.Observer
			if cfg.LogUseCases && app.LogWriter != nil {
				observer = service.NewLogUseCaseObserver(app.LogWriter)
			}

			path, err := resolveReportPath(cmd.Context(), app, cfg, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, formatter.NoFileSelected)
				return nil
			}

			prompter := &consolePrompter{in: cmd.InOrStdin(), out: out, autoRescale: rescale}
			report, err := runReport(cmd.Context(), service.NewGradeService(cfg.Selectors(), observer), path, prompter)
			if err != nil {
				return err
			}
			fmt.Fprint(out, report)
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "TOML file overriding the report markup markers")
	root.Flags().BoolVar(&rescale, "rescale", false, "Rescale missing weight without asking to add grades")

	return root
}

func resolveReportPath(ctx context.Context, app *App, cfg config.Config, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if app.IsInteractive == nil || !app.IsInteractive() || app.PickFile == nil {
		return "", fmt.Errorf("no report file given; pass the path of a saved grade report page")
	}
	return app.PickFile(ctx, cfg.InitialDir)
}

// runReport builds, reconciles and renders the report at path. Nothing is
// rendered unless reconciliation completes.
func runReport(ctx context.Context, grades service.GradeService, path string, prompter service.Prompter) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	built, err := grades.BuildTable(ctx, f)
	if err != nil {
		return "", err
	}
	if _, err := grades.Reconcile(ctx, built.Table, prompter); err != nil {
		return "", err
	}
	return formatter.FormatReport(built.Table), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/wam/internal/cli"
	"github.com/alexanderramin/wam/internal/config"
	"github.com/alexanderramin/wam/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	app := &cli.App{
		Config:    cfg,
		Observer:  service.NoopUseCaseObserver{},
		LogWriter: os.Stderr,
		PickFile:  cli.PickReportFile,
	}

	// The file picker needs an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}

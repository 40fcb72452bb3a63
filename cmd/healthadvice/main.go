package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/cli"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Boxes only when a person is watching
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	return cli.NewRootCmd(cfg, interactive).Execute()
}

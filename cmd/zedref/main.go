package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muka-hq/zedref/internal/cli"
	"github.com/muka-hq/zedref/internal/config"
	"github.com/muka-hq/zedref/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	rootCmd := cli.NewRootCmd(version, commit, buildDate)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

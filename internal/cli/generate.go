package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/muka-hq/zedref/internal/config"
	"github.com/muka-hq/zedref/internal/fetch"
	"github.com/muka-hq/zedref/internal/jsonc"
	"github.com/muka-hq/zedref/internal/logging"
	"github.com/muka-hq/zedref/internal/reference"
)

// generateOptions carries the resolved inputs of one generation run.
type generateOptions struct {
	URL        string
	Output     string
	AppName    string
	ConfigPath string
	ConfigType string
	Timeout    time.Duration
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var urlFlag, outputFlag string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the default settings and write the YAML reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()
			opts := generateOptions{
				URL:        cfg.Source.URL,
				Output:     cfg.Output.Path,
				AppName:    cfg.App.Name,
				ConfigPath: cfg.App.ConfigPath,
				ConfigType: cfg.App.ConfigType,
				Timeout:    time.Duration(cfg.Source.TimeoutSec) * time.Second,
			}
			if urlFlag != "" {
				opts.URL = urlFlag
			}
			if outputFlag != "" {
				opts.Output = outputFlag
			}
			return runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&urlFlag, "url", "", "Override the settings source URL")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Override the output file path")

	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	ctx = logging.WithComponent(ctx, "generate")
	log := logging.FromContext(ctx)

	fmt.Printf("Fetching %s default settings...\n", opts.AppName)
	client := fetch.New(opts.Timeout, "zedref")
	raw, err := client.Text(ctx, opts.URL)
	if err != nil {
		return err
	}

	root, err := jsonc.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to parse settings document: %w", err)
	}

	fmt.Println("Flattening settings...")
	settings, err := reference.Flatten(root)
	if err != nil {
		return err
	}
	log.Debug().Int("settings", settings.Len()).Msg("flattened settings tree")

	doc := &reference.Document{
		AppName:    opts.AppName,
		ConfigPath: opts.ConfigPath,
		ConfigType: opts.ConfigType,
		Settings:   settings,
	}
	if err := doc.WriteFile(opts.Output); err != nil {
		return err
	}

	fmt.Printf("Generated %d settings in %s\n", settings.Len(), opts.Output)
	printCategorySummary(doc)
	return nil
}

// printCategorySummary prints per-category counts, sorted by category name.
func printCategorySummary(doc *reference.Document) {
	counts := doc.CountByCategory()
	names := make([]string, 0, len(counts))
	for cat := range counts {
		names = append(names, string(cat))
	}
	sort.Strings(names)

	fmt.Println("\nSettings by category:")
	for _, name := range names {
		fmt.Printf("  %s: %d\n", name, counts[reference.Category(name)])
	}
}

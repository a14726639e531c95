package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muka-hq/zedref/internal/config"
	"github.com/muka-hq/zedref/internal/reference"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check the structural health of a generated reference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.Get().Output.Path
			if len(args) > 0 {
				path = args[0]
			}

			doc, err := reference.Load(path)
			if err != nil {
				return err
			}

			errs := doc.Validate()
			if len(errs) == 0 {
				fmt.Printf("%s: %d settings, reference is valid\n", path, doc.Settings.Len())
				return nil
			}

			for _, e := range errs {
				fmt.Fprintf(os.Stderr, "  %v\n", e)
			}
			return fmt.Errorf("%s: %d problems found", path, len(errs))
		},
	}
}

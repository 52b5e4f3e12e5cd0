package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// optionalTargetDir validates that at most one target directory is provided.
// Returns a helpful error message with usage and examples when called with more.
func optionalTargetDir(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Examples:
  %s            # Current directory
  %s ./service  # Specific directory`, len(args), cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	return nil
}

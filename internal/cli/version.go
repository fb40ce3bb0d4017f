package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the Laze version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Laze %s\n", version)
			return nil
		},
	}
}

// Package cli implements the laze command line tool: replaying YAML
// trace programs against a construction context and inspecting the
// operator registry.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the laze CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "laze",
		Short: "Laze - deferred tensor computation IR",
		Long:  "Build, replay, and inspect deferred tensor computation graphs.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewKindsCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

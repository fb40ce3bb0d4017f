package cli

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/laze-ml/laze/internal/ir"
	"github.com/laze-ml/laze/internal/trace"
)

// ValidFormats lists supported dump formats for the trace command.
var ValidFormats = []string{"text", "dot"}

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	File      string
	Format    string
	Steps     int
	NoReuse   bool
	ShowStats bool
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Replay a YAML program and dump the resulting graph",
		Long: `Replay a YAML program against a construction context and dump the
resulting graph. With --steps above one the program is replayed across
scope boundaries, the way a training loop retraces the same graph, so
the stats show how much of the graph was reused.

Examples:
  laze trace --file program.yaml
  laze trace --file program.yaml --format dot
  laze trace --file program.yaml --steps 10 --stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "path to the YAML program (required)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "dump format (text, dot)")
	cmd.Flags().IntVar(&opts.Steps, "steps", 1, "number of times to replay the program")
	cmd.Flags().BoolVar(&opts.NoReuse, "no-reuse", false, "disable the node reuse cache")
	cmd.Flags().BoolVar(&opts.ShowStats, "stats", false, "print construction stats after the dump")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, errors.Errorf("invalid format %q (valid: %v)", opts.Format, ValidFormats))
	}
	if opts.Steps < 1 {
		return NewExitError(ExitCommandError, errors.Errorf("steps must be at least 1, got %d", opts.Steps))
	}

	prog, err := LoadProgram(opts.File)
	if err != nil {
		return NewExitError(ExitCommandError, err)
	}
	slog.Debug("program loaded", "file", opts.File, "steps", len(prog.Steps))

	tc := trace.New(trace.WithReuse(!opts.NoReuse))
	var roots []ir.Node
	for step := 0; step < opts.Steps; step++ {
		if step > 0 {
			tc.BeginScope()
		}
		roots, err = prog.Build(tc)
		if err != nil {
			return NewExitError(ExitCommandError, err)
		}
		slog.Debug("program replayed", "step", step+1, "cache_entries", tc.CacheLen())
	}

	w := cmd.OutOrStdout()
	switch opts.Format {
	case "dot":
		fmt.Fprint(w, ir.DumpDot(roots...))
	default:
		fmt.Fprint(w, ir.DumpText(roots...))
	}

	if opts.ShowStats {
		stats := tc.Stats()
		fmt.Fprintf(w, "\nconstructed:   %d\n", stats.NodesConstructed)
		fmt.Fprintf(w, "reused:        %d\n", stats.NodesReused)
		fmt.Fprintf(w, "inserts:       %d\n", stats.CacheInserts)
		fmt.Fprintf(w, "collisions:    %d\n", stats.HashCollisions)
		fmt.Fprintf(w, "scopes:        %d\n", stats.ScopesBegun)
		fmt.Fprintf(w, "cache entries: %d\n", tc.CacheLen())
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if format == f {
			return true
		}
	}
	return false
}

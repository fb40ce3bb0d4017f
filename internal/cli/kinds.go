package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/laze-ml/laze/internal/ir"
)

// KindsOptions holds flags for the kinds command.
type KindsOptions struct {
	*RootOptions
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &KindsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "kinds",
		Short:         "List the registered operator kinds",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(opts, cmd)
		},
	}

	return cmd
}

func runKinds(opts *KindsOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	reg := ir.NewRegistry()
	for _, kind := range reg.Kinds() {
		info, _ := reg.Info(kind)
		fmt.Fprintf(w, "%-24s seed=%-10d arity=%-8s outputs=%s\n",
			kind.String(), info.Seed, formatArity(info.Arity), formatOutputs(info.NumOutputs))
	}
	return nil
}

func formatArity(arity int) string {
	if arity < 0 {
		return "variadic"
	}
	return fmt.Sprintf("%d", arity)
}

func formatOutputs(numOutputs int) string {
	if numOutputs == 0 {
		return "caller"
	}
	return fmt.Sprintf("%d", numOutputs)
}

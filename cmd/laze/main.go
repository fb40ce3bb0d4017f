// Package main provides the Laze deferred tensor IR CLI.
package main

import (
	"fmt"
	"os"

	"github.com/laze-ml/laze/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

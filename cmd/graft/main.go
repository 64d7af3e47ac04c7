package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graft",
		Short: "Reactive tree binding for Go",
		Long: `Graft binds a reactive cell graph to a live node tree.

Cells and derivations recompute when their inputs change; bindings keep
a container's children converged to the list a reactive value produces,
tearing down subscriptions of children that are truly gone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

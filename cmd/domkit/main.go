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
		Use:   "domkit",
		Short: "Headless DOM utilities for HTML files",
		Long: `domkit parses HTML files into an in-memory DOM and runs
selector queries and transforms against them:

  • query: print elements matching a CSS selector
  • classes: add, remove, or toggle classes on matched elements
  • apply: run a YAML pipeline of transforms`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		queryCmd(),
		classesCmd(),
		applyCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

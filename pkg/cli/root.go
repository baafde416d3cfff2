// Package cli implements the imitatus command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imitatus",
	Short: "imitatus is a mock REST API server for testing HTTP clients",
	Long: `imitatus runs a self-contained mock REST API in a single process.

It exposes bearer-token login, an in-memory item CRUD API, and a public
introspection endpoint, with every HTTP method handled explicitly. All
state lives in memory and is discarded on exit, which makes it suitable
as a disposable backend for client test suites.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

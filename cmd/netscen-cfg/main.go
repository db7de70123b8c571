// Netscen-cfg builds network-simulation test cases.
//
// It walks the user through the six sections of a scenario (cell,
// subscriber, user plane, traffic, mobility and settings) in an interactive
// wizard and keeps the result in a local key-value store, where the other
// commands can show, validate, export or reset it.
//
// Usage:
//
//	netscen-cfg [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'netscen-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/netscen/internal/logging"
	"github.com/muurk/netscen/internal/version"
)

const appName = "netscen-cfg"

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Network Scenario Configuration Wizard",
	Long: `A terminal wizard for defining network-simulation test cases.

A scenario is built in six steps: cell, subscriber, user plane, traffic,
mobility and settings. Each step is saved to the configured store as you
move through the wizard, so an interrupted session resumes where it stopped.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// The version command needs no config or store.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String(appName))
	},
}

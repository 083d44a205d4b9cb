/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads configuration lazily. Standalone commands
// (config, guide, serve, version) skip it so a malformed config file can
// still be inspected and repaired.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/isodur/internal/format"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/spf13/cobra"
)

// ErrReported is returned by commands that have already written their
// failure (check reports, fmt --check listings). The process exits 1
// without cobra printing anything further.
var ErrReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "isodur",
	Short: "Parse and normalise ISO 8601 durations",
	Long: `Parses ISO 8601 duration strings (PnYnMnDTnHnMnS and PnW) into their
components, rewrites them in canonical order and checks files of durations.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(format.Formats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, format.Formats)
		}

		if standaloneCommands[topLevelCmdName(cmd)] {
			return nil
		}

		if err := initExtensions(); err != nil {
			if Machine() {
				_ = Print(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "isodur config parse.strict_numerals", returns "config".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Audit logging is best-effort
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	registerExtensions()
	err := rootCmd.Execute()

	log.Close()
	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}

// Reported marks c's failure as already written and returns ErrReported.
func Reported(c *cobra.Command) error {
	c.SilenceErrors = true
	return ErrReported
}

/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions read flag values through the exported accessors rather than
// touching the variables or cobra directly.

package cmd

import (
	"io"
	"os"

	"github.com/jpl-au/isodur/internal/format"
	"github.com/spf13/cobra"
)

// strictEnv enables --strict when set to "1" or "true".
const strictEnv = "ISODUR_STRICT"

var (
	output string
	strict bool
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// Machine returns true if json or yaml output is requested.
func Machine() bool { return output != "" }

// Strict returns whether every parser check is forced on.
// Priority: --strict flag > ISODUR_STRICT env var > false.
func Strict() bool {
	if strict {
		return true
	}
	switch os.Getenv(strictEnv) {
	case "1", "true":
		return true
	}
	return false
}

// Print encodes v in the requested output format.
// Returns nil without writing if no machine format was requested.
func Print(v any) error {
	if !Machine() {
		return nil
	}
	return format.Encode(out, output, v)
}

// PrintError prints err as {"error": ...} when a machine format is requested
// and returns nil to suppress cobra's duplicate printing. Otherwise err is
// returned unchanged.
func PrintError(err error) error {
	if !Machine() || err == nil {
		return err
	}
	// If the error itself cannot be encoded there is nothing better to report
	_ = Print(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json, yaml")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Require canonical order and plain digit numerals (env "+strictEnv+")")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return format.Formats, cobra.ShellCompDirectiveNoFileComp
	})
}

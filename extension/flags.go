// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos between
// Flags().Type() definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag.

package extension

// Flag name constants for CLI commands.
const (
	FlagCheck   = "check"   // Report non-canonical input, exit 1 if any
	FlagDiff    = "diff"    // Show diff output
	FlagLocal   = "local"   // Use local scope
	FlagRaw     = "raw"     // Raw output without rendering
	FlagVerbose = "verbose" // Also list valid lines
)

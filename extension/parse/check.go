// check.go implements the "isodur check" command.

package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/isodur/cmd"
	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/internal/check"
	"github.com/jpl-au/isodur/internal/format"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a file of durations, one per line",
		Long: `Validate a file of durations, one per line.

Reads stdin when file is omitted or "-". Blank lines and lines starting
with '#' are skipped.

  isodur check durations.txt
  cat durations.txt | isodur check
  isodur check --strict --verbose durations.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runCheck,
	}
	c.Flags().BoolP(extension.FlagVerbose, "v", false, "Also list valid lines")
	return c
}

func (e *Extension) runCheck(c *cobra.Command, args []string) error {
	verbose, _ := c.Flags().GetBool(extension.FlagVerbose)

	name := "-"
	var r io.Reader = c.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return cmd.PrintError(fmt.Errorf("opening %s: %w", name, err))
		}
		defer f.Close()
		r = f
	}

	opts := check.Options{Parse: e.options(), MaxLineLength: e.maxLineLength()}
	result, err := check.Run(c.Context(), r, opts)

	log.Event("parse:check", "check").Detail("file", name).
		Detail("checked", result.Checked).Detail("invalid", result.Invalid).Write(err)

	if err != nil {
		return cmd.PrintError(fmt.Errorf("check %s: %w", name, err))
	}

	if cmd.Machine() {
		if err := cmd.Print(result); err != nil {
			return err
		}
	} else if err := format.Report(cmd.Out(), name, result, verbose); err != nil {
		return err
	}

	if result.Err() != nil {
		return cmd.Reported(c)
	}
	return nil
}

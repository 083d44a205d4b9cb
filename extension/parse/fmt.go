// fmt.go implements the "isodur fmt" command.
//
// fmt is to durations what gofmt is to source: it prints the canonical
// rendering, optionally as a diff or as a pass/fail check.

package parse

import (
	"fmt"
	"os"

	"github.com/jpl-au/isodur/cmd"
	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/internal/diff"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// formatted is the machine-readable fmt result for one input.
type formatted struct {
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Changed   bool   `json:"changed" yaml:"changed"`
	Diff      string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

func (e *Extension) newFmtCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fmt <duration>...",
		Short: "Rewrite durations in canonical form",
		Long: `Rewrite durations in canonical order with redundant zeros removed.

  isodur fmt P3D6M             # P6M3D
  isodur fmt --diff P007D      # P007D -> P7D
  isodur fmt --check P1D P3D6M # lists P3D6M, exit 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runFmt,
	}
	c.Flags().Bool(extension.FlagDiff, false, "Show an inline diff against the canonical form")
	c.Flags().Bool(extension.FlagCheck, false, "List non-canonical durations and exit 1 if any")
	return c
}

func (e *Extension) runFmt(c *cobra.Command, args []string) error {
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)
	checkOnly, _ := c.Flags().GetBool(extension.FlagCheck)
	colour := !cmd.Machine() && term.IsTerminal(int(os.Stdout.Fd()))
	opts := e.options()

	var results []formatted
	var invalid, changed int
	for _, s := range args {
		d, err := duration.ParseWith(s, opts)
		if err != nil {
			log.Event("parse:fmt", "fmt").Input(s).Write(err)
			invalid++
			fmt.Fprintln(c.ErrOrStderr(), err)
			continue
		}

		canonical := d.String()
		r := diff.Compute(s, canonical)
		log.Event("parse:fmt", "fmt").Input(s).Canonical(canonical).Detail("changed", r.Changed).Write(nil)

		if r.Changed {
			changed++
		}
		f := formatted{Input: s, Canonical: canonical, Changed: r.Changed}
		if showDiff && r.Changed {
			f.Diff = r.Diff
		}
		if checkOnly && !r.Changed {
			continue
		}
		results = append(results, f)

		if cmd.Machine() {
			continue
		}
		switch {
		case checkOnly:
			fmt.Fprintln(cmd.Out(), s)
		case showDiff:
			fmt.Fprint(cmd.Out(), r.Format(colour))
		default:
			fmt.Fprintln(cmd.Out(), canonical)
		}
	}

	if cmd.Machine() {
		if results == nil {
			results = []formatted{}
		}
		if err := cmd.Print(results); err != nil {
			return err
		}
	}

	if invalid > 0 || (checkOnly && changed > 0) {
		return cmd.Reported(c)
	}
	return nil
}

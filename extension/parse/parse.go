// parse.go implements the "isodur parse" command.

package parse

import (
	"fmt"

	"github.com/jpl-au/isodur/cmd"
	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/internal/format"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <duration>...",
		Short: "Parse durations into their components",
		Long: `Parse ISO 8601 durations and print each component present.

  isodur parse P3Y6M4DT12H30M5S
  isodur parse P10W             # weeks are stored as days
  isodur parse -o json PT36H    # {"hours":36}

Exit status is 1 if any duration fails to parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runParse,
	}
}

func (e *Extension) runParse(c *cobra.Command, args []string) error {
	opts := e.options()

	parsed := make([]duration.Components, 0, len(args))
	var failed error
	for _, s := range args {
		d, err := duration.ParseWith(s, opts)

		b := log.Event("parse:parse", "parse").Input(s)
		if err == nil {
			b.Canonical(d.String())
		}
		b.Write(err)

		if err != nil {
			if cmd.Machine() {
				_ = cmd.Print(map[string]string{"error": err.Error()})
				return cmd.Reported(c)
			}
			fmt.Fprintln(c.ErrOrStderr(), err)
			failed = err
			continue
		}
		parsed = append(parsed, d)

		if !cmd.Machine() {
			if err := format.Components(cmd.Out(), s, d); err != nil {
				return err
			}
		}
	}

	if failed != nil {
		return cmd.Reported(c)
	}
	if !cmd.Machine() {
		return nil
	}
	if len(parsed) == 1 {
		return cmd.Print(parsed[0])
	}
	return cmd.Print(parsed)
}

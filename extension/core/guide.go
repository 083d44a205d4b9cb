// guide.go implements the "isodur guide" command for documentation access.
//
// Design: Guides are embedded in the binary via the guide package. Terminal
// output gets glamour rendering for readability; pipe/redirect gets raw
// markdown for machine consumption and LLM context loading.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/isodur/cmd"
	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the isodur usage guide",
		Long: `Outputs the isodur guide for LLMs and humans.

  isodur guide           # main guide
  isodur guide grammar   # the accepted duration grammar
  isodur guide check     # detailed check guide`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			raw, _ := c.Flags().GetBool(extension.FlagRaw)
			if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
				if rendered, err := glamour.Render(content, "dark"); err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal rendering")
	return c
}

// serve.go implements the "isodur serve" command for MCP server operation.
//
// Serve blocks handling MCP requests over stdio until the client
// disconnects. It is standalone: the server loads its own configuration so
// a broken config file degrades to defaults instead of refusing to start.

package core

import (
	"github.com/jpl-au/isodur/cmd"
	"github.com/jpl-au/isodur/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: isodur_parse, isodur_format, isodur_check, isodur_guide.
Use --strict to make every tool call strict:
  isodur serve --strict`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.Strict())
		},
	}
}

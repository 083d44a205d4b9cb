// Package parse provides the parsing extension for isodur.
// It registers commands: parse, fmt, check, and the isodur_check MCP tool.
package parse

import (
	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the parse extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "parse".
func (e *Extension) Name() string { return "parse" }

// Init stores the context for parser options and limits.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the parsing commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newParseCmd(),
		e.newFmtCmd(),
		e.newCheckCmd(),
	}
}

// MCPTools returns the batch check tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{checkTool()}
}

// options returns the parser options in effect, lenient before Init.
func (e *Extension) options() duration.Options {
	if e.ctx == nil {
		return duration.Options{}
	}
	return e.ctx.ParseOptions()
}

// maxLineLength returns the configured line limit for check.
func (e *Extension) maxLineLength() int {
	if e.ctx == nil {
		return 0
	}
	return e.ctx.Config().MaxLineLength()
}

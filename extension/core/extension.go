// Package core provides the core extension for isodur.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/isodur/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the housekeeping commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the guide tool is built into the MCP server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// StandaloneCommands returns every core command. None of them parse
// durations, and config must work when the config file is broken.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "guide", "serve", "version"}
}

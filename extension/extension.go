// Package extension provides the plugin architecture for isodur. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, so a new surface over the parser doesn't touch core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for isodur extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// must run without loading configuration. Commands returned by
// StandaloneCommands() skip Init in PersistentPreRunE.
//
// Use cases:
// 1. Commands that repair configuration (config itself)
// 2. Commands that manage their own lifecycle (serve)
// 3. Informational commands (guide, version)
type Standalone interface {
	StandaloneCommands() []string
}

// Package mcp implements the Model Context Protocol server, exposing the
// isodur parser to LLMs. Assistants can parse, normalise and batch-check
// durations through a standardised protocol instead of shelling out.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
//
// A malformed config file does not stop the server: it logs a warning and
// falls back to lenient defaults, since the client cannot repair the file.
func Serve(strict bool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config unavailable, using defaults", "error", err)
	}

	s := newServer(extension.NewContext(cfg, strict))

	slog.Info("isodur MCP server ready", "version", Version, "transport", "stdio", "strict", strict)

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// newServer builds the server with every tool registered. Split from Serve
// so tests can drive the tools without a stdio transport.
func newServer(extCtx extension.Context) *server.MCPServer {
	s := server.NewMCPServer(
		"isodur",
		Version,
		server.WithToolCapabilities(true),
	)

	h := &handlers{ext: extCtx}
	registerTools(s, h)
	registerExtensionTools(s, extCtx)
	return s
}

// handlers provides MCP request handlers with access to parser settings.
type handlers struct {
	ext extension.Context
}

// registerTools exposes the built-in isodur operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("isodur_parse",
			mcp.WithDescription("Parse an ISO 8601 duration (PnYnMnDTnHnMnS or PnW) into its components"),
			mcp.WithString("input", mcp.Required(), mcp.Description("Duration string, e.g. P3Y6M4DT12H30M5S")),
			mcp.WithBoolean("strict", mcp.Description("Require canonical order and plain digit numerals")),
		),
		h.parseDuration,
	)

	s.AddTool(
		mcp.NewTool("isodur_format",
			mcp.WithDescription("Rewrite a duration in canonical form (P3D6M becomes P6M3D)"),
			mcp.WithString("input", mcp.Required(), mcp.Description("Duration string")),
			mcp.WithBoolean("strict", mcp.Description("Require canonical order and plain digit numerals")),
			mcp.WithBoolean("diff", mcp.Description("Include an inline diff of input against canonical form")),
		),
		h.formatDuration,
	)

	s.AddTool(
		mcp.NewTool("isodur_guide",
			mcp.WithDescription("Get help/guide content for isodur commands and the duration grammar"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'grammar', 'parse', 'check') or empty for index")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds tools declared by registered extensions,
// binding each handler to the shared extension context.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, extCtx, req)
			})
		}
	}
}

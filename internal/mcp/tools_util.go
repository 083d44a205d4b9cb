// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: an optional parameter that is missing or of the
// wrong type yields the caller's default rather than a tool failure. LLMs
// frequently omit optional parameters or send "true" as a string.

package mcp

import (
	"encoding/json"

	"github.com/jpl-au/isodur/duration"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if it is missing or
// not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map. JSON
// booleans decode as Go bool values, so a type assertion suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// parseOptions returns the parser options for a request: the server's
// configured options, or every check when the request sets strict.
func (h *handlers) parseOptions(req mcp.CallToolRequest) duration.Options {
	if getBool(req, "strict", false) {
		return duration.Strict
	}
	return h.ext.ParseOptions()
}

// jsonResult serialises v as indented JSON and wraps it in an MCP text
// result. Marshalling failures become MCP error results so the client always
// sees a tool response.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// tools_parse.go implements the MCP tools that parse and normalise a single
// duration.

package mcp

import (
	"context"

	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/internal/diff"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseResult is the isodur_parse payload.
type parseResult struct {
	Input      string              `json:"input"`
	Canonical  string              `json:"canonical"`
	Components duration.Components `json:"components"`
}

// parseFailure describes a rejected input. Kind is the stable error name so
// clients can branch on it without matching message text.
type parseFailure struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// parseDuration handles isodur_parse tool calls.
func (h *handlers) parseDuration(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input is required"), nil //nolint:nilerr
	}

	c, err := duration.ParseWith(input, h.parseOptions(req))

	b := log.Event("mcp:parse", "parse").Input(input)
	if err == nil {
		b.Canonical(c.String())
	}
	b.Write(err)

	if err != nil {
		return failureResult(input, err)
	}
	return jsonResult(parseResult{Input: input, Canonical: c.String(), Components: c})
}

// formatDuration handles isodur_format tool calls.
func (h *handlers) formatDuration(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input is required"), nil //nolint:nilerr
	}

	c, err := duration.ParseWith(input, h.parseOptions(req))

	b := log.Event("mcp:format", "format").Input(input)
	if err == nil {
		b.Canonical(c.String())
	}
	b.Write(err)

	if err != nil {
		return failureResult(input, err)
	}

	canonical := c.String()
	result := map[string]any{
		"input":     input,
		"canonical": canonical,
		"changed":   canonical != input,
	}
	if getBool(req, "diff", false) {
		result["diff"] = diff.Compute(input, canonical).Diff
	}
	return jsonResult(result)
}

// failureResult reports a parse error as an MCP error result with a JSON
// body.
func failureResult(input string, err error) (*mcp.CallToolResult, error) {
	f := parseFailure{Input: input, Error: err.Error()}
	if pe, ok := duration.AsParseError(err); ok {
		f.Kind = pe.Kind.String()
	}
	res, _ := jsonResult(f)
	res.IsError = true
	return res, nil
}

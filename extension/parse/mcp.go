// mcp.go provides the isodur_check MCP tool, the batch counterpart of
// "isodur check" for clients holding durations in memory.

package parse

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/extension"
	"github.com/jpl-au/isodur/internal/check"
	"github.com/jpl-au/isodur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func checkTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("isodur_check",
			mcp.WithDescription("Validate a batch of ISO 8601 durations; returns per-input canonical form or error"),
			mcp.WithArray("inputs", mcp.Required(), mcp.Description("Duration strings"), mcp.Items(map[string]any{"type": "string"})),
			mcp.WithBoolean("strict", mcp.Description("Require canonical order and plain digit numerals")),
		),
		Handler: handleCheck,
	}
}

func handleCheck(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := req.Params.Arguments.(map[string]any)

	raw, ok := args["inputs"].([]any)
	if !ok {
		return mcp.NewToolResultError("inputs is required"), nil
	}
	inputs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			inputs = append(inputs, s)
		}
	}

	opts := extCtx.ParseOptions()
	if strict, _ := args["strict"].(bool); strict {
		opts = duration.Strict
	}

	result, err := check.Strings(ctx, inputs, opts)

	log.Event("mcp:check", "check").Detail("checked", result.Checked).Detail("invalid", result.Invalid).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

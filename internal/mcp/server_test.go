package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/isodur/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers() *handlers {
	return &handlers{ext: extension.NewContext(nil, false)}
}

func request(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestParseDuration(t *testing.T) {
	h := newHandlers()
	res, err := h.parseDuration(context.Background(), request("isodur_parse", map[string]any{"input": "P3DT12H"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var got struct {
		Canonical  string         `json:"canonical"`
		Components map[string]int `json:"components"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, "P3DT12H", got.Canonical)
	assert.Equal(t, map[string]int{"days": 3, "hours": 12}, got.Components)
}

func TestParseDuration_Error(t *testing.T) {
	h := newHandlers()
	res, err := h.parseDuration(context.Background(), request("isodur_parse", map[string]any{"input": "P3YM"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var got parseFailure
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, "mismatched designator count", got.Kind)
	assert.Equal(t, "P3YM", got.Input)
}

func TestParseDuration_MissingInput(t *testing.T) {
	h := newHandlers()
	res, err := h.parseDuration(context.Background(), request("isodur_parse", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestParseDuration_Strict(t *testing.T) {
	h := newHandlers()
	args := map[string]any{"input": "P3D6M"}

	res, err := h.parseDuration(context.Background(), request("isodur_parse", args))
	require.NoError(t, err)
	assert.False(t, res.IsError, "lenient by default")

	args["strict"] = true
	res, err = h.parseDuration(context.Background(), request("isodur_parse", args))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "unexpected designator")
}

func TestFormatDuration(t *testing.T) {
	h := newHandlers()
	res, err := h.formatDuration(context.Background(), request("isodur_format", map[string]any{
		"input": "P3D6M",
		"diff":  true,
	}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, "P6M3D", got["canonical"])
	assert.Equal(t, true, got["changed"])
	assert.NotEmpty(t, got["diff"])
}

func TestGetGuide(t *testing.T) {
	h := newHandlers()
	res, err := h.getGuide(context.Background(), request("isodur_guide", map[string]any{"topic": "grammar"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "P")

	res, err = h.getGuide(context.Background(), request("isodur_guide", map[string]any{"topic": "nope"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "available_topics")
}

func TestGetBool_WrongType(t *testing.T) {
	req := request("x", map[string]any{"strict": "true"})
	assert.False(t, getBool(req, "strict", false))
	assert.True(t, getBool(req, "missing", true))
}

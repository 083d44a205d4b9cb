package format

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/internal/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	c, err := duration.Parse("P3DT12H")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Components(&buf, "P3DT12H", c))
	assert.Equal(t, "P3DT12H = P3DT12H\n  days     3\n  hours    12\n", buf.String())
}

func TestComponents_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Components(&buf, "P", duration.Components{}))
	assert.Equal(t, "P = P0D\n  (empty)\n", buf.String())
}

func TestEncode(t *testing.T) {
	c, err := duration.Parse("P1MT1M")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, c))
	assert.JSONEq(t, `{"months":1,"minutes":1}`, buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, YAML, c))
	assert.Equal(t, "months: 1\nminutes: 1\n", buf.String())

	assert.Error(t, Encode(&buf, "xml", c))
}

func TestReport(t *testing.T) {
	r, err := check.Run(context.Background(), strings.NewReader("P1D\nP3YM\n"), check.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, "durations.txt", r, false))
	out := buf.String()
	assert.Contains(t, out, "durations.txt:2: ")
	assert.NotContains(t, out, "durations.txt:1:")
	assert.True(t, strings.HasSuffix(out, "2 checked, 1 invalid\n"))

	buf.Reset()
	require.NoError(t, Report(&buf, "-", r, true))
	assert.Contains(t, buf.String(), "-:1: ok P1D")
}

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmt(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"P3D6M", "P6M3D"},
		{"P007D", "P7D"},
		{"PT0S", "PT0S"},
		{"P", "P0D"},
		{"P2W", "P14D"},
		{"PT1M1H", "PT1H1M"},
	}

	env := newTestEnv(t)
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			env.equals(env.run("fmt", tc.input), tc.want)
		})
	}
}

func TestFmt_Diff(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("fmt", "--diff", "P007D")
	env.contains(out, "P007D -> P7D")
	env.contains(out, "[-00-]")

	out = env.run("fmt", "--diff", "P7D")
	env.equals(out, "P7D")
}

func TestFmt_Check(t *testing.T) {
	env := newTestEnv(t)

	env.run("fmt", "--check", "P1D", "PT5M")

	out, err := env.runErr("fmt", "--check", "P1D", "P3D6M")
	require.Error(t, err)
	env.equals(out, "P3D6M")
}

func TestFmt_Invalid(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("fmt", "P3YM")
	require.Error(t, err)
	env.contains(out, "mismatched designator count")
}

func TestFmt_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.stdout("fmt", "-o", "json", "--diff", "P3D6M", "P1D")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "P6M3D", got[0]["canonical"])
	assert.Equal(t, true, got[0]["changed"])
	assert.NotEmpty(t, got[0]["diff"])
	assert.Equal(t, false, got[1]["changed"])
	assert.NotContains(t, got[1], "diff")
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("list shows all keys", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "parse.canonical_order: false")
		env.contains(out, "parse.strict_numerals: false")
		env.contains(out, "limits.max_line_length: 1048576")
	})

	t.Run("get after set", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "parse.strict_numerals", "true")
		env.contains(out, "(global)")
		env.equals(env.run("config", "parse.strict_numerals"), "true")
	})
}

func TestConfig_Local(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "--local", "parse.canonical_order", "true")
	env.contains(out, "(local)")

	_, err := os.Stat(filepath.Join(env.dir, ".isodur", "config.yaml"))
	require.NoError(t, err)

	// Local config now takes precedence
	env.equals(env.run("config", "parse.canonical_order"), "true")
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "author.name", "x"}},
		{"not a bool", []string{"config", "parse.canonical_order", "maybe"}},
		{"limit out of range", []string{"config", "limits.max_line_length", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.runErr(tc.args...)
			require.Error(t, err)
		})
	}
}

func TestConfig_Malformed(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(".isodur/config.yaml", "parse: [unclosed\n")

	out, err := env.runErr("parse", "P1D")
	require.Error(t, err)
	env.contains(out, "malformed config file")

	// config itself still runs so the file can be repaired
	_, err = env.runErr("config", "--local", "parse.canonical_order", "true")
	require.Error(t, err, "load of a malformed local file still fails")
	env.run("guide")
}

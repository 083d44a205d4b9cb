package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under t.TempDir for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:    "parse:parse",
			Action:    "parse",
			Input:     "P3D",
			Canonical: "P3D",
			Success:   true,
		})

		db := openTestDB(t)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, input, canonical, project string
		var success int
		err := db.QueryRow("SELECT source, action, input, canonical, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &input, &canonical, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "parse:parse", source)
		assert.Equal(t, "parse", action)
		assert.Equal(t, "P3D", input)
		assert.Equal(t, "P3D", canonical)
		assert.Equal(t, hash("/test/project"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "parse:parse",
			Action:  "parse",
			Input:   "3D",
			Success: false,
			Error:   "missing period designator",
		})

		db := openTestDB(t)

		var success int
		var errMsg string
		var canonical sql.NullString
		err := db.QueryRow("SELECT success, error, canonical FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &canonical)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "missing period designator", errMsg)
		assert.False(t, canonical.Valid)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("fluent API success", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("parse:fmt", "format").
			Input("P3D6M").
			Canonical("P6M3D").
			Detail("strict", false).
			Write(nil)

		db := openTestDB(t)

		var source, action, input, canonical, detail string
		var success int
		err := db.QueryRow("SELECT source, action, input, canonical, detail, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &input, &canonical, &detail, &success)
		require.NoError(t, err)
		assert.Equal(t, "parse:fmt", source)
		assert.Equal(t, "format", action)
		assert.Equal(t, "P3D6M", input)
		assert.Equal(t, "P6M3D", canonical)
		assert.JSONEq(t, `{"strict":false}`, detail)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		testErr := errors.New("mismatched designator count")
		Event("mcp:parse", "parse").Input("P3YM").Write(testErr)

		db := openTestDB(t)

		var success int
		var errMsg string
		err := db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".isodur", "log", "isodur-log.db"), DBPath())
}

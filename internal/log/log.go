// Package log provides centralised audit logging for isodur operations.
// Logs are stored in ~/.isodur/log/isodur-log.db and track CLI commands and
// MCP tool invocations across working directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("parse:parse", "parse").
//		Input(s).
//		Canonical(c.String()).
//		Write(err)
//
//	log.Event("parse:check", "check").
//		Detail("lines", total).
//		Detail("invalid", invalid).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "parse:fmt",
// "core:config", "mcp:parse".
//
// The duration package never logs; only the outer surfaces do.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "parse:parse", "mcp:format"
	Action string // verb: parse, format, check, get, set, etc.
	Input  string // input: duration string as given

	// Output field - populated after operation succeeds
	Canonical string // output: canonical rendering of the parsed duration

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "parse:fmt", "core:config")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:parse", "mcp:check")
//
// The action describes what operation was performed:
//   - "parse", "format", "check", "get", "set", "read", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Input sets the duration string the operation was given.
func (b *Builder) Input(s string) *Builder {
	b.entry.Input = s
	return b
}

// Canonical sets the canonical rendering produced by the operation (output).
//
// Only set this after a successful parse.
func (b *Builder) Canonical(s string) *Builder {
	b.entry.Canonical = s
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// strictness, line counts, guide topics, config keys, etc.
// Can be called multiple times to add multiple details.
//
// Example:
//
//	log.Event("parse:check", "check").
//		Detail("lines", 12).
//		Detail("invalid", 2)
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// Example:
//
//	c, err := duration.Parse(s)
//	log.Event("parse:parse", "parse").Input(s).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	if wd, err := os.Getwd(); err == nil {
		global.project = hash(wd)
	}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// Defaults to the working directory at Open.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

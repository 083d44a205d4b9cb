// Package check validates a stream of duration strings, one per line.
//
// Used by "isodur check" to lint files of durations (fixtures, config
// extracts, exported columns) and by the isodur_check MCP tool for batches.
// Blank lines and lines starting with '#' are skipped so annotated lists can
// be checked as-is.
package check

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/isodur/duration"
)

// DefaultMaxLineLength is used when Options.MaxLineLength is zero.
const DefaultMaxLineLength = 1024 * 1024

// ErrLineTooLong is returned when a line exceeds Options.MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// Options configures a check run.
type Options struct {
	Parse duration.Options // Parser strictness

	// MaxLineLength is the maximum line length for scanning (0 = default 1MB).
	MaxLineLength int
}

// Line is the outcome for a single checked line.
type Line struct {
	Number     int                  `json:"line" yaml:"line"`
	Input      string               `json:"input" yaml:"input"`
	Canonical  string               `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Components *duration.Components `json:"components,omitempty" yaml:"components,omitempty"`
	Error      string               `json:"error,omitempty" yaml:"error,omitempty"`
}

// Valid reports whether the line parsed.
func (l Line) Valid() bool { return l.Error == "" }

// Result contains the outcome of a check run.
type Result struct {
	Lines   []Line `json:"lines" yaml:"lines"`
	Checked int    `json:"checked" yaml:"checked"`
	Invalid int    `json:"invalid" yaml:"invalid"`
}

// Err returns an error summarising invalid lines, or nil if all parsed.
func (r Result) Err() error {
	if r.Invalid == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d durations invalid", r.Invalid, r.Checked)
}

// Run reads r line by line and parses each non-blank, non-comment line.
func Run(ctx context.Context, r io.Reader, opts Options) (Result, error) {
	var result Result

	maxLen := opts.MaxLineLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLen)), maxLen)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		n++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		result.add(One(n, s, opts.Parse))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return result, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, n+1, maxLen)
		}
		return result, fmt.Errorf("reading input: %w", err)
	}
	return result, nil
}

// Strings checks each element of inputs; line numbers are 1-based indexes.
func Strings(ctx context.Context, inputs []string, opts duration.Options) (Result, error) {
	var result Result
	for i, s := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.add(One(i+1, s, opts))
	}
	return result, nil
}

// One parses a single input and reports it as line n.
func One(n int, s string, opts duration.Options) Line {
	l := Line{Number: n, Input: s}
	c, err := duration.ParseWith(s, opts)
	if err != nil {
		l.Error = err.Error()
		return l
	}
	l.Canonical = c.String()
	l.Components = &c
	return l
}

func (r *Result) add(l Line) {
	r.Lines = append(r.Lines, l)
	r.Checked++
	if !l.Valid() {
		r.Invalid++
	}
}

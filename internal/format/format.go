// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// parsing while this package handles presentation: column alignment for
// components, check reports, and the machine-readable json/yaml encodings.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/internal/check"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	JSON = "json"
	YAML = "yaml"
)

// Formats lists the valid --output values.
var Formats = []string{JSON, YAML}

// Encode writes v in the given machine-readable format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case JSON:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Fprintln(w, string(b))
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Components prints the present fields of c as an aligned FIELD VALUE table,
// preceded by the input and its canonical form.
//
//	P3DT12H = P3DT12H
//	  days     3
//	  hours    12
func Components(w io.Writer, input string, c duration.Components) error {
	fmt.Fprintf(w, "%s = %s\n", input, c.String())

	fields := c.Fields()
	if len(fields) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return nil
	}

	// Field names are at most "minutes"/"seconds" (7 chars)
	const width = 7
	for _, f := range fields {
		v, _ := c.Get(f)
		fmt.Fprintf(w, "  %-*s  %d\n", width, f, v)
	}
	return nil
}

// Report prints check results, one line per invalid input, followed by a
// summary. With verbose, valid inputs are listed too.
func Report(w io.Writer, name string, r check.Result, verbose bool) error {
	for _, l := range r.Lines {
		switch {
		case !l.Valid():
			fmt.Fprintf(w, "%s:%d: %s\n", name, l.Number, l.Error)
		case verbose:
			fmt.Fprintf(w, "%s:%d: ok %s\n", name, l.Number, l.Canonical)
		}
	}
	fmt.Fprintf(w, "%d checked, %d invalid\n", r.Checked, r.Invalid)
	return nil
}

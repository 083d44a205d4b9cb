// Package diff computes inline differences between a duration string as
// written and its canonical form, used by "isodur fmt --diff".
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Markers delimiting removed and inserted text in plain output.
const (
	delOpen  = "[-"
	delClose = "-]"
	insOpen  = "{+"
	insClose = "+}"
)

// Result holds diff output.
type Result struct {
	Old     string // input as written
	New     string // canonical form
	Changed bool   // Old and New differ
	Diff    string // inline diff text
	spans   []diffmatchpatch.Diff
}

// Compute returns an inline diff between the input and its canonical form.
func Compute(oldText, newText string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldText, newText, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{
		Old:     oldText,
		New:     newText,
		Changed: oldText != newText,
		Diff:    render(d, false),
		spans:   d,
	}
}

// render writes the diff inline, marking deletions and insertions either
// with word-diff markers or ANSI colours.
func render(diffs []diffmatchpatch.Diff, colour bool) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if colour {
				b.WriteString(red + d.Text + reset)
			} else {
				b.WriteString(delOpen + d.Text + delClose)
			}
		case diffmatchpatch.DiffInsert:
			if colour {
				b.WriteString(green + d.Text + reset)
			} else {
				b.WriteString(insOpen + d.Text + insClose)
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Format returns the diff as a single "old -> new" line followed by the
// inline diff. Unchanged input yields just the input.
func (r Result) Format(colour bool) string {
	if !r.Changed {
		return r.Old + "\n"
	}
	return fmt.Sprintf("%s -> %s\n  %s\n", r.Old, r.New, render(r.spans, colour))
}

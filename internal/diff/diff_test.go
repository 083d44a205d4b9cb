package diff

import (
	"strings"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		changed bool
	}{
		{"unchanged", "P3Y6M", "P3Y6M", false},
		{"reordered", "P3D6M", "P6M3D", true},
		{"week form", "P10W", "P70D", true},
		{"leading zero", "P007D", "P7D", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Compute(tc.old, tc.new)
			if r.Changed != tc.changed {
				t.Errorf("Compute(%q, %q).Changed = %v, want %v", tc.old, tc.new, r.Changed, tc.changed)
			}
			if got := strip(r.Diff, true); got != tc.old {
				t.Errorf("old side of %q = %q, want %q", r.Diff, got, tc.old)
			}
			if got := strip(r.Diff, false); got != tc.new {
				t.Errorf("new side of %q = %q, want %q", r.Diff, got, tc.new)
			}
		})
	}
}

func TestCompute_Markers(t *testing.T) {
	r := Compute("P007D", "P7D")
	if r.Diff != "P[-00-]7D" {
		t.Errorf("Diff = %q, want %q", r.Diff, "P[-00-]7D")
	}
}

func TestFormat(t *testing.T) {
	if got := Compute("PT1H", "PT1H").Format(false); got != "PT1H\n" {
		t.Errorf("Format(unchanged) = %q", got)
	}

	got := Compute("P007D", "P7D").Format(false)
	if !strings.HasPrefix(got, "P007D -> P7D\n") {
		t.Errorf("Format() header = %q", got)
	}

	coloured := Compute("P007D", "P7D").Format(true)
	if !strings.Contains(coloured, "\033[31m00\033[0m") {
		t.Errorf("Format(colour) = %q, want red deletion", coloured)
	}
}

// strip reconstructs one side of an inline diff by dropping the other side's
// spans and the markers.
func strip(d string, old bool) string {
	var b strings.Builder
	for len(d) > 0 {
		switch {
		case strings.HasPrefix(d, delOpen):
			end := strings.Index(d, delClose)
			if old {
				b.WriteString(d[len(delOpen):end])
			}
			d = d[end+len(delClose):]
		case strings.HasPrefix(d, insOpen):
			end := strings.Index(d, insClose)
			if !old {
				b.WriteString(d[len(insOpen):end])
			}
			d = d[end+len(insClose):]
		default:
			b.WriteByte(d[0])
			d = d[1:]
		}
	}
	return b.String()
}

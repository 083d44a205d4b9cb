package duration

import (
	"strconv"
	"strings"
)

// String renders c in canonical ISO 8601 form. Only present fields are
// written, so any non-empty parsed value re-parses to the same Components.
// An empty value renders as "P0D" because a bare "P" is rejected by
// ParseStrict.
func (c Components) String() string {
	var b strings.Builder
	b.WriteByte(periodDesignator)
	wroteTime := false
	for _, f := range AllFields {
		n, ok := c.Get(f)
		if !ok {
			continue
		}
		if f.IsTime() && !wroteTime {
			b.WriteByte(timeSeparator)
			wroteTime = true
		}
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(f.Designator())
	}
	if b.Len() == 1 {
		b.WriteString("0D")
	}
	return b.String()
}

// fields.go maps extracted designations onto Components fields.
//
// 'M' means months in the period section and minutes in the time section.
// The mapper is told which section it is reading, so the letter alone never
// decides the field.

package duration

import (
	"strconv"
	"strings"
)

const (
	periodDesignators = "YMD"
	timeDesignators   = "HMS"
)

// sectionFields maps the designators of one section to their fields.
type sectionFields map[string]Field

var (
	periodFields = sectionFields{"Y": Years, "M": Months, "D": Days}
	timeFields   = sectionFields{"H": Hours, "M": Minutes, "S": Seconds}
)

// apply writes every known designation of ds into c. Unknown designators
// are skipped.
func (sf sectionFields) apply(c *Components, ds designations, opts Options) *ParseError {
	for _, d := range ds {
		f, ok := sf[d.designator]
		if !ok {
			continue
		}
		n, err := numeral(d.numeral, opts)
		if err != nil {
			return err
		}
		c.set(f, n)
	}
	return nil
}

// numeral converts a numeral run to an int. Without StrictNumerals a run
// that does not start with an integer converts to 0.
func numeral(s string, opts Options) (int, *ParseError) {
	if !opts.StrictNumerals {
		return looseInt(s), nil
	}
	n, err := strictInt(s)
	if err != nil {
		return 0, &ParseError{Kind: KindInvalidNumericValue, Fragment: s}
	}
	return n, nil
}

// strictInt accepts only unsigned base-10 digits that fit in an int.
func strictInt(s string) (int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) }) >= 0 {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// looseInt reads an optional sign and the digits that follow, ignoring
// leading whitespace and anything after the digits. Out of range values
// clamp to the int limits.
func looseInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && isDigit(rune(s[j])) {
		j++
	}
	if j == i {
		return 0
	}
	n, _ := strconv.ParseInt(s[:j], 10, 0)
	return int(n)
}

// looseFloat reads the leading decimal number of s, returning 0 when there
// is none.
func looseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && f == 0 {
		return 0
	}
	return f
}

// order.go enforces grammar order when Options.CanonicalOrder is set.
//
// The default parser pairs designators with numerals by position only, so
// "P3D6M" and "P1D2D" parse. Canonical order rejects unknown, repeated and
// out-of-order designators and durations with nothing in them.

package duration

import "strings"

// checkOrder verifies ds uses each designator of set at most once and in the
// order the set lists them.
func checkOrder(section string, ds designations, set string) *ParseError {
	last := -1
	for _, d := range ds {
		pos := -1
		if len(d.designator) == 1 {
			pos = strings.IndexByte(set, d.designator[0])
		}
		if pos < 0 {
			return &ParseError{Kind: KindUnexpectedDesignator, Fragment: d.designator}
		}
		if pos <= last {
			return &ParseError{Kind: KindUnexpectedDesignator, Fragment: section}
		}
		last = pos
	}
	return nil
}

// checkWeekOrder requires the week form to be exactly one numeral and 'W'.
func checkWeekOrder(rest string, ds designations) *ParseError {
	if len(ds) == 0 {
		return &ParseError{Kind: KindEmptyDuration, Fragment: rest}
	}
	return checkOrder(rest, ds, string(weekDesignator))
}

// checkEmpty rejects "P", "PT" and a 'T' with no time components.
func checkEmpty(sec sections, period, time designations) *ParseError {
	if sec.hasTime && len(time) == 0 {
		return &ParseError{Kind: KindEmptyDuration, Fragment: string(timeSeparator) + sec.time}
	}
	if len(period) == 0 && len(time) == 0 {
		return &ParseError{Kind: KindEmptyDuration}
	}
	return nil
}

// section.go splits a duration string into its period and time sections and
// handles the week shorthand.

package duration

import (
	"math"
	"strings"
)

const (
	periodDesignator = 'P'
	timeSeparator    = 'T'
	weekDesignator   = 'W'

	daysPerWeek = 7
)

// sections is the result of splitting an input after the 'P' is removed.
type sections struct {
	period  string // candidate Y/M/D content, or the week form when week is set
	time    string // candidate H/M/S content after 'T'
	hasTime bool   // a 'T' separator was present, even if nothing follows it
	week    bool   // the input uses the P[n]W form
}

// split locates 'P', removes it, and divides the remainder at the first
// literal 'T'. Inputs containing 'W' are routed to the week form untouched.
func split(input string, opts Options) (sections, *ParseError) {
	p := strings.IndexByte(input, periodDesignator)
	if p < 0 || (opts.CanonicalOrder && p != 0) {
		return sections{}, &ParseError{Kind: KindMissingPeriodDesignator, Fragment: input}
	}
	rest := input[:p] + input[p+1:]

	if strings.IndexByte(rest, weekDesignator) >= 0 {
		return sections{period: rest, week: true}, nil
	}

	t := strings.IndexByte(rest, timeSeparator)
	if t < 0 {
		return sections{period: rest}, nil
	}
	return sections{period: rest[:t], time: rest[t+1:], hasTime: true}, nil
}

// weeks converts P[n]W into a day count. Only the numeral paired with 'W'
// is read; anything else in the string is ignored unless CanonicalOrder is set.
func weeks(rest string, opts Options) (Components, *ParseError) {
	ds, err := extract(rest, string(weekDesignator))
	if err != nil {
		return Components{}, err
	}
	if opts.CanonicalOrder {
		if err := checkWeekOrder(rest, ds); err != nil {
			return Components{}, err
		}
	}

	numeral, ok := ds.mapping()[string(weekDesignator)]
	if !ok {
		return Components{}, nil
	}

	if opts.StrictNumerals {
		n, err := strictInt(numeral)
		if err != nil || n > math.MaxInt/daysPerWeek {
			return Components{}, &ParseError{Kind: KindInvalidNumericValue, Fragment: numeral}
		}
		return Components{Days: ptr(n * daysPerWeek)}, nil
	}
	return Components{Days: ptr(truncate(looseFloat(numeral) * daysPerWeek))}, nil
}

// truncate converts f to an int, rounding toward zero and clamping to the
// int range.
func truncate(f float64) int {
	f = math.Trunc(f)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

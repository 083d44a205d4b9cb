// errors.go defines the parse failure taxonomy.
//
// Separated from duration.go so the closed set of failure kinds lives in one
// place. Callers match with errors.Is against the sentinels, or errors.As
// into *ParseError when they need the offending fragment.
//
// Design: Sentinels carry the category, ParseError carries the context. The
// parser never prints; a malformed input is always a returned error, never a
// zero-valued Components that looks like the valid empty duration "P".

package duration

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPeriodDesignator   = errors.New("missing period designator 'P'")
	ErrMismatchedDesignatorCount = errors.New("mismatched designator count")
	ErrInvalidNumericValue       = errors.New("invalid numeric value")
	ErrUnexpectedDesignator      = errors.New("unexpected designator")
	ErrEmptyDuration             = errors.New("empty duration")
)

// Kind identifies why a parse failed.
type Kind int

const (
	KindMissingPeriodDesignator Kind = iota + 1
	KindMismatchedDesignatorCount
	// The kinds below are only reported when the matching Options are set.
	KindInvalidNumericValue
	KindUnexpectedDesignator
	KindEmptyDuration
)

var kindErrors = map[Kind]error{
	KindMissingPeriodDesignator:   ErrMissingPeriodDesignator,
	KindMismatchedDesignatorCount: ErrMismatchedDesignatorCount,
	KindInvalidNumericValue:       ErrInvalidNumericValue,
	KindUnexpectedDesignator:      ErrUnexpectedDesignator,
	KindEmptyDuration:             ErrEmptyDuration,
}

// String returns the sentinel message for the kind.
func (k Kind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseError reports a malformed duration string.
type ParseError struct {
	Kind     Kind
	Input    string // the full string passed to Parse
	Fragment string // the section or numeral that failed
}

func (e *ParseError) Error() string {
	if e.Fragment == "" || e.Fragment == e.Input {
		return fmt.Sprintf("parse duration %q: %s", e.Input, e.Kind)
	}
	return fmt.Sprintf("parse duration %q: %s in %q", e.Input, e.Kind, e.Fragment)
}

// Unwrap returns the sentinel for the kind so errors.Is works.
func (e *ParseError) Unwrap() error {
	return kindErrors[e.Kind]
}

// AsParseError unwraps err to a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

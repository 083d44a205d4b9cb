// Package duration parses ISO 8601 duration strings into calendar components.
//
// Two forms are accepted:
//
//	P[n]Y[n]M[n]DT[n]H[n]M[n]S   e.g. P3Y6M4DT12H30M5S
//	P[n]W                        e.g. P10W (70 days)
//
// The result keeps every component separate and unnormalised: 13 months stay
// 13 months, because only the caller knows which calendar the duration will
// be applied to. Components absent from the input are absent from the result,
// which keeps "P" distinct from "P0D".
//
// Parse is deliberately lenient and pairs designators with numerals by
// position. ParseStrict (or ParseWith and Options) additionally enforces
// grammar order and integer numerals.
//
// Parsing is pure: no I/O, no logging, no shared state. All functions are
// safe for concurrent use.
package duration

// Field identifies one component of a duration.
type Field int

const (
	Years Field = iota
	Months
	Days
	Hours
	Minutes
	Seconds
)

// AllFields lists every field in canonical order.
var AllFields = []Field{Years, Months, Days, Hours, Minutes, Seconds}

var fieldNames = [...]string{"years", "months", "days", "hours", "minutes", "seconds"}

// String returns the lower-case field name, e.g. "months".
func (f Field) String() string {
	if f < Years || f > Seconds {
		return "unknown"
	}
	return fieldNames[f]
}

// Designator returns the letter that marks the field in a duration string.
func (f Field) Designator() byte {
	return "YMDHMS"[f]
}

// IsTime reports whether the field belongs after the 'T' separator.
func (f Field) IsTime() bool {
	return f >= Hours
}

// Components holds the parsed value of each field. A nil field was not
// present in the input.
type Components struct {
	Years   *int `json:"years,omitempty" yaml:"years,omitempty"`
	Months  *int `json:"months,omitempty" yaml:"months,omitempty"`
	Days    *int `json:"days,omitempty" yaml:"days,omitempty"`
	Hours   *int `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes *int `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds *int `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// Get returns the value of f and whether it was present.
func (c Components) Get(f Field) (int, bool) {
	p := c.field(f)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Fields returns the fields present in c, in canonical order.
func (c Components) Fields() []Field {
	var fs []Field
	for _, f := range AllFields {
		if c.field(f) != nil {
			fs = append(fs, f)
		}
	}
	return fs
}

// IsEmpty reports whether no field is present.
func (c Components) IsEmpty() bool {
	return len(c.Fields()) == 0
}

func (c Components) field(f Field) *int {
	switch f {
	case Years:
		return c.Years
	case Months:
		return c.Months
	case Days:
		return c.Days
	case Hours:
		return c.Hours
	case Minutes:
		return c.Minutes
	case Seconds:
		return c.Seconds
	}
	return nil
}

// set is only used while a parse call is assembling its result.
func (c *Components) set(f Field, n int) {
	switch f {
	case Years:
		c.Years = ptr(n)
	case Months:
		c.Months = ptr(n)
	case Days:
		c.Days = ptr(n)
	case Hours:
		c.Hours = ptr(n)
	case Minutes:
		c.Minutes = ptr(n)
	case Seconds:
		c.Seconds = ptr(n)
	}
}

func ptr(n int) *int { return &n }

// Options tightens what Parse accepts. The zero value is the lenient parser.
type Options struct {
	// CanonicalOrder requires 'P' first, each designator at most once and in
	// grammar order, nothing after 'W', and at least one component.
	CanonicalOrder bool

	// StrictNumerals rejects numerals that are not plain base-10 integers
	// instead of reading them as 0.
	StrictNumerals bool
}

// Strict enables every check.
var Strict = Options{CanonicalOrder: true, StrictNumerals: true}

// Parse parses s with the lenient defaults.
//
//	Parse("P3DT12H") // {Days: 3, Hours: 12}
//	Parse("P10W")    // {Days: 70}
//	Parse("3D")      // ErrMissingPeriodDesignator
func Parse(s string) (Components, error) {
	return ParseWith(s, Options{})
}

// ParseStrict parses s with every check in Options enabled.
func ParseStrict(s string) (Components, error) {
	return ParseWith(s, Strict)
}

// ParseWith parses s using opts. On failure it returns the zero Components
// and a *ParseError.
func ParseWith(s string, opts Options) (Components, error) {
	c, err := parse(s, opts)
	if err != nil {
		err.Input = s
		return Components{}, err
	}
	return c, nil
}

func parse(s string, opts Options) (Components, *ParseError) {
	sec, err := split(s, opts)
	if err != nil {
		return Components{}, err
	}
	if sec.week {
		return weeks(sec.period, opts)
	}

	period, err := extract(sec.period, periodDesignators)
	if err != nil {
		return Components{}, err
	}
	time, err := extract(sec.time, timeDesignators)
	if err != nil {
		return Components{}, err
	}

	if opts.CanonicalOrder {
		if err := checkOrder(sec.period, period, periodDesignators); err != nil {
			return Components{}, err
		}
		if err := checkOrder(sec.time, time, timeDesignators); err != nil {
			return Components{}, err
		}
		if err := checkEmpty(sec, period, time); err != nil {
			return Components{}, err
		}
	}

	var c Components
	if err := periodFields.apply(&c, period, opts); err != nil {
		return Components{}, err
	}
	if err := timeFields.apply(&c, time, opts); err != nil {
		return Components{}, err
	}
	return c, nil
}

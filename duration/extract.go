// extract.go implements the designator extractor shared by every section.
//
// A section such as "3Y6M4D" is read twice: once split on the designator
// letters to get the numerals, once split on the digits to get the
// designators. The two sequences are paired by position.
//
// Design: Pairing is positional and only the run counts are checked here.
// Grammar order is enforced separately (see order.go) because the default
// parser accepts "P3D6M" the same way the long-standing implementations do.

package duration

import "strings"

// designation pairs a designator run with the numeral that precedes it.
type designation struct {
	designator string
	numeral    string
}

// designations is the ordered result of extract. Later entries for the same
// designator win, matching a map built by successive assignment.
type designations []designation

// mapping returns the designator to numeral map for the section.
func (ds designations) mapping() map[string]string {
	m := make(map[string]string, len(ds))
	for _, d := range ds {
		m[d.designator] = d.numeral
	}
	return m
}

// extract splits section into numeral and designator runs and pairs them.
// An empty section is valid and yields no designations.
func extract(section, designators string) (designations, *ParseError) {
	if section == "" {
		return nil, nil
	}

	numerals := strings.FieldsFunc(section, func(r rune) bool {
		return strings.ContainsRune(designators, r)
	})
	names := designatorRuns(section, designators)

	if len(numerals) != len(names) {
		return nil, &ParseError{Kind: KindMismatchedDesignatorCount, Fragment: section}
	}

	ds := make(designations, len(names))
	for i := range names {
		ds[i] = designation{designator: names[i], numeral: numerals[i]}
	}
	return ds, nil
}

// designatorRuns splits section on decimal digits and drops empty runs.
// A designator letter closes the run it belongs to, so "YM" is two runs;
// any other non-digit character stays attached to the run it appears in.
func designatorRuns(section, designators string) []string {
	var (
		runs []string
		b    strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			runs = append(runs, b.String())
			b.Reset()
		}
	}

	for _, r := range section {
		switch {
		case isDigit(r):
			flush()
		case strings.ContainsRune(designators, r):
			b.WriteRune(r)
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return runs
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

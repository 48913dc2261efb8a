package filter

import "quarry/packages/core/catalog"

// Storage independent boolean condition.
// Implemented only by types of this package.
type Predicate interface {
	predicate()
}

// Column <op> Value, where op is one of: eq, neq, gt, lt, gte, lte.
// Value always has Go type which corresponds to the column kind.
type Compare struct {
	Column catalog.Descriptor
	Op     Operator
	Value  any
}

type IsNull struct {
	Column  catalog.Descriptor
	Negated bool
}

type MatchMode uint8

const (
	MatchContains MatchMode = iota + 1
	MatchPrefix
	MatchSuffix
)

// Case-sensitive substring test over string column.
type Match struct {
	Column catalog.Descriptor
	Mode   MatchMode
	Text   string
}

// Column is equal to any of Values. Values is never empty.
type Set struct {
	Column catalog.Descriptor
	Values []any
}

// Lower <= Column <= Upper. Bounds are never swapped.
type Range struct {
	Column catalog.Descriptor
	Lower  any
	Upper  any
}

// Disjunction of Terms
type Any struct {
	Terms []Predicate
}

// Conjunction of Terms
type All struct {
	Terms []Predicate
}

func (*Compare) predicate() {}
func (*IsNull) predicate()  {}
func (*Match) predicate()   {}
func (*Set) predicate()     {}
func (*Range) predicate()   {}
func (*Any) predicate()     {}
func (*All) predicate()     {}

// Joins terms by OR. Nil terms are skipped.
// Returns nil if there are no terms, returns term itself if it's the only one.
func Or(terms ...Predicate) Predicate {
	terms = compact(terms)
	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms[0]
	}
	return &Any{Terms: terms}
}

// Joins terms by AND. Nil terms are skipped.
// Returns nil if there are no terms, returns term itself if it's the only one.
func And(terms ...Predicate) Predicate {
	terms = compact(terms)
	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms[0]
	}
	return &All{Terms: terms}
}

func compact(terms []Predicate) []Predicate {
	r := make([]Predicate, 0, len(terms))
	for _, term := range terms {
		if term != nil {
			r = append(r, term)
		}
	}
	return r
}

// Package filter parses textual filter expressions and turns their clauses
// into storage independent predicates.
//
// Filter expression has following format:
//
//	<column>,<operator>[,<value>][,or,<clause>...][,and,<group>...]
//
// Clauses inside of a group are joined by OR, groups are joined by AND.
package filter

import "strings"

type Operator string

const (
	Eq         Operator = "eq"
	Neq        Operator = "neq"
	Gt         Operator = "gt"
	Lt         Operator = "lt"
	Gte        Operator = "gte"
	Lte        Operator = "lte"
	Contains   Operator = "contains"
	StartsWith Operator = "startswith"
	EndsWith   Operator = "endswith"
	In         Operator = "in"
	Between    Operator = "between"
	DateRange  Operator = "daterange"
	Null       Operator = "null"
	NotNull    Operator = "notnull"
)

// Older clients are sending date range operator as "5"
const legacyDateRange = "5"

var operators = map[Operator]bool{
	Eq:         true,
	Neq:        true,
	Gt:         true,
	Lt:         true,
	Gte:        true,
	Lte:        true,
	Contains:   true,
	StartsWith: true,
	EndsWith:   true,
	In:         true,
	Between:    true,
	DateRange:  true,
	Null:       true,
	NotNull:    true,
}

// Normalizes operator token: trims and lower-cases it, maps legacy codes.
// Unknown tokens are returned as is (lower-cased), use IsValid to check them.
func ParseOperator(token string) Operator {
	op := strings.ToLower(strings.TrimSpace(token))
	if op == legacyDateRange {
		return DateRange
	}
	return Operator(op)
}

func (o Operator) IsValid() bool {
	return operators[o]
}

// Returns true if operator is one of: eq, neq, gt, lt, gte, lte.
func (o Operator) IsComparison() bool {
	switch o {
	case Eq, Neq, Gt, Lt, Gte, Lte:
		return true
	}
	return false
}

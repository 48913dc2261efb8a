package filter

import (
	"quarry/packages/core/catalog"
	"strings"
)

// Reason why clause doesn't contribute any condition.
type DropReason uint8

const (
	// Clause has less then two tokens
	MalformedClause DropReason = iota + 1
	// Column wasn't found in catalog
	UnresolvedColumn
	// Value can't be coerced to the column kind
	UnparsableValue
	// Operator is unknown or can't be applied to the column kind
	UnsupportedOperator
)

var dropReasonToStrMap = map[DropReason]string{
	MalformedClause:     "malformed clause",
	UnresolvedColumn:    "unresolved column",
	UnparsableValue:     "unparsable value",
	UnsupportedOperator: "unsupported operator for type",
}

func (r DropReason) String() string {
	return dropReasonToStrMap[r]
}

const (
	setSeparator   = "|"
	rangeSeparator = "~"
)

var matchModes = map[Operator]MatchMode{
	Contains:   MatchContains,
	StartsWith: MatchPrefix,
	EndsWith:   MatchSuffix,
}

// Builds predicate for the column from operator and its raw value.
// Returns false if clause can't be represented by a condition,
// such clause must be ignored by the caller.
func Build(column catalog.Descriptor, op Operator, raw string) (Predicate, bool) {
	p, reason := Explain(column, op, raw)
	return p, reason == 0
}

// Same as Build, but on failure returns reason why there are no condition.
func Explain(column catalog.Descriptor, op Operator, raw string) (Predicate, DropReason) {
	if !op.IsValid() {
		return nil, UnsupportedOperator
	}

	switch {
	case op == Null, op == NotNull:
		return &IsNull{Column: column, Negated: op == NotNull}, 0
	case op.IsComparison():
		return buildCompare(column, op, raw)
	case op == Contains, op == StartsWith, op == EndsWith:
		if column.Kind != catalog.String {
			return nil, UnsupportedOperator
		}
		return &Match{Column: column, Mode: matchModes[op], Text: raw}, 0
	case op == In:
		return buildSet(column, raw)
	case op == Between:
		switch column.Kind {
		case catalog.Int32, catalog.Int64, catalog.Decimal:
			return buildRange(column, raw)
		}
		return nil, UnsupportedOperator
	case op == DateRange:
		if column.Kind != catalog.Time {
			return nil, UnsupportedOperator
		}
		return buildRange(column, raw)
	}

	return nil, UnsupportedOperator
}

func buildCompare(column catalog.Descriptor, op Operator, raw string) (Predicate, DropReason) {
	value, ok := ParseLiteral(column.Kind, raw)
	if !ok {
		return nil, UnparsableValue
	}
	return &Compare{Column: column, Op: op, Value: value}, 0
}

func buildSet(column catalog.Descriptor, raw string) (Predicate, DropReason) {
	switch column.Kind {
	case catalog.String, catalog.Int32, catalog.Int64:
	default:
		return nil, UnsupportedOperator
	}

	values := []any{}
	for _, token := range strings.Split(raw, setSeparator) {
		if token = strings.TrimSpace(token); token == "" {
			continue
		}
		// Tokens which can't be parsed are excluded from the set
		if value, ok := ParseLiteral(column.Kind, token); ok {
			values = append(values, value)
		}
	}

	if len(values) == 0 {
		return nil, UnparsableValue
	}

	return &Set{Column: column, Values: values}, 0
}

func buildRange(column catalog.Descriptor, raw string) (Predicate, DropReason) {
	bounds := split(raw, rangeSeparator)
	if len(bounds) < 2 {
		return nil, UnparsableValue
	}

	lower, ok := ParseLiteral(column.Kind, bounds[0])
	if !ok {
		return nil, UnparsableValue
	}
	upper, ok := ParseLiteral(column.Kind, bounds[1])
	if !ok {
		return nil, UnparsableValue
	}

	return &Range{Column: column, Lower: lower, Upper: upper}, 0
}

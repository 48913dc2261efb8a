package filter

import (
	"strings"
)

const (
	andSeparator   = ",and,"
	orSeparator    = ",or,"
	tokenSeparator = ","
)

type Clause struct {
	Column   string
	Operator Operator
	// Empty if clause has no value (e.g. for "null" operator)
	Value string
}

// Clauses joined by OR
type Group []Clause

// Groups joined by AND
type Expression []Group

// Returns amount of clauses in all groups.
func (e Expression) Len() int {
	n := 0
	for _, group := range e {
		n += len(group)
	}
	return n
}

// Splits s by sep, empty parts are removed.
func split(s string, sep string) []string {
	parts := strings.Split(s, sep)
	r := parts[:0]
	for _, part := range parts {
		if part != "" {
			r = append(r, part)
		}
	}
	return r
}

// Splits clause into trimmed non-empty tokens.
func tokenize(s string) []string {
	parts := strings.Split(s, tokenSeparator)
	r := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			r = append(r, part)
		}
	}
	return r
}

// Parses raw filter into expression.
//
// Clauses which has less then 2 tokens are skipped and returned as malformed,
// they never prevent parsing of the rest of the filter.
// Empty (or whitespace only) filter results in empty expression.
// Tokens after the third one are ignored.
//
// Values can't contain ",", ",or," and ",and,", there are no way to escape them.
func Parse(raw string) (expr Expression, malformed []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, rawGroup := range split(raw, andSeparator) {
		var group Group

		for _, rawClause := range split(rawGroup, orSeparator) {
			tokens := tokenize(rawClause)
			if len(tokens) < 2 {
				malformed = append(malformed, rawClause)
				continue
			}

			clause := Clause{
				Column:   tokens[0],
				Operator: ParseOperator(tokens[1]),
			}
			if len(tokens) > 2 {
				clause.Value = tokens[2]
			}

			group = append(group, clause)
		}

		if len(group) != 0 {
			expr = append(expr, group)
		}
	}

	return expr, malformed
}

// Parses default filter spec, which has format "<operator>:<value>" or just "<value>".
// If operator is omitted, then it's Eq.
func ParseSpec(spec string) (Operator, string) {
	op, value, found := strings.Cut(spec, ":")
	if !found {
		return Eq, spec
	}
	return ParseOperator(op), strings.TrimSpace(value)
}

package query

import (
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"strings"
)

func invalidColumn[E any](cat *catalog.Catalog[E], role Role, column string) *InvalidColumnError {
	return &InvalidColumnError{
		Column: column,
		Role:   role,
		Valid:  cat.Names(),
	}
}

// Builds conditions from client filter and default filters.
//
// Clauses of a group are joined by OR, group without valid clauses adds no condition.
// Default filter is applied only if client didn't filter by the same column,
// even if client's clause was ignored due to invalid value.
func compose[E any](cat *catalog.Catalog[E], req *Request) ([]filter.Predicate, error) {
	expr, malformed := filter.Parse(req.Filter)

	for _, fragment := range malformed {
		req.Observer.notify(FilterRole, filter.MalformedClause, fragment)
	}

	where := make([]filter.Predicate, 0, len(expr)+len(req.Defaults))
	provided := make(map[string]bool, expr.Len())

	for _, group := range expr {
		terms := make([]filter.Predicate, 0, len(group))

		for _, clause := range group {
			column, ok := cat.Lookup(clause.Column)
			if !ok {
				if req.Strict {
					return nil, invalidColumn(cat, FilterRole, clause.Column)
				}
				req.Observer.notify(FilterRole, filter.UnresolvedColumn, formatClause(clause))
				continue
			}

			provided[column.Name] = true

			p, reason := filter.Explain(column.Descriptor, clause.Operator, clause.Value)
			if reason != 0 {
				req.Observer.notify(FilterRole, reason, formatClause(clause))
				continue
			}

			terms = append(terms, p)
		}

		if p := filter.Or(terms...); p != nil {
			where = append(where, p)
		}
	}

	for _, def := range req.Defaults {
		column, ok := cat.Lookup(def.Column)
		if !ok {
			if req.Strict {
				return nil, invalidColumn(cat, DefaultFilterRole, def.Column)
			}
			req.Observer.notify(DefaultFilterRole, filter.UnresolvedColumn, def.Column+":"+def.Spec)
			continue
		}

		if provided[column.Name] {
			continue
		}

		op, value := filter.ParseSpec(def.Spec)

		p, reason := filter.Explain(column.Descriptor, op, value)
		if reason != 0 {
			req.Observer.notify(DefaultFilterRole, reason, def.Column+":"+def.Spec)
			continue
		}

		where = append(where, p)
	}

	return where, nil
}

func formatClause(c filter.Clause) string {
	parts := []string{c.Column, string(c.Operator)}
	if c.Value != "" {
		parts = append(parts, c.Value)
	}
	return strings.Join(parts, ",")
}

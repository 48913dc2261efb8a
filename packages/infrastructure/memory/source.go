// Package memory provides data source which runs queries over a slice of entities.
package memory

import (
	"context"
	"quarry/packages/core/catalog"
	"quarry/packages/core/query"
	"slices"
)

// Satisfies query.Source.
// Rows are never modified, so Source is safe for concurrent use.
type Source[E any] struct {
	catalog *catalog.Catalog[E]
	rows    []E
}

func NewSource[E any](cat *catalog.Catalog[E], rows []E) *Source[E] {
	return &Source[E]{
		catalog: cat,
		rows:    rows,
	}
}

func (s *Source[E]) filter(ctx context.Context, q *query.Query) ([]*E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	match, err := Matcher(s.catalog, q.Predicate())
	if err != nil {
		return nil, err
	}

	r := []*E{}
	for i := range s.rows {
		if match(&s.rows[i]) {
			r = append(r, &s.rows[i])
		}
	}

	return r, nil
}

func (s *Source[E]) Count(ctx context.Context, q *query.Query) (int, error) {
	rows, err := s.filter(ctx, q)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Source[E]) Fetch(ctx context.Context, q *query.Query) ([]E, error) {
	rows, err := s.filter(ctx, q)
	if err != nil {
		return nil, err
	}

	if q.Order != nil {
		col, ok := s.catalog.Lookup(q.Order.Column.Name)
		if ok {
			// Stable, so rows with equal keys keep their original order
			slices.SortStableFunc(rows, func(a, b *E) int {
				r := compareNullable(col.Get(a), col.Get(b))
				if q.Order.Descending {
					return -r
				}
				return r
			})
		}
	}

	offset := max(q.Offset, 0)
	if offset > len(rows) {
		offset = len(rows)
	}
	n := max(q.Limit, 0)
	if n > len(rows)-offset {
		n = len(rows) - offset
	}
	end := offset + n

	page := make([]E, 0, end-offset)
	for _, row := range rows[offset:end] {
		page = append(page, *row)
	}

	return page, nil
}

package query

import (
	"quarry/packages/core/catalog"
	logical "quarry/packages/core/query"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table and its columns which are selected.
type Table struct {
	Name    string
	Columns []string
	// Column which is appended to ORDER BY, so paging stays deterministic
	// when sort column has duplicates.
	TieBreaker string
}

func (t *Table) identifier() string {
	return pgx.Identifier{t.Name}.Sanitize()
}

func (t *Table) columns() []string {
	r := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		r[i] = pgx.Identifier{col}.Sanitize()
	}
	return r
}

func orderBy(column catalog.Descriptor, descending bool) string {
	// Nulls are the smallest values.
	if descending {
		return identifier(column) + " DESC NULLS LAST"
	}
	return identifier(column) + " ASC NULLS FIRST"
}

// Builds "SELECT COUNT(*)" query, order and paging of q are ignored.
func (t *Table) Count(q *logical.Query) (*Query, error) {
	builder := psql.Select("COUNT(*)").From(t.identifier())

	where, err := Where(q.Predicate())
	if err != nil {
		return nil, err
	}
	if where != nil {
		builder = builder.Where(where)
	}

	return FromSqlizer(builder)
}

// Builds query which selects rows matching q.
// Limit of q must be above 0.
func (t *Table) Select(q *logical.Query) (*Query, error) {
	builder := psql.Select(t.columns()...).From(t.identifier())

	where, err := Where(q.Predicate())
	if err != nil {
		return nil, err
	}
	if where != nil {
		builder = builder.Where(where)
	}

	if q.Order != nil {
		builder = builder.OrderBy(orderBy(q.Order.Column, q.Order.Descending))
		if t.TieBreaker != "" && q.Order.Column.Storage != t.TieBreaker {
			builder = builder.OrderBy(pgx.Identifier{t.TieBreaker}.Sanitize() + " ASC")
		}
	} else if t.TieBreaker != "" {
		builder = builder.OrderBy(pgx.Identifier{t.TieBreaker}.Sanitize() + " ASC")
	}

	builder = builder.Limit(uint64(q.Limit))
	if q.Offset > 0 {
		builder = builder.Offset(uint64(q.Offset))
	}

	return FromSqlizer(builder)
}

// Builds query which selects single row where key column is equal to value.
func (t *Table) SelectBy(key string, value any) (*Query, error) {
	return FromSqlizer(
		psql.Select(t.columns()...).
			From(t.identifier()).
			Where(sq.Eq{pgx.Identifier{key}.Sanitize(): value}),
	)
}

package memory

import (
	"context"
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"quarry/packages/core/query"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type game struct {
	ID       int64
	Title    string
	Genre    int32
	Price    decimal.Decimal
	Released time.Time
	Online   bool
	Rating   *int64
}

func ptr[T any](v T) *T {
	return &v
}

var games = catalog.MustNew(
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Id", Kind: catalog.Int64},
		Get:        func(g *game) any { return g.ID },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Title", Kind: catalog.String},
		Get:        func(g *game) any { return g.Title },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Genre", Kind: catalog.Int32},
		Get:        func(g *game) any { return g.Genre },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Price", Kind: catalog.Decimal},
		Get:        func(g *game) any { return g.Price },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Released", Kind: catalog.Time},
		Get:        func(g *game) any { return g.Released },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Online", Kind: catalog.Bool},
		Get:        func(g *game) any { return g.Online },
	},
	catalog.Column[game]{
		Descriptor: catalog.Descriptor{Name: "Rating", Kind: catalog.Int64, Nullable: true},
		Get: func(g *game) any {
			if g.Rating == nil {
				return nil
			}
			return *g.Rating
		},
	},
)

func fixtures() []game {
	return []game{
		{ID: 1, Title: "Chess", Genre: 1, Price: decimal.RequireFromString("9.99"), Released: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC), Rating: ptr[int64](5)},
		{ID: 2, Title: "Go", Genre: 1, Price: decimal.RequireFromString("4.50"), Released: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), Online: true},
		{ID: 3, Title: "Poker", Genre: 2, Price: decimal.RequireFromString("15"), Released: time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), Online: true, Rating: ptr[int64](3)},
		{ID: 4, Title: "checkers", Genre: 1, Price: decimal.RequireFromString("4.50"), Released: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), Rating: ptr[int64](4)},
	}
}

func build(t *testing.T, column string, op filter.Operator, raw string) filter.Predicate {
	t.Helper()

	col, ok := games.Lookup(column)
	require.True(t, ok, column)

	p, ok := filter.Build(col.Descriptor, op, raw)
	require.True(t, ok, column+" "+string(op)+" "+raw)

	return p
}

func ids(rows []game) []int64 {
	r := make([]int64, 0, len(rows))
	for _, row := range rows {
		r = append(r, row.ID)
	}
	return r
}

func fetchAll(t *testing.T, q *query.Query) []int64 {
	t.Helper()

	if q.Limit == 0 {
		q.Limit = 100
	}

	rows, err := NewSource(games, fixtures()).Fetch(context.Background(), q)
	require.NoError(t, err)

	return ids(rows)
}

func TestMatcher(t *testing.T) {
	cases := []struct {
		name     string
		where    func(t *testing.T) []filter.Predicate
		expected []int64
	}{
		{
			name:     "no conditions",
			where:    func(t *testing.T) []filter.Predicate { return nil },
			expected: []int64{1, 2, 3, 4},
		},
		{
			name: "string equality is case sensitive",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Title", filter.Eq, "chess")}
			},
			expected: []int64{},
		},
		{
			name: "prefix is case sensitive",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Title", filter.StartsWith, "Ch")}
			},
			expected: []int64{1},
		},
		{
			name: "contains and suffix",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{
					build(t, "Title", filter.Contains, "e"),
					build(t, "Title", filter.EndsWith, "s"),
				}
			},
			expected: []int64{1, 4},
		},
		{
			name: "decimal comparison",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Price", filter.Eq, "4.5")}
			},
			expected: []int64{2, 4},
		},
		{
			name: "bool",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Online", filter.Eq, "true")}
			},
			expected: []int64{2, 3},
		},
		{
			name: "null never satisfies comparison",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Rating", filter.Lte, "10")}
			},
			expected: []int64{1, 3, 4},
		},
		{
			name: "null satisfies neq",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Rating", filter.Neq, "5")}
			},
			expected: []int64{2, 3, 4},
		},
		{
			name: "is null",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Rating", filter.Null, "")}
			},
			expected: []int64{2},
		},
		{
			name: "is not null",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Rating", filter.NotNull, "")}
			},
			expected: []int64{1, 3, 4},
		},
		{
			name: "set",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Genre", filter.In, "2|7|x")}
			},
			expected: []int64{3},
		},
		{
			name: "inclusive range",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Price", filter.Between, "4.5~9.99")}
			},
			expected: []int64{1, 2, 4},
		},
		{
			name: "inverted range matches nothing",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Id", filter.Between, "3~1")}
			},
			expected: []int64{},
		},
		{
			name: "date range",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{build(t, "Released", filter.DateRange, "2020-01-10~2021-06-01")}
			},
			expected: []int64{1, 2},
		},
		{
			name: "or within and",
			where: func(t *testing.T) []filter.Predicate {
				return []filter.Predicate{
					filter.Or(
						build(t, "Title", filter.Eq, "Go"),
						build(t, "Title", filter.Eq, "Poker"),
					),
					build(t, "Genre", filter.Eq, "1"),
				}
			},
			expected: []int64{2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, fetchAll(t, &query.Query{Where: tc.where(t)}))
		})
	}
}

func TestOrder(t *testing.T) {
	order := func(column string, desc bool) *query.Order {
		col, ok := games.Lookup(column)
		require.True(t, ok)
		return &query.Order{Column: col.Descriptor, Descending: desc}
	}

	t.Run("ascending is stable", func(t *testing.T) {
		assert.Equal(t, []int64{2, 4, 1, 3}, fetchAll(t, &query.Query{Order: order("Price", false)}))
	})

	t.Run("descending", func(t *testing.T) {
		assert.Equal(t, []int64{3, 2, 1, 4}, fetchAll(t, &query.Query{Order: order("Released", true)}))
	})

	t.Run("nulls first when ascending", func(t *testing.T) {
		assert.Equal(t, []int64{2, 3, 4, 1}, fetchAll(t, &query.Query{Order: order("Rating", false)}))
	})

	t.Run("nulls last when descending", func(t *testing.T) {
		assert.Equal(t, []int64{1, 4, 3, 2}, fetchAll(t, &query.Query{Order: order("Rating", true)}))
	})

	t.Run("ordinal string order", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2, 3, 4}, fetchAll(t, &query.Query{Order: order("Title", false)}))
	})
}

func TestPaging(t *testing.T) {
	src := NewSource(games, fixtures())
	ctx := context.Background()

	cases := []struct {
		offset   int
		limit    int
		expected []int64
	}{
		{0, 2, []int64{1, 2}},
		{2, 2, []int64{3, 4}},
		{3, 10, []int64{4}},
		{4, 2, []int64{}},
		{10, 2, []int64{}},
		{-5, 1, []int64{1}},
		{0, 0, []int64{}},
		{0, -1, []int64{}},
	}

	for _, tc := range cases {
		rows, err := src.Fetch(ctx, &query.Query{Offset: tc.offset, Limit: tc.limit})
		require.NoError(t, err)
		assert.Equal(t, tc.expected, ids(rows), "offset %d limit %d", tc.offset, tc.limit)
	}

	total, err := src.Count(ctx, &query.Query{Offset: 3, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, total, "count ignores paging")
}

func TestCanceledContext(t *testing.T) {
	src := NewSource(games, fixtures())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Count(ctx, &query.Query{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = src.Fetch(ctx, &query.Query{Limit: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnknownColumn(t *testing.T) {
	p, ok := filter.Build(catalog.Descriptor{Name: "Missing", Kind: catalog.String}, filter.Eq, "x")
	require.True(t, ok)

	_, err := Matcher(games, p)
	assert.Error(t, err)
}

package query_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"quarry/packages/core/catalog"
	"quarry/packages/core/filter"
	"quarry/packages/core/query"
	"quarry/packages/infrastructure/memory"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	ID          int64
	Name        string
	Category    int32
	Price       decimal.Decimal
	Quantity    int64
	Description *string
	CreatedOn   time.Time
	Disabled    bool
}

var products = catalog.MustNew(
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Id", Kind: catalog.Int64},
		Get:        func(p *product) any { return p.ID },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Name", Kind: catalog.String},
		Get:        func(p *product) any { return p.Name },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Category", Kind: catalog.Int32},
		Get:        func(p *product) any { return p.Category },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Price", Kind: catalog.Decimal},
		Get:        func(p *product) any { return p.Price },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Quantity", Kind: catalog.Int64},
		Get:        func(p *product) any { return p.Quantity },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Description", Kind: catalog.String, Nullable: true},
		Get: func(p *product) any {
			if p.Description == nil {
				return nil
			}
			return *p.Description
		},
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "CreatedOn", Kind: catalog.Time},
		Get:        func(p *product) any { return p.CreatedOn },
	},
	catalog.Column[product]{
		Descriptor: catalog.Descriptor{Name: "Disabled", Kind: catalog.Bool},
		Get:        func(p *product) any { return p.Disabled },
	},
)

// 25 rows: ids 1..25, every 5th is disabled, category is id%3, quantity is id*10,
// created on consecutive days starting from 2025-11-01.
func fixtures() []product {
	rows := make([]product, 0, 25)
	for i := 1; i <= 25; i++ {
		p := product{
			ID:        int64(i),
			Name:      fmt.Sprintf("Item %02d", i),
			Category:  int32(i % 3),
			Price:     decimal.NewFromInt(int64(i)).Div(decimal.NewFromInt(2)),
			Quantity:  int64(i * 10),
			CreatedOn: time.Date(2025, 11, i, 0, 0, 0, 0, time.UTC),
			Disabled:  i%5 == 0,
		}
		if i%2 == 0 {
			description := "even"
			p.Description = &description
		}
		rows = append(rows, p)
	}
	return rows
}

type idDTO struct {
	ID int64
}

func selectID(p *product) idDTO {
	return idDTO{ID: p.ID}
}

func ids(r *query.PagedResult[idDTO]) []int64 {
	out := make([]int64, 0, len(r.Data))
	for _, dto := range r.Data {
		out = append(out, dto.ID)
	}
	return out
}

func find(t *testing.T, req query.Request) *query.PagedResult[idDTO] {
	t.Helper()

	if req.PageSize == 0 {
		req.PageSize = 100
	}

	r, err := query.Find(context.Background(), memory.NewSource(products, fixtures()), products, req, selectID)
	require.NoError(t, err)

	return r
}

var enabledOnly = []query.DefaultFilter{{Column: "Disabled", Spec: "eq:false"}}

func TestPaging(t *testing.T) {
	cases := []struct {
		pageNo   int
		expected []int64
	}{
		{1, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{3, []int64{21, 22, 23, 24, 25}},
		{4, []int64{}},
		{0, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{-3, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("page %d", tc.pageNo), func(t *testing.T) {
			r := find(t, query.Request{PageNo: tc.pageNo, PageSize: 10, OrderBy: "Id"})

			assert.Equal(t, tc.expected, ids(r))
			assert.Equal(t, 25, r.TotalCount)
			assert.Equal(t, tc.pageNo, r.PageNo, "page number is returned unchanged")
			assert.Equal(t, 10, r.PageSize)
			assert.NotNil(t, r.Data)
		})
	}
}

func TestPagingFarPastTheEnd(t *testing.T) {
	cases := []struct {
		name     string
		pageNo   int
		pageSize int
	}{
		{"huge page number", 1 << 62, 4},
		{"max page number", math.MaxInt, 10},
		{"huge page size", 2, math.MaxInt},
		{"both huge", math.MaxInt, math.MaxInt},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := find(t, query.Request{PageNo: tc.pageNo, PageSize: tc.pageSize, OrderBy: "Id"})

			assert.Empty(t, r.Data)
			assert.NotNil(t, r.Data)
			assert.Equal(t, 25, r.TotalCount)
			assert.Equal(t, tc.pageNo, r.PageNo)
		})
	}
}

func TestEmptyFilterAppliesOnlyDefaults(t *testing.T) {
	r := find(t, query.Request{PageNo: 1, Defaults: enabledOnly})

	assert.Equal(t, 20, r.TotalCount)
	assert.NotContains(t, ids(r), int64(5))
	assert.NotContains(t, ids(r), int64(25))
}

func TestUserFilterOverridesDefault(t *testing.T) {
	t.Run("explicit disabled", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Disabled,eq,true", Defaults: enabledOnly})

		assert.Equal(t, []int64{5, 10, 15, 20, 25}, ids(r))
	})

	t.Run("case of the column doesn't matter", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "DISABLED,eq,true", Defaults: enabledOnly})

		assert.Equal(t, 5, r.TotalCount)
	})

	t.Run("dropped clause still suppresses default", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "disabled,eq,maybe", Defaults: enabledOnly})

		assert.Equal(t, 25, r.TotalCount)
	})

	t.Run("default for other column still applies", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Category,eq,0", Defaults: enabledOnly})

		// 3, 6, 9, 12, 18, 21, 24 (15 is disabled)
		assert.Equal(t, []int64{3, 6, 9, 12, 18, 21, 24}, ids(r))
	})
}

func TestGroups(t *testing.T) {
	t.Run("or within group, and between groups", func(t *testing.T) {
		r := find(t, query.Request{
			PageNo: 1,
			Filter: "Category,eq,1,or,Category,eq,2,and,Quantity,lte,50",
		})

		assert.Equal(t, []int64{1, 2, 4, 5}, ids(r))
	})

	t.Run("unparsable clause in a group is ignored", func(t *testing.T) {
		r := find(t, query.Request{
			PageNo: 1,
			Filter: "Quantity,eq,abc,or,Id,eq,7",
		})

		assert.Equal(t, []int64{7}, ids(r))
	})

	t.Run("group without valid clauses adds no restriction", func(t *testing.T) {
		r := find(t, query.Request{
			PageNo: 1,
			Filter: "Quantity,eq,abc,or,Name,gt,x,and,Id,lte,3",
		})

		// "Name,gt,x" is valid, but nothing is greater then "x"
		assert.Equal(t, 0, r.TotalCount)

		r = find(t, query.Request{
			PageNo: 1,
			Filter: "Quantity,eq,abc,or,Price,contains,1,and,Id,lte,3",
		})

		assert.Equal(t, []int64{1, 2, 3}, ids(r))
	})

	t.Run("malformed clause is ignored", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Name,and,Id,eq,2"})

		assert.Equal(t, []int64{2}, ids(r))
	})

	t.Run("in without valid tokens is omitted", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Id,in,a|b"})

		assert.Equal(t, 25, r.TotalCount)
	})

	t.Run("in", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Id,in,3|x|9"})

		assert.Equal(t, []int64{3, 9}, ids(r))
	})

	t.Run("null", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Description,null,and,Id,lte,4"})

		assert.Equal(t, []int64{1, 3}, ids(r))
	})
}

func TestRanges(t *testing.T) {
	t.Run("between", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Quantity,between,30~60"})

		assert.Equal(t, []int64{3, 4, 5, 6}, ids(r))
	})

	t.Run("between with min above max matches nothing", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Quantity,between,60~30"})

		assert.Equal(t, 0, r.TotalCount)
		assert.Empty(t, r.Data)
	})

	t.Run("date range", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "CreatedOn,daterange,2025-11-03~2025-11-05"})

		assert.Equal(t, []int64{3, 4, 5}, ids(r))
	})

	t.Run("legacy date range", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "createdon,5,2025-11-03~2025-11-05"})

		assert.Equal(t, []int64{3, 4, 5}, ids(r))
	})

	t.Run("date range with start after end matches nothing", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "CreatedOn,5,2025-11-05~2025-11-03"})

		assert.Equal(t, 0, r.TotalCount)
	})

	t.Run("decimal between", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, Filter: "Price,between,1~2"})

		assert.Equal(t, []int64{2, 3, 4}, ids(r))
	})
}

func TestOrderBy(t *testing.T) {
	t.Run("descending", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, PageSize: 3, OrderBy: "Quantity desc"})

		assert.Equal(t, []int64{25, 24, 23}, ids(r))
	})

	t.Run("direction is case insensitive", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, PageSize: 3, OrderBy: "  quantity   DESC "})

		assert.Equal(t, []int64{25, 24, 23}, ids(r))
	})

	t.Run("unknown direction is ascending", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 1, PageSize: 3, OrderBy: "Quantity sideways"})

		assert.Equal(t, []int64{1, 2, 3}, ids(r))
	})

	t.Run("unknown column leaves rows unsorted", func(t *testing.T) {
		r := find(t, query.Request{PageNo: 2, PageSize: 3, OrderBy: "Popularity desc"})

		assert.Equal(t, []int64{4, 5, 6}, ids(r))
	})
}

func TestColumnPolicy(t *testing.T) {
	src := memory.NewSource(products, fixtures())

	cases := []struct {
		name   string
		req    query.Request
		column string
		role   query.Role
	}{
		{
			name:   "filter",
			req:    query.Request{Filter: "Color,eq,red"},
			column: "Color",
			role:   query.FilterRole,
		},
		{
			name:   "default filter",
			req:    query.Request{Defaults: []query.DefaultFilter{{Column: "Archived", Spec: "false"}}},
			column: "Archived",
			role:   query.DefaultFilterRole,
		},
		{
			name:   "order by",
			req:    query.Request{OrderBy: "Popularity desc"},
			column: "Popularity",
			role:   query.OrderByRole,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" strict", func(t *testing.T) {
			req := tc.req
			req.PageNo, req.PageSize, req.Strict = 1, 10, true

			r, err := query.Find(context.Background(), src, products, req, selectID)
			require.Error(t, err)
			assert.Nil(t, r)

			assert.ErrorIs(t, err, query.ErrInvalidColumn)

			var invalid *query.InvalidColumnError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.column, invalid.Column)
			assert.Equal(t, tc.role, invalid.Role)
			assert.Equal(t, products.Names(), invalid.Valid)
			assert.Contains(t, err.Error(), "Valid: Id, Name, Category")
		})

		t.Run(tc.name+" permissive", func(t *testing.T) {
			req := tc.req
			req.PageNo, req.PageSize = 1, 10

			r, err := query.Find(context.Background(), src, products, req, selectID)
			require.NoError(t, err)
			assert.Equal(t, 25, r.TotalCount)
		})
	}

	t.Run("column names are case insensitive", func(t *testing.T) {
		upper := find(t, query.Request{PageNo: 1, Filter: "NAME,eq,Item 07", Strict: true})
		lower := find(t, query.Request{PageNo: 1, Filter: "name,eq,Item 07", Strict: true})

		assert.Equal(t, []int64{7}, ids(upper))
		assert.Equal(t, ids(upper), ids(lower))
	})
}

func TestObserver(t *testing.T) {
	var drops []query.Drop

	req := query.Request{
		PageNo:   1,
		PageSize: 10,
		Filter:   "Name,or,Color,eq,red,or,Quantity,eq,abc,or,Quantity,like,1",
		OrderBy:  "Popularity",
		Defaults: []query.DefaultFilter{
			{Column: "Archived", Spec: "false"},
			{Column: "Disabled", Spec: "eq:maybe"},
		},
		Observer: func(drop query.Drop) { drops = append(drops, drop) },
	}

	_, err := query.Find(context.Background(), memory.NewSource(products, fixtures()), products, req, selectID)
	require.NoError(t, err)

	assert.Equal(t, []query.Drop{
		{Role: query.FilterRole, Reason: filter.MalformedClause, Fragment: "Name"},
		{Role: query.FilterRole, Reason: filter.UnresolvedColumn, Fragment: "Color,eq,red"},
		{Role: query.FilterRole, Reason: filter.UnparsableValue, Fragment: "Quantity,eq,abc"},
		{Role: query.FilterRole, Reason: filter.UnsupportedOperator, Fragment: "Quantity,like,1"},
		{Role: query.DefaultFilterRole, Reason: filter.UnresolvedColumn, Fragment: "Archived:false"},
		{Role: query.DefaultFilterRole, Reason: filter.UnparsableValue, Fragment: "Disabled:eq:maybe"},
		{Role: query.OrderByRole, Reason: filter.UnresolvedColumn, Fragment: "Popularity"},
	}, drops)
}

type ctxKey struct{}

// Records calls and checks that context is passed as is.
type spySource struct {
	t      *testing.T
	inner  query.Source[product]
	calls  []string
	counts []*query.Query
	err    error
	failOn string
}

func (s *spySource) Count(ctx context.Context, q *query.Query) (int, error) {
	assert.Equal(s.t, "marker", ctx.Value(ctxKey{}))
	s.calls = append(s.calls, "count")
	s.counts = append(s.counts, q)
	if s.failOn == "count" {
		return 0, s.err
	}
	return s.inner.Count(ctx, q)
}

func (s *spySource) Fetch(ctx context.Context, q *query.Query) ([]product, error) {
	assert.Equal(s.t, "marker", ctx.Value(ctxKey{}))
	s.calls = append(s.calls, "fetch")
	if s.failOn == "fetch" {
		return nil, s.err
	}
	return s.inner.Fetch(ctx, q)
}

func TestSourceCalls(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	t.Run("exactly two calls", func(t *testing.T) {
		spy := &spySource{t: t, inner: memory.NewSource(products, fixtures())}

		_, err := query.Find(ctx, spy, products, query.Request{
			PageNo:   2,
			PageSize: 5,
			Filter:   "Category,eq,1",
			OrderBy:  "Id desc",
		}, selectID)
		require.NoError(t, err)

		assert.Equal(t, []string{"count", "fetch"}, spy.calls)
		require.Len(t, spy.counts, 1)
		assert.Nil(t, spy.counts[0].Order, "count isn't sorted")
		assert.Zero(t, spy.counts[0].Limit)
		assert.Len(t, spy.counts[0].Where, 1)
	})

	for _, failOn := range []string{"count", "fetch"} {
		t.Run("error on "+failOn+" is returned unchanged", func(t *testing.T) {
			sourceErr := errors.New("connection reset")
			spy := &spySource{t: t, inner: memory.NewSource(products, fixtures()), err: sourceErr, failOn: failOn}

			r, err := query.Find(ctx, spy, products, query.Request{PageNo: 1, PageSize: 5}, selectID)

			assert.Nil(t, r)
			assert.Same(t, sourceErr, err)
		})
	}

	t.Run("strict failure doesn't touch source", func(t *testing.T) {
		spy := &spySource{t: t, inner: memory.NewSource(products, fixtures())}

		_, err := query.Find(ctx, spy, products, query.Request{PageNo: 1, PageSize: 5, OrderBy: "Nope", Strict: true}, selectID)

		assert.ErrorIs(t, err, query.ErrInvalidColumn)
		assert.Empty(t, spy.calls)
	})

	t.Run("cancellation is propagated", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := query.Find(canceled, memory.NewSource(products, fixtures()), products, query.Request{PageNo: 1, PageSize: 5}, selectID)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestProjection(t *testing.T) {
	type nameDTO struct {
		Name string `json:"name"`
	}

	r, err := query.Find(
		context.Background(),
		memory.NewSource(products, fixtures()),
		products,
		query.Request{PageNo: 1, PageSize: 2, Filter: "Id,lte,2"},
		func(p *product) nameDTO { return nameDTO{Name: p.Name} },
	)
	require.NoError(t, err)

	assert.Equal(t, []nameDTO{{"Item 01"}, {"Item 02"}}, r.Data)
	assert.Equal(t, 2, r.TotalCount)
}

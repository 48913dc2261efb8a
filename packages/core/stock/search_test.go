package stock_test

import (
	"context"
	"fmt"
	"quarry/packages/core/query"
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/memory"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items() []stock.Item {
	rows := make([]stock.Item, 0, 40)
	for i := 1; i <= 40; i++ {
		rows = append(rows, stock.Item{
			ID:        int64(i),
			Name:      fmt.Sprintf("Item %02d", i),
			Category:  stock.Category(i%3 + 1),
			Price:     decimal.NewFromInt(int64(i)),
			Quantity:  int64(i),
			CreatedOn: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Disabled:  i%4 == 0,
		})
	}
	return rows
}

func selectID(item *stock.Item) int64 {
	return item.ID
}

// Catalog and source are shared by all goroutines, run with -race.
func TestConcurrentSearch(t *testing.T) {
	shared := stock.Catalog()
	src := memory.NewSource(shared, items())
	defaults := query.DefaultsFromMap(stock.DefaultFilters)

	requests := []query.Request{
		{PageNo: 1, PageSize: 5, Defaults: defaults},
		{PageNo: 2, PageSize: 3, OrderBy: "price desc", Defaults: defaults},
		{PageNo: 1, PageSize: 10, Filter: "category,eq,2,or,NAME,endsWith,7", Defaults: defaults},
		{PageNo: 1, PageSize: 10, Filter: "disabled,eq,true", OrderBy: "Quantity DESC", Defaults: defaults},
		{PageNo: 1, PageSize: 10, Filter: "quantity,between,5~15,and,unknown,eq,1", Defaults: defaults},
	}

	expected := make([]*query.PagedResult[int64], len(requests))
	for i, req := range requests {
		r, err := query.Find(context.Background(), src, shared, req, selectID)
		require.NoError(t, err)
		expected[i] = r
	}

	const workers = 16

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for n := range 50 {
				i := (w + n) % len(requests)
				cat := stock.Catalog()

				r, err := query.Find(context.Background(), src, cat, requests[i], selectID)
				if !assert.NoError(t, err) {
					return
				}
				assert.Same(t, shared, cat)
				assert.Equal(t, expected[i], r, "request %d", i)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, []int64{1, 2, 3, 5, 6}, expected[0].Data)
	assert.Equal(t, 30, expected[0].TotalCount)
	assert.Equal(t, []int64{40, 36, 32, 28, 24, 20, 16, 12, 8, 4}, expected[3].Data)
	assert.Equal(t, 10, expected[3].TotalCount)
}

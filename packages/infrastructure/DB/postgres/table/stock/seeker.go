package stocktable

import (
	"context"
	Error "quarry/packages/common/errors"
	logical "quarry/packages/core/query"
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/DB/postgres/connection"
	"quarry/packages/infrastructure/DB/postgres/executor"
	log "quarry/packages/infrastructure/DB/postgres/logger"
	"strconv"
)

func (m *Manager) StockItems() logical.Source[stock.Item] {
	return m
}

// Counts stock items matching q, order and paging of q are ignored.
func (m *Manager) Count(ctx context.Context, q *logical.Query) (int, error) {
	countQuery, err := table.Count(q)
	if err != nil {
		return 0, err
	}

	return execute(m, func() (int, error) {
		var count int64
		if err := executor.Row(ctx, connection.Replica, countQuery, &count); err != nil {
			return 0, err
		}
		return int(count), nil
	})
}

func (m *Manager) Fetch(ctx context.Context, q *logical.Query) ([]stock.Item, error) {
	if q.Limit <= 0 {
		return []stock.Item{}, nil
	}

	selectQuery, err := table.Select(q)
	if err != nil {
		return nil, err
	}

	return execute(m, func() ([]stock.Item, error) {
		return executor.CollectStockItems(ctx, connection.Replica, selectQuery)
	})
}

func (m *Manager) FindStockItemByID(ctx context.Context, id int64) (*stock.Item, *Error.Status) {
	idStr := strconv.FormatInt(id, 10)

	log.DB.Trace("Getting stock item "+idStr+"...", nil)

	selectQuery, err := table.SelectBy("id", id)
	if err != nil {
		log.DB.Error("Failed to build query for stock item "+idStr, err.Error(), nil)
		return nil, Error.StatusInternalError
	}

	item, err := execute(m, func() (*stock.Item, error) {
		return executor.StockItem(ctx, connection.Replica, selectQuery)
	})
	if err != nil {
		if IsUnavailable(err) {
			log.DB.Error("Failed to get stock item "+idStr, err.Error(), nil)
			return nil, Error.StatusServiceUnavailable
		}
		return nil, selectQuery.ConvertAndLogError(err)
	}

	log.DB.Trace("Getting stock item "+idStr+": OK", nil)

	return item, nil
}

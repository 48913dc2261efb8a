package stock

import (
	"context"
	Error "quarry/packages/common/errors"
	"quarry/packages/core/query"
)

type Repository interface {
	// Data source for search of the stock items
	StockItems() query.Source[Item]

	FindStockItemByID(ctx context.Context, id int64) (*Item, *Error.Status)
}

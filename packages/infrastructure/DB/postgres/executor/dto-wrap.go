package executor

import (
	"context"
	"database/sql"
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/DB/postgres/connection"
	"quarry/packages/infrastructure/DB/postgres/query"
	"strconv"

	"github.com/jackc/pgx/v5"
)

// Columns of "stock_item" table in the order in which they are scanned by scanStockItem.
var StockItemColumns = []string{
	"id",
	"name",
	"category",
	"price",
	"quantity",
	"available_quantity",
	"description",
	"created_on",
	"created_by_id",
	"modified_on",
	"modified_by_id",
	"disabled",
	"enable_disabled",
	"row_version",
}

type scanner interface {
	Scan(dests ...any) error
}

func scanStockItem(row scanner) (stock.Item, error) {
	var item stock.Item

	var description sql.NullString
	var createdBy sql.NullInt64
	var modifiedBy sql.NullInt64

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.Quantity,
		&item.AvailableQuantity,
		&description,
		&item.CreatedOn,
		&createdBy,
		&item.ModifiedOn,
		&modifiedBy,
		&item.Disabled,
		&item.EnableDisabled,
		&item.RowVersion,
	); err != nil {
		return item, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if createdBy.Valid {
		item.CreatedByID = &createdBy.Int64
	}
	if modifiedBy.Valid {
		item.ModifiedByID = &modifiedBy.Int64
	}

	if !item.Category.IsValid() {
		executorLogger.Warning(
			"Stock item "+strconv.FormatInt(item.ID, 10)+" has unknown category: "+item.Category.String(),
			nil,
		)
	}

	return item, nil
}

func CollectStockItems(ctx context.Context, conType connection.Type, q *query.Query) ([]stock.Item, error) {
	return Collect(ctx, conType, q, func(row pgx.CollectableRow) (stock.Item, error) {
		return scanStockItem(row)
	})
}

// Returns pgx.ErrNoRows if there are no items matching q.
func StockItem(ctx context.Context, conType connection.Type, q *query.Query) (*stock.Item, error) {
	items, err := CollectStockItems(ctx, conType, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &items[0], nil
}

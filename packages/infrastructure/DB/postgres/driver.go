package postgres

import (
	"context"
	Error "quarry/packages/common/errors"
	logical "quarry/packages/core/query"
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/DB/postgres/connection"
	"quarry/packages/infrastructure/DB/postgres/executor"
	log "quarry/packages/infrastructure/DB/postgres/logger"
	StockTable "quarry/packages/infrastructure/DB/postgres/table/stock"
)

type postgers struct {
	conManager *connection.Manager
	stock      *StockTable.Manager
}

var driver *postgers

func InitDriver() *postgers {
	driver = &postgers{
		conManager: new(connection.Manager),
	}

	return driver
}

func (p *postgers) Connect() {
	log.DB.Info("Connecting...", nil)

	p.conManager.Connect()
	executor.Init(p.conManager)
	p.stock = StockTable.NewManager()

	log.DB.Info("Connecting: OK", nil)
}

func (p *postgers) Disconnect() error {
	return p.conManager.Disconnect()
}

func (p *postgers) StockItems() logical.Source[stock.Item] {
	return p.stock.StockItems()
}

func (p *postgers) FindStockItemByID(ctx context.Context, id int64) (*stock.Item, *Error.Status) {
	return p.stock.FindStockItemByID(ctx, id)
}

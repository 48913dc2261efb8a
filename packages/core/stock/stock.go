package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID                int64
	Name              string
	Category          Category
	Price             decimal.Decimal
	Quantity          int64
	AvailableQuantity int64
	Description       *string

	CreatedOn      time.Time
	CreatedByID    *int64
	ModifiedOn     time.Time
	ModifiedByID   *int64
	Disabled       bool
	EnableDisabled time.Time
	// Used for optimistic concurrency by writers, not filterable
	RowVersion []byte
}

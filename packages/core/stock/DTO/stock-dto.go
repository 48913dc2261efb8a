package stockdto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Search result item
type Public struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Quantity          int64           `json:"quantity"`
	AvailableQuantity int64           `json:"availableQuantity"`
	Price             decimal.Decimal `json:"price" swaggertype:"number"`
}

type Full struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Category          int32           `json:"category"`
	CategoryName      string          `json:"categoryName"`
	Price             decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity          int64           `json:"quantity"`
	AvailableQuantity int64           `json:"availableQuantity"`
	Description       *string         `json:"description"`
	CreatedOn         time.Time       `json:"createdOn"`
	CreatedByID       *int64          `json:"createdById"`
	ModifiedOn        time.Time       `json:"modifiedOn"`
	ModifiedByID      *int64          `json:"modifiedById"`
	Disabled          bool            `json:"disabled"`
	EnableDisabled    time.Time       `json:"enableDisabled"`
}

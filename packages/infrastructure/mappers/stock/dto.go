package stockmapper

import (
	"quarry/packages/core/stock"
	StockDTO "quarry/packages/core/stock/DTO"
)

func PublicDTOFromItem(item *stock.Item) StockDTO.Public {
	return StockDTO.Public{
		ID:                item.ID,
		Name:              item.Name,
		Quantity:          item.Quantity,
		AvailableQuantity: item.AvailableQuantity,
		Price:             item.Price,
	}
}

func FullDTOFromItem(item *stock.Item) *StockDTO.Full {
	return &StockDTO.Full{
		ID:                item.ID,
		Name:              item.Name,
		Category:          int32(item.Category),
		CategoryName:      item.Category.String(),
		Price:             item.Price,
		Quantity:          item.Quantity,
		AvailableQuantity: item.AvailableQuantity,
		Description:       item.Description,
		CreatedOn:         item.CreatedOn,
		CreatedByID:       item.CreatedByID,
		ModifiedOn:        item.ModifiedOn,
		ModifiedByID:      item.ModifiedByID,
		Disabled:          item.Disabled,
		EnableDisabled:    item.EnableDisabled,
	}
}

package cache

const (
	StockItemSearch = "stock_item_search"
	StockItemByID   = "stock_item_by_id"
)

const stockItemKeyPrefix = "stock_item:"

var KeyBase = map[string]string{
	StockItemSearch: stockItemKeyPrefix + "search:",
	StockItemByID:   stockItemKeyPrefix + "id:",
}

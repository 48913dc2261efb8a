package cache

import Error "quarry/packages/common/errors"

// Deletes all cached search pages and items of the stock.
func InvalidateStockItems() *Error.Status {
	if err := Client.DeletePattern(KeyBase[StockItemSearch] + "*"); err != nil {
		return err
	}
	return Client.DeletePattern(KeyBase[StockItemByID] + "*")
}

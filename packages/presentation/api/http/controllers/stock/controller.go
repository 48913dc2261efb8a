package stockcontroller

import (
	"net/http"
	"quarry/packages/common/config"
	"quarry/packages/common/encoding/json"
	"quarry/packages/core/query"
	"quarry/packages/core/stock"
	StockDTO "quarry/packages/core/stock/DTO"
	"quarry/packages/infrastructure/DB"
	"quarry/packages/infrastructure/cache"
	StockMapper "quarry/packages/infrastructure/mappers/stock"
	"quarry/packages/infrastructure/metrics"
	"quarry/packages/infrastructure/search"
	controller "quarry/packages/presentation/api/http/controllers"
	"quarry/packages/presentation/api/http/request"
	RequestBody "quarry/packages/presentation/data/request"
	"strconv"

	"github.com/labstack/echo/v4"
)

const entity = "stock_item"

var defaultFilters = query.DefaultsFromMap(stock.DefaultFilters)

// @Summary 		Search stock items
// @Description 	Returns page of enabled stock items matching the filter.
// @Description 	Filter is a comma separated list of "column,operator,value" clauses:
// @Description 	clauses joined by "or" form a group, groups joined by "and" must all match.
// @Description 	Operators: eq, neq, gt, lt, gte, lte, contains, startsWith, endsWith, in, between, dateRange, null, notNull.
// @Description 	Column names are case-insensitive. Clause on "Disabled" column replaces default "Disabled = false" condition.
// @ID 				search-stock-items
// @Tags			stock
// @Param 			pageNo query int false "Page number, starting from 1" default(1)
// @Param 			pageSize query int false "Amount of items per page" default(10)
// @Param 			filter query string false "Filter expression" example(name,contains,bolt,or,name,startsWith,nut,and,price,gt,5)
// @Param 			orderBy query string false "Column and optional direction (asc or desc)" example(price desc)
// @Produce			json
// @Success			200 {object} query.PagedResult[StockDTO.Public]
// @Failure			400,429,500,503 {object} responsebody.Error
// @Router			/v1/stock-items [get]
func Search(ctx echo.Context) error {
	reqMeta := request.GetMetadata(ctx)

	var params RequestBody.StockItemSearch

	if err := controller.BindAndValidate(ctx, &params); err != nil {
		return err
	}

	if params.PageNo == 0 {
		params.PageNo = 1
	}
	if params.PageSize == 0 {
		params.PageSize = config.Query.DefaultPageSize
	}

	result, err := search.Run(
		ctx.Request().Context(),
		entity,
		cache.KeyBase[cache.StockItemSearch],
		DB.Database.StockItems(),
		stock.Catalog(),
		query.Request{
			Filter:   params.Filter,
			OrderBy:  params.OrderBy,
			PageNo:   params.PageNo,
			PageSize: params.PageSize,
			Defaults: defaultFilters,
			Strict:   config.Query.StrictColumns,
		},
		StockMapper.PublicDTOFromItem,
		reqMeta,
	)
	if err != nil {
		return controller.ConvertErrorStatusToHTTP(err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// @Summary 		Get stock item
// @Description 	Returns stock item by its id, disabled items included.
// @ID 				get-stock-item
// @Tags			stock
// @Param 			id path int true "Stock item id"
// @Produce			json
// @Success			200 {object} StockDTO.Full
// @Failure			400,404,500,503 {object} responsebody.Error
// @Router			/v1/stock-items/{id} [get]
func GetByID(ctx echo.Context) error {
	reqMeta := request.GetMetadata(ctx)

	var params RequestBody.StockItemID

	if err := controller.BindAndValidate(ctx, &params); err != nil {
		return err
	}

	cacheKey := cache.KeyBase[cache.StockItemByID] + strconv.FormatInt(params.ID, 10)

	if cached, hit := cache.Client.Get(cacheKey); hit {
		if dto, err := json.Unmarshal[*StockDTO.Full]([]byte(cached)); err == nil {
			metrics.CacheTotal.WithLabelValues("hit").Inc()
			return ctx.JSON(http.StatusOK, dto)
		}
		cache.Client.Delete(cacheKey)
	}
	metrics.CacheTotal.WithLabelValues("miss").Inc()

	controller.Logger.Trace("Getting stock item...", reqMeta)

	item, err := DB.Database.FindStockItemByID(ctx.Request().Context(), params.ID)
	if err != nil {
		controller.Logger.Error("Failed to get stock item", err.Error(), reqMeta)
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Trace("Getting stock item: OK", reqMeta)

	dto := StockMapper.FullDTOFromItem(item)

	if encoded, err := json.Marshal(dto); err == nil {
		cache.Client.Set(cacheKey, encoded)
	}

	return ctx.JSON(http.StatusOK, dto)
}

package cachecontroller

import (
	"net/http"
	"quarry/packages/infrastructure/cache"
	controller "quarry/packages/presentation/api/http/controllers"
	"quarry/packages/presentation/api/http/request"

	"github.com/labstack/echo/v4"
)

// @Summary 		Drop cache
// @Description 	Deletes all cached data. Requires "admin" role.
// @ID 				drop-cache
// @Tags			cache
// @Success			200
// @Failure			401,403,429,500 {object} responsebody.Error
// @Router			/v1/cache [delete]
// @Security		BearerAuth
func Drop(ctx echo.Context) error {
	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Info("Dropping cache...", reqMeta)

	if err := cache.Client.FlushAll(); err != nil {
		controller.Logger.Error("Failed to drop cache", err.Error(), reqMeta)
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Dropping cache: OK", reqMeta)

	return ctx.NoContent(http.StatusOK)
}

// @Summary 		Drop stock items cache
// @Description 	Deletes cached search pages and items of the stock. Requires "admin" role.
// @ID 				drop-stock-items-cache
// @Tags			cache
// @Success			200
// @Failure			401,403,429,500 {object} responsebody.Error
// @Router			/v1/cache/stock-items [delete]
// @Security		BearerAuth
func DropStockItems(ctx echo.Context) error {
	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Info("Dropping stock items cache...", reqMeta)

	if err := cache.InvalidateStockItems(); err != nil {
		controller.Logger.Error("Failed to drop stock items cache", err.Error(), reqMeta)
		return controller.ConvertErrorStatusToHTTP(err)
	}

	controller.Logger.Info("Dropping stock items cache: OK", reqMeta)

	return ctx.NoContent(http.StatusOK)
}

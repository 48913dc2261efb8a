package controller

import (
	"quarry/packages/common/logger"
	"quarry/packages/presentation/api/http/request"
	RequestBody "quarry/packages/presentation/data/request"

	"github.com/labstack/echo/v4"
)

var Logger = logger.NewSource("CONTROLLER", logger.Default)

// Binds request into dest and validates it.
func BindAndValidate[T RequestBody.Validator](ctx echo.Context, dest T) error {
	reqMeta := request.GetMetadata(ctx)

	Logger.Trace("Binding and validating request...", reqMeta)

	if err := ctx.Bind(dest); err != nil {
		Logger.Error("Failed to bind request", err.Error(), reqMeta)
		return err
	}

	if err := dest.Validate(); err != nil {
		Logger.Error("Request validation failed", err.Error(), reqMeta)
		return ConvertErrorStatusToHTTP(err)
	}

	Logger.Trace("Binding and validating request: OK", reqMeta)

	return nil
}

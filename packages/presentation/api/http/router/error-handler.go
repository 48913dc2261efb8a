package router

import (
	"fmt"
	"net/http"
	Error "quarry/packages/common/errors"
	controller "quarry/packages/presentation/api/http/controllers"
	"quarry/packages/presentation/api/http/request"
	ResponseBody "quarry/packages/presentation/data/response"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

func handleHttpError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"

	if e, is := err.(*echo.HTTPError); is {
		code = e.Code
		message = fmt.Sprint(e.Message)
	} else if is, e := Error.IsStatusError(err); is {
		code = e.Status()
		message = e.Error()
	}

	status := Error.StatusText(code)

	reqMeta := request.GetMetadataOrNew(ctx)

	if code >= http.StatusInternalServerError {
		controller.Logger.Error(message, status, reqMeta)

		if hub := sentryecho.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
	} else {
		controller.Logger.Debug(status+": "+message, reqMeta)
	}

	var sendErr error
	if ctx.Request().Method == http.MethodHead {
		sendErr = ctx.NoContent(code)
	} else {
		sendErr = ctx.JSON(code, ResponseBody.Error{
			Error:   status,
			Message: message,
		})
	}
	if sendErr != nil {
		controller.Logger.Error("Failed to send error response", sendErr.Error(), reqMeta)
	}
}

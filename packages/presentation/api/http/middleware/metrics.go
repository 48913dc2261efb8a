package middleware

import (
	"net/http"
	Error "quarry/packages/common/errors"
	"quarry/packages/infrastructure/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Status which will be sent by error handler for the given error.
func statusOf(ctx echo.Context, err error) int {
	if err == nil {
		return ctx.Response().Status
	}
	if e, ok := err.(*echo.HTTPError); ok {
		return e.Code
	}
	if is, e := Error.IsStatusError(err); is {
		return e.Status()
	}
	return http.StatusInternalServerError
}

// Records amount and latency of requests.
// Path label is the route template (e.g. /v1/stock-items/:id), not the actual URL.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		err := next(ctx)

		path := ctx.Path()
		if path == "" {
			path = "unmatched"
		}
		method := ctx.Request().Method

		metrics.RequestTotal.WithLabelValues(method, path, strconv.Itoa(statusOf(ctx, err))).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

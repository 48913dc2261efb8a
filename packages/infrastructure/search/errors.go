package search

import (
	"context"
	"errors"
	"net/http"
	Error "quarry/packages/common/errors"
	"quarry/packages/common/logger"
	"quarry/packages/core/query"

	"github.com/sony/gobreaker/v2"
)

// Client closed connection before response was sent (nginx's non-standard code)
var StatusRequestCanceled = Error.NewStatusError(
	"Request canceled",
	499,
)

// Converts error returned by query.Find into *Error.Status.
func ConvertError(err error, meta logger.Meta) *Error.Status {
	if is, e := Error.IsStatusError(err); is {
		return e
	}

	var columnErr *query.InvalidColumnError
	if errors.As(err, &columnErr) {
		return Error.NewStatusError(columnErr.Error(), http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		searchLogger.Error("Search failed", "Operation timeout", meta)
		return Error.StatusTimeout
	case errors.Is(err, context.Canceled):
		searchLogger.Debug("Search canceled", meta)
		return StatusRequestCanceled
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		searchLogger.Error("Search failed", err.Error(), meta)
		return Error.StatusServiceUnavailable
	}

	searchLogger.Error("Search failed", err.Error(), meta)

	return Error.StatusInternalError
}

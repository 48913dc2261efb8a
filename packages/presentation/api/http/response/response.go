package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var FailedToReadRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to read request body",
)

var FailedToDecodeRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to decode request body",
)

var InvalidQueryParams = echo.NewHTTPError(
	http.StatusBadRequest,
	"Invalid query parameters",
)

var InvalidPathParams = echo.NewHTTPError(
	http.StatusBadRequest,
	"Invalid path parameters",
)

var Forbidden = echo.NewHTTPError(
	http.StatusForbidden,
	"You don't have permission to perform this action",
)

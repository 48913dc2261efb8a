package router

import (
	"bytes"
	"io"
	"net/http"
	"quarry/packages/common/encoding/json"
	"quarry/packages/presentation/api/http/response"

	"github.com/labstack/echo/v4"
)

// Binds path params, then query params (for GET, HEAD and DELETE requests),
// then JSON body (if there are one).
type binder struct {
	echo.DefaultBinder
}

func (b *binder) Bind(i any, ctx echo.Context) error {
	if err := b.BindPathParams(ctx, i); err != nil {
		return response.InvalidPathParams
	}

	method := ctx.Request().Method

	if method == http.MethodGet || method == http.MethodHead || method == http.MethodDelete {
		if err := b.BindQueryParams(ctx, i); err != nil {
			return response.InvalidQueryParams
		}
	}

	if ctx.Request().ContentLength == 0 {
		return nil
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return response.FailedToReadRequestBody
	}
	if len(body) == 0 {
		return nil
	}

	if err := json.NewDecoder(bytes.NewReader(body)).Decode(i); err != nil {
		return response.FailedToDecodeRequestBody
	}

	return nil
}

package middleware

import "github.com/labstack/echo/v4"

// Used on admin and metrics routes, their responses must never be reused by proxies.
// Search responses are cached on the server side only.
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Response().Header()

		header.Set("Cache-Control", "no-store, private, max-age=0")
		header.Set("Pragma", "no-cache")
		header.Set("Expires", "0")
		header.Add("Vary", "Authorization")

		return next(ctx)
	}
}

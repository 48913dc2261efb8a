package middleware

import (
	"quarry/packages/common/config"
	"strings"

	"github.com/labstack/echo/v4"
)

var securityHeaders = map[string]string{
	// Block MIME-type sniffing
	"X-Content-Type-Options": "nosniff",
	// Prevent clickjacking via iframes
	"X-Frame-Options": "DENY",
	"Referrer-Policy": "no-referrer",
	"Permissions-Policy": "accelerometer=(), camera=(), geolocation=(), microphone=(), usb=()",
}

// API responses are JSON only, so nothing is allowed to load.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'; form-action 'none'; base-uri 'none'"

// Swagger UI needs inline scripts and styles.
const docsContentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' 'unsafe-eval'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data:; " +
	"connect-src 'self'; " +
	"frame-ancestors 'none'; form-action 'self'; base-uri 'self'"

func SecurityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Response().Header()

		for k, v := range securityHeaders {
			header.Set(k, v)
		}

		// Browsers ignore HSTS received over plain HTTP
		if config.HTTP.Secured {
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		if strings.HasPrefix(ctx.Path(), "/docs") {
			header.Set("Content-Security-Policy", docsContentSecurityPolicy)
		} else {
			header.Set("Content-Security-Policy", apiContentSecurityPolicy)
		}

		return next(ctx)
	}
}

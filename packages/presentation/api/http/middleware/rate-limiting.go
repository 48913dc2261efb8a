package middleware

import (
	"math"
	"net/http"
	"quarry/packages/presentation/api/http/request"
	ResponseBody "quarry/packages/presentation/data/response"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func rateLimiterIdentifierExtractor(ctx echo.Context) (string, error) {
	return ctx.RealIP(), nil
}

func rateLimiterDenyHandler(retryAfter time.Duration) func(ctx echo.Context, id string, err error) error {
	seconds := max(int(math.Ceil(retryAfter.Seconds())), 1)

	return func(ctx echo.Context, id string, err error) error {
		ctx.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

		sensivity := GetSensivity(ctx)

		switch sensivity {
		case InsignificantEndpoint:
			log.Trace("Request blocked by rate limiter", request.GetMetadata(ctx))
		case DefaultEndpoint:
			log.Info("Request blocked by rate limiter", request.GetMetadata(ctx))
		case SensitiveEndpoint:
			log.Warning("Request blocked by rate limiter", request.GetMetadata(ctx))
		default:
			log.Panic(
				"Invalid use of rateLimiterDenyHandler()",
				"Unknown endpoint sensitivity level",
				request.GetMetadata(ctx),
			)
		}

		return ctx.JSON(
			http.StatusTooManyRequests,
			ResponseBody.Message{
				Message: "Too many requests",
			},
		)
	}
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

// Limits amount of requests per second for each client (identified by IP).
// Burst allows to exceed limit for a short period of time.
// If perSecond is 0, then requests aren't limited.
func PerSecond(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return passThrough
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     max(burst, 1),
			ExpiresIn: time.Minute * 3,
		}),
		DenyHandler:         rateLimiterDenyHandler(time.Duration(float64(time.Second) / perSecond)),
		IdentifierExtractor: rateLimiterIdentifierExtractor,
	})
}

// Strict limiter for expensive administrative endpoints.
func Max5reqPerMinute() echo.MiddlewareFunc {
	window := time.Minute

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(window / 5),
			Burst:     3,
			ExpiresIn: window * 2,
		}),
		DenyHandler:         rateLimiterDenyHandler(window / 5),
		IdentifierExtractor: rateLimiterIdentifierExtractor,
	})
}

package router

import (
	"net/http"
	_ "quarry/docs"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	Cache "quarry/packages/presentation/api/http/controllers/cache"
	Docs "quarry/packages/presentation/api/http/controllers/docs"
	Stock "quarry/packages/presentation/api/http/controllers/stock"
	"quarry/packages/presentation/api/http/middleware"
	"quarry/packages/presentation/api/http/request"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.NewSource("ROUTER", logger.Default)

// i could just explicitly pass empty string in routes when i need it
// but it looks really awful and not obvious
const rootPath = ""

const adminRole = "admin"

// Returns false if Sentry is disabled (DSN not set).
func initSentry() bool {
	if config.Secret.SentryDSN == "" {
		log.Info("Sentry DSN isn't set, error reporting disabled", nil)
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.Secret.SentryDSN,
		EnableTracing:    true,
		TracesSampleRate: config.Sentry.TraceSampleRate,
		Debug:            config.Debug.Enabled,
		ServerName:       config.App.ServiceID,
		AttachStacktrace: true,
	}); err != nil {
		log.Fatal("Sentry initialization failed", err.Error(), nil)
	}

	return true
}

func Create() *echo.Echo {
	sentryEnabled := initSentry()

	router := echo.New()

	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = handleHttpError
	router.JSONSerializer = serializer{}
	router.Binder = &binder{}

	cors := echoMiddleware.CORSConfig{
		Skipper:      echoMiddleware.DefaultSkipper,
		AllowOrigins: config.HTTP.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodDelete,
		},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
		},
		ExposeHeaders: []string{
			echo.HeaderXRequestID,
			"Retry-After",
		},
	}

	router.Use(middleware.SecurityHeaders)
	router.Use(echoMiddleware.BodyLimit("1M"))
	if config.HTTP.Secured {
		router.Use(echoMiddleware.HTTPSRedirect())
	}
	router.Use(echoMiddleware.CORSWithConfig(cors))
	router.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	router.Use(request.Middleware)
	router.Use(middleware.CheckOrigin)
	if sentryEnabled {
		router.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}
	router.Use(middleware.Metrics)

	if config.Debug.Enabled {
		router.Use(echoMiddleware.Logger())
	}

	router.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.NoCache)

	apiV1 := router.Group("/v1")

	stockGroup := apiV1.Group("/stock-items", middleware.Sensivity(middleware.DefaultEndpoint))

	stockGroup.GET(rootPath, Stock.Search, middleware.PerSecond(config.HTTP.RateLimit, int(config.HTTP.RateLimit)*2))
	stockGroup.GET("/:id", Stock.GetByID, middleware.PerSecond(config.HTTP.RateLimit, int(config.HTTP.RateLimit)*2))

	cacheGroup := apiV1.Group(
		"/cache",
		middleware.Sensivity(middleware.SensitiveEndpoint),
		middleware.Max5reqPerMinute(),
		middleware.Secure,
		middleware.RequireRole(adminRole),
		middleware.NoCache,
	)

	cacheGroup.DELETE(rootPath, Cache.Drop)
	cacheGroup.DELETE("/stock-items", Cache.DropStockItems)

	docsGroupMiddlewares := []echo.MiddlewareFunc{}
	if !config.Debug.Enabled {
		docsGroupMiddlewares = append(docsGroupMiddlewares, middleware.Secure, middleware.RequireRole(adminRole))
	}

	docsGroup := router.Group("/docs", docsGroupMiddlewares...)

	docsGroup.GET("/*", Docs.Swagger)

	return router
}

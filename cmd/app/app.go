package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"quarry/packages/infrastructure/DB"
	"quarry/packages/infrastructure/cache"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

var appLogger = logger.NewSource("APP", logger.Default)

func Start(Router *echo.Echo) {
	stop := make(chan os.Signal, 1)

	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		var err error

		if config.HTTP.Secured {
			err = Router.StartTLS(":"+config.HTTP.Port, "cert.pem", "key.pem")
		} else {
			err = Router.Start(":" + config.HTTP.Port)
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server stopped unexpectedly", err.Error(), nil)
			stop <- syscall.SIGTERM
			return
		}

		appLogger.Info("HTTP server closed", nil)
	}()

	printAppInfo()

	sig := <-stop

	println()
	appLogger.Info(sig.String()+" signal received, shutting down...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Router.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to stop HTTP server", err.Error(), nil)
	} else {
		appLogger.Info("HTTP server stopped", nil)
	}

	Shutdown()
}

func Shutdown() {
	appLogger.Info("Shutting down...", nil)

	if err := DB.Database.Disconnect(); err != nil {
		appLogger.Error("Failed to disconnect from DB", err.Error(), nil)
	}

	if cache.Client.IsConnected() {
		if err := cache.Client.Close(); err != nil {
			appLogger.Error("Failed to disconnect from cache", err.Error(), nil)
		}
	}

	// Flush buffered Sentry events, no-op if Sentry wasn't initialized
	sentry.Flush(2 * time.Second)

	appLogger.Info("Shutted down", nil)
}

func printAppInfo() {
	fmt.Print(`

   ██████╗ ██╗   ██╗  █████╗  ██████╗  ██████╗  ██╗   ██╗
  ██╔═══██╗██║   ██║ ██╔══██╗ ██╔══██╗ ██╔══██╗ ╚██╗ ██╔╝
  ██║   ██║██║   ██║ ███████║ ██████╔╝ ██████╔╝  ╚████╔╝
  ██║▄▄ ██║██║   ██║ ██╔══██║ ██╔══██╗ ██╔══██╗   ╚██╔╝
  ╚██████╔╝╚██████╔╝ ██║  ██║ ██║  ██║ ██║  ██║    ██║
   ╚══▀▀═╝  ╚═════╝  ╚═╝  ╚═╝ ╚═╝  ╚═╝ ╚═╝  ╚═╝    ╚═╝

`)

	fmt.Println("  Stock catalogue service")

	fmt.Printf("  Listening on port: %s\n\n", config.HTTP.Port)

	if config.Debug.Enabled {
		appLogger.Warning("Debug mode enabled.", nil)
		print("\n\n")
	}
}

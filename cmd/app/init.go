package app

import (
	"os"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"quarry/packages/infrastructure/DB"
	"quarry/packages/infrastructure/cache"
	"quarry/packages/presentation/api/http/router"
	"runtime"

	"github.com/labstack/echo/v4"
)

func StartInit() {
	// All init logs will be shown anyway
	if err := logger.Default.NewForwarding(logger.Stdout); err != nil {
		panic(err.Error())
	}
}

func EndInit() {
	if !config.App.ShowLogs {
		if err := logger.Default.RemoveForwarding(logger.Stdout); err != nil {
			panic(err.Error())
		}
	}
}

func InitDefault(configPath string) {
	// Program wasn't tested on OS other than Linux.
	if runtime.GOOS != "linux" {
		println("[ CRITICAL ERROR ] OS is not supported. This program can be used only on Linux-based OS.")
		os.Exit(1)
	}

	config.Init(configPath)
}

func InitDatabase() {
	appLogger.Info("Initializing database connection...", nil)

	DB.Database.Connect()

	appLogger.Info("Initializing database connection: OK", nil)
}

func InitConnections() {
	appLogger.Info("Initializing connections...", nil)

	cache.Client.Connect()
	DB.Database.Connect()

	appLogger.Info("Initializing connections: OK", nil)
}

func InitRouter() *echo.Echo {
	appLogger.Info("Initializing router...", nil)

	Router := router.Create()

	appLogger.Info("Initializing router: OK", nil)

	return Router
}

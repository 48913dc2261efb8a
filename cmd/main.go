package main

import (
	"quarry/cmd/app"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"time"
)

var mainLogger = logger.NewSource("MAIN", logger.Default)

// @title						Quarry API
// @version					1.0
// @description				Read-only stock catalogue with filtering, sorting and paging.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Access token issued by the identity service: 'Bearer <token>'
func main() {
	app.Args.Parse()

	app.StartInit()

	app.InitDefault(*app.Args.Config)

	if *app.Args.Debug {
		config.Debug.Enabled = true
	}
	if *app.Args.ShowLogs {
		config.App.ShowLogs = true
	}
	if *app.Args.TraceLogs {
		config.App.TraceLogsEnabled = true
	}

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled)

	logger.Default.SetDirectory(config.App.LogDir)

	if err := logger.Default.Start(); err != nil {
		panic(err.Error())
	}
	defer func() {
		if err := logger.Default.Stop(); err != nil {
			println("Failed to stop logger: " + err.Error())
		}
	}()

	// Reserve some time for logger to start up
	time.Sleep(time.Millisecond * 50)

	if *app.Args.MigrateDB != "" {
		app.InitDatabase()

		if err := app.MigrateDB(*app.Args.MigrateDB); err != nil {
			mainLogger.Error("Failed to apply migration", err.Error(), nil)
		}

		app.Shutdown()
		return
	}

	app.InitConnections()

	Router := app.InitRouter()

	app.EndInit()

	app.Start(Router)
}

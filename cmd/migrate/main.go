package main

import (
	"fmt"
	"os"
	"quarry/cmd/app"
	"quarry/packages/common/config"
	"quarry/packages/common/logger"
	"time"

	"github.com/akamensky/argparse"
)

var migrateLogger = logger.NewSource("MIGRATE", logger.Default)

var args = new(migrateArgs)

func main() {
	args.Parse()

	app.StartInit()

	app.InitDefault(*args.Config)

	if *args.Debug {
		config.Debug.Enabled = true
	}
	if *args.TraceLogs {
		config.App.TraceLogsEnabled = true
	}

	logger.Debug.Store(config.Debug.Enabled)
	logger.Trace.Store(config.App.TraceLogsEnabled)

	logger.Default.SetDirectory(config.App.LogDir)

	if err := logger.Default.Start(); err != nil {
		panic(err.Error())
	}

	// Reserve some time for logger to start up
	time.Sleep(time.Millisecond * 50)

	app.InitDatabase()

	code := 0

	if err := app.MigrateDB(*args.Steps); err != nil {
		migrateLogger.Error("Failed to apply migration", err.Error(), nil)
		code = 1
	}

	app.Shutdown()

	if err := logger.Default.Stop(); err != nil {
		println("Failed to stop logger: " + err.Error())
	}

	os.Exit(code)
}

type migrateArgs struct {
	Debug     *bool
	TraceLogs *bool
	Steps     *string
	Config    *string
}

func (a *migrateArgs) Parse() {
	parser := argparse.NewParser("quarry-migrate", "Application for applying database migrations to quarry DB")

	a.Debug = parser.Flag("d", "debug", &argparse.Options{
		Help: "Enable debug mode",
	})
	a.TraceLogs = parser.Flag("t", "trace-logs", &argparse.Options{
		Help: "Enable trace logs",
	})
	a.Steps = parser.String("s", "steps", &argparse.Options{
		Required: true,
		Help: "(Required) Amount of database migration steps. Valid values:\n" +
			"\t\t\t- Up: Migrate forward on 1 version\n" +
			"\t\t\t- Down: Migrate back on 1 version\n" +
			"\t\t\t- N: Number, if N > 0 then will migrate forward on N versions, if N < 0 then will migrate back on N versions",
	})
	a.Config = parser.String("c", "config", &argparse.Options{
		Help: "Path to the YAML config file",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Println(parser.Usage(err))
		os.Exit(1)
	}
}

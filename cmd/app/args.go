package app

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
)

type appArgs struct {
	Debug     *bool
	ShowLogs  *bool
	TraceLogs *bool
	MigrateDB *string
	Config    *string
}

var Args = new(appArgs)

func (a *appArgs) Parse() {
	parser := argparse.NewParser(
		"quarry",
		"Read-only stock catalogue service with filtering, sorting and paging",
	)

	a.Debug = parser.Flag("d", "debug", &argparse.Options{
		Help: "Enable debug mode",
	})
	a.ShowLogs = parser.Flag("l", "show-logs", &argparse.Options{
		Help: "Show logs in terminal",
	})
	a.TraceLogs = parser.Flag("t", "trace-logs", &argparse.Options{
		Help: "Enable trace logs",
	})
	a.MigrateDB = parser.String("M", "migrate-db", &argparse.Options{
		Help: "Apply DB migrations and exit, valid values:\n" +
			"\t\t\tUp - Migrate forward on 1 version\n" +
			"\t\t\tDown - Migrate back on 1 version\n" +
			"\t\t\tN - Number, if N > 0 then will migrate forward on N versions, if N < 0 then will migrate back on N versions",
	})
	a.Config = parser.String("c", "config", &argparse.Options{
		Help:    "Path to the YAML config file",
		Default: "",
	})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Println(parser.Usage(err))
		os.Exit(1)
	}
}

package DB

import (
	"quarry/packages/core/stock"
	"quarry/packages/infrastructure/DB/postgres"
)

type database interface {
	connector
	stock.Repository
}

type connector interface {
	Connect()
	Disconnect() error
}

type migrate interface {
	Up() error
	Down() error
	Steps(n int) error
}

// Implemets all entities "Repository" interfaces
var Database database = postgres.InitDriver()

var Migrate migrate = postgres.Migrate{}

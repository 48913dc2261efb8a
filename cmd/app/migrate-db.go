package app

import (
	"errors"
	"quarry/packages/infrastructure/DB"
	"strconv"
)

// Applies migrations, steps is "Up", "Down" or number of versions
// (negative number migrates back).
func MigrateDB(steps string) error {
	appLogger.Info("Applying migrations ("+steps+")...", nil)

	var err error

	switch steps {
	case "Up", "up":
		err = DB.Migrate.Up()
	case "Down", "down":
		err = DB.Migrate.Down()
	default:
		n, e := strconv.Atoi(steps)
		if e != nil {
			return errors.New("Invalid 'migrate-db' argument value. Expected: number or 'Up' or 'Down'. Got: " + steps)
		}
		err = DB.Migrate.Steps(n)
	}

	if err != nil {
		return err
	}

	appLogger.Info("Applying migrations ("+steps+"): OK", nil)

	return nil
}

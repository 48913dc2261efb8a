package postgres

import (
	"errors"
	"quarry/migrations"
	log "quarry/packages/infrastructure/DB/postgres/logger"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/stdlib"
)

type Migrate struct {
	//
}

func (_ Migrate) init() (*migrate.Migrate, error) {
	log.Migration.Trace("Initializing DB driver for migrations...", nil)

	if driver == nil || driver.conManager.PrimaryConfig == nil {
		return nil, errors.New("DB connection not established")
	}

	db := stdlib.OpenDB(*driver.conManager.PrimaryConfig.ConnConfig)

	dbDriver, err := pgx.WithInstance(db, &pgx.Config{})
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", dbDriver)
	if err != nil {
		return nil, err
	}

	log.Migration.Trace("Initializing DB driver for migrations: OK", nil)

	return m, nil
}

func (m Migrate) step(n int) error {
	version := strconv.FormatInt(int64(n), 10)

	migrator, err := m.init()
	if err != nil {
		log.Migration.Error("Failed to initialize migrations", err.Error(), nil)
		return err
	}
	defer migrator.Close()

	log.Migration.Info("Applying migrations... (version change: "+version+")", nil)

	err = migrator.Steps(n)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Migration.Error("Failed to apply migrations", err.Error(), nil)
		return err
	}

	log.Migration.Info("Migrations applied (version change: "+version+")", nil)

	return nil
}

func (m Migrate) Up() error {
	return m.step(1)
}

func (m Migrate) Down() error {
	return m.step(-1)
}

func (m Migrate) Steps(n int) error {
	return m.step(n)
}

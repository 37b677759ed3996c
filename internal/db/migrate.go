package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"crowdoo/migrations"
)

// Migrate applies all up migrations up to migrations.Version. A database
// left dirty by an interrupted run is reported rather than forced.
func Migrate(addr string) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Rollback reverts every applied migration.
func Rollback(addr string) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newMigrator(addr string) (*migrate.Migrate, func(), error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := sql.Open("postgres", addr)
	if err != nil {
		_ = source.Close()
		return nil, nil, err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = source.Close()
		_ = sqlDB.Close()
		return nil, nil, err
	}

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		_ = sqlDB.Close()
		return nil, nil, err
	}

	return mg, func() {
		_, _ = mg.Close()
		_ = sqlDB.Close()
	}, nil
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"promoted-ads/db/migrations"
)

// MigratePostgres applies the Postgres migrations to the database at addr.
// It uses its own database/sql connection, closed before returning.
func MigratePostgres(addr string, logger *slog.Logger) error {
	sqlDB, err := sql.Open("postgres", addr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("postgres migration driver: %w", err)
	}
	// Closes the connection and sqlDB.
	defer driver.Close()

	return migrateUp(driver, "postgres", migrations.PostgresDir, logger)
}

// migrateUp applies all up migrations found in dir of the embedded FS.
// The migrate instance is not closed since that would close the caller's
// database handle.
func migrateUp(driver database.Driver, name, dir string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return err
	}

	mg, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		_ = src.Close()
		return err
	}
	defer src.Close()
	if logger != nil {
		mg.Log = migrateLogger{logger: logger.With(slog.String("database", name))}
	}

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

// migrateLogger adapts slog to migrate.Logger.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}

package db

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"promoted-ads/db/migrations"
	"promoted-ads/internal/config/configs"
)

// OpenSQLite opens the database file at cfg.Path, enabling foreign keys and
// WAL, and applies the embedded SQLite migrations.
func OpenSQLite(cfg configs.SQLite, logger *slog.Logger) (*sqlx.DB, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	dsn := filepath.Clean(path) + "?" + q.Encode()

	sqlDB, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	driver, err := sqlite.WithInstance(sqlDB.DB, &sqlite.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite migration driver: %w", err)
	}
	if err = migrateUp(driver, "sqlite", migrations.SQLiteDir, logger); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

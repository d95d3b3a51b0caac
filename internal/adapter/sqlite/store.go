// Package sqlite provides embedded SQLite implementations of the campaign
// and product repositories.
package sqlite

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"

	"promoted-ads/internal/config/configs"
	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/db"
)

// Open opens the database described by cfg and applies migrations. The
// returned handle is shared by the repositories of this package.
func Open(cfg configs.SQLite, logger *slog.Logger) (*sqlx.DB, error) {
	return db.OpenSQLite(cfg, logger)
}

var earliest = time.Unix(0, math.MinInt64)

// toNanos encodes t as unix nanoseconds. Instants outside the int64 range
// are rejected instead of wrapping around.
func toNanos(t time.Time) (int64, error) {
	if t.Before(earliest) || t.After(domain.LatestStartDate) {
		return 0, &domain.Error{
			Kind: domain.ErrInvalidInput,
			Msg:  fmt.Sprintf("time %s is out of the supported range", t.UTC().Format(time.RFC3339)),
		}
	}
	return t.UnixNano(), nil
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

// isConstraint reports whether err is a SQLite error with one of codes.
func isConstraint(err error, codes ...int) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return slices.Contains(codes, sqliteErr.Code())
}

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoted-ads/internal/config/configs"
)

func TestOpenSQLiteAppliesMigrations(t *testing.T) {
	cfg := configs.SQLite{Path: filepath.Join(t.TempDir(), "ads.db"), BusyTimeout: time.Second}

	sqlDB, err := OpenSQLite(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var tables []string
	require.NoError(t, sqlDB.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('products', 'campaigns', 'campaign_products') ORDER BY name`))
	assert.Equal(t, []string{"campaign_products", "campaigns", "products"}, tables)

	var fk int
	require.NoError(t, sqlDB.Get(&fk, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, fk)
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	cfg := configs.SQLite{Path: filepath.Join(t.TempDir(), "ads.db"), BusyTimeout: time.Second}

	first, err := OpenSQLite(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenSQLite(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite(configs.SQLite{Path: " "}, nil)
	require.Error(t, err)
}

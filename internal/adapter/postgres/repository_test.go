package postgres

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoted-ads/internal/config/configs"
	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/db"
)

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation})
	assert.True(t, hasCode(err, uniqueViolation))
	assert.False(t, hasCode(err, foreignKeyViolation))
	assert.False(t, hasCode(nil, uniqueViolation))
}

// openTestPool connects to the database named by PSQL_TEST_ADDRESS and
// resets the schema. Tests are skipped when it is unset.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.MigratePostgres(addr, nil))
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE campaign_products, campaigns, products RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	products := NewProductRepository(pool)
	campaigns := NewCampaignRepository(pool)
	ref := time.Now().UTC().Truncate(time.Microsecond)

	book, err := products.Create(ctx, domain.Product{
		Title: "Novel", Price: decimal.RequireFromString("19.99"),
		Category: domain.CategoryBooks, SerialNumber: "BOOK-1",
	})
	require.NoError(t, err)
	shirt, err := products.Create(ctx, domain.Product{
		Title: "Shirt", Price: decimal.RequireFromString("25"),
		Category: domain.CategoryFashion, SerialNumber: "SHIRT-1",
	})
	require.NoError(t, err)

	_, err = products.Create(ctx, domain.Product{
		Title: "Copy", Price: decimal.NewFromInt(1),
		Category: domain.CategoryBooks, SerialNumber: "BOOK-1",
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	mk := func(name, bid string, start time.Time, ps ...domain.Product) domain.Campaign {
		c, err := campaigns.Create(ctx, domain.Campaign{
			Name: name, StartDate: start, Bid: decimal.RequireFromString(bid), Products: ps,
		})
		require.NoError(t, err)
		return c
	}
	mk("expired", "50", ref.Add(-domain.ActiveWindow), book)
	low := mk("low", "1.5", ref.Add(-time.Hour), book, shirt)
	high := mk("high", "10.25", ref.Add(-2*time.Hour), shirt)

	got, err := campaigns.FindActiveRankedByBid(ctx, domain.NewActivityQuery(ref, domain.CategoryBooks, 5))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, low.ID, got[0].ID)
	assert.Equal(t, []int64{book.ID, shirt.ID}, got[0].ProductIDs())

	got, err = campaigns.FindActiveRankedByBid(ctx, domain.NewActivityQuery(ref, "", 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID, got[0].ID)
	assert.True(t, got[0].Bid.Equal(decimal.RequireFromString("10.25")))

	_, err = campaigns.Create(ctx, domain.Campaign{
		Name: "ghost", StartDate: ref, Bid: decimal.NewFromInt(1),
		Products: []domain.Product{{ID: 424242}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	list, err := campaigns.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = products.Get(ctx, 424242)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

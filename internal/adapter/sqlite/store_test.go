package sqlite

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoted-ads/internal/config/configs"
	"promoted-ads/internal/core/domain"
)

var ref = time.Date(2026, time.May, 1, 15, 4, 5, 123456789, time.UTC)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	sqlDB, err := Open(configs.SQLite{
		Path:        filepath.Join(t.TempDir(), "ads.db"),
		BusyTimeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

type fixture struct {
	campaigns *CampaignRepository
	products  *ProductRepository
	serial    int
}

func newFixture(t *testing.T) *fixture {
	sqlDB := openTestDB(t)
	return &fixture{
		campaigns: NewCampaignRepository(sqlDB),
		products:  NewProductRepository(sqlDB),
	}
}

func (f *fixture) product(t *testing.T, category domain.Category, price string) domain.Product {
	t.Helper()
	f.serial++
	p, err := f.products.Create(context.Background(), domain.Product{
		Title:        "Product " + price,
		Price:        decimal.RequireFromString(price),
		Category:     category,
		SerialNumber: "SN-" + strconv.Itoa(f.serial),
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) campaign(t *testing.T, name string, start time.Time, bid string, products ...domain.Product) domain.Campaign {
	t.Helper()
	c, err := f.campaigns.Create(context.Background(), domain.Campaign{
		Name:      name,
		StartDate: start,
		Bid:       decimal.RequireFromString(bid),
		Products:  products,
	})
	require.NoError(t, err)
	return c
}

func names(campaigns []domain.Campaign) []string {
	out := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.Name)
	}
	return out
}

func TestFindActiveWindowBoundaries(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, domain.CategoryBooks, "10")

	f.campaign(t, "starts now", ref, "1", p)
	f.campaign(t, "one day old", ref.AddDate(0, 0, -1), "2", p)
	f.campaign(t, "almost expired", ref.Add(-domain.ActiveWindow+time.Nanosecond), "3", p)
	f.campaign(t, "exactly ten days", ref.Add(-domain.ActiveWindow), "4", p)
	f.campaign(t, "eleven days", ref.AddDate(0, 0, -11), "5", p)
	f.campaign(t, "future", ref.Add(time.Nanosecond), "6", p)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, "", 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"almost expired", "one day old", "starts now"}, names(got))
}

func TestCreateRejectsStartBeyondNanosecondRange(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, domain.CategoryBooks, "10")

	// 2^64 ns after an hour before ref. Truncated to int64 nanoseconds it
	// would land back inside the window.
	wrapped := ref.Add(-time.Hour).Add(time.Duration(math.MaxInt64)).Add(time.Duration(math.MaxInt64)).Add(2 * time.Nanosecond)
	_, err := f.campaigns.Create(context.Background(), domain.Campaign{
		Name:      "far future",
		StartDate: wrapped,
		Bid:       decimal.NewFromInt(1),
		Products:  []domain.Product{p},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, "", 10))
	require.NoError(t, err)
	assert.Empty(t, got)

	list, err := f.campaigns.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	latest := f.campaign(t, "latest", domain.LatestStartDate, "1", p)
	list, err = f.campaigns.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, latest.StartDate.Equal(list[0].StartDate))
}

func TestFindActiveByCategory(t *testing.T) {
	f := newFixture(t)
	book := f.product(t, domain.CategoryBooks, "10")
	shirt := f.product(t, domain.CategoryFashion, "20")
	lamp := f.product(t, domain.CategoryOffice, "30")

	f.campaign(t, "books only", ref.Add(-time.Hour), "1", book)
	f.campaign(t, "mixed", ref.Add(-time.Hour), "2", shirt, book)
	f.campaign(t, "office", ref.Add(-time.Hour), "9", lamp)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, domain.CategoryBooks, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"mixed", "books only"}, names(got))

	got, err = f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, domain.CategoryPets, 10))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, "", 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"office", "mixed", "books only"}, names(got))
}

func TestFindActiveOrdersByExactBid(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, domain.CategoryPets, "1")

	// Lexical order of the stored text differs from numeric order.
	f.campaign(t, "nine", ref.Add(-time.Hour), "9.99", p)
	f.campaign(t, "ten and a half", ref.Add(-2*time.Hour), "10.5", p)
	f.campaign(t, "ten and a quarter", ref.Add(-3*time.Hour), "10.25", p)
	f.campaign(t, "tie later", ref.Add(-4*time.Hour), "10.50", p)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, domain.CategoryPets, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"ten and a half", "tie later", "ten and a quarter", "nine"}, names(got))

	top, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, domain.CategoryPets, 1))
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "ten and a half", top[0].Name)
}

func TestFindActiveOverlappingWindows(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, domain.CategoryTravel, "100")

	early := f.campaign(t, "early", ref.AddDate(0, 0, -9), "5", p)
	late := f.campaign(t, "late", ref.AddDate(0, 0, -1), "3", p)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, "", 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, early.ID, got[0].ID)

	// Two days later only the late campaign is still running.
	got, err = f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref.AddDate(0, 0, 2), "", 1))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, late.ID, got[0].ID)
}

func TestFindActiveLoadsProducts(t *testing.T) {
	f := newFixture(t)
	a := f.product(t, domain.CategoryBooks, "101")
	b := f.product(t, domain.CategoryFashion, "250.10")
	c := f.product(t, domain.CategoryBooks, "199.99")

	f.campaign(t, "c1", ref.Add(-time.Minute), "1", c, a, b)

	got, err := f.campaigns.FindActiveRankedByBid(context.Background(), domain.NewActivityQuery(ref, domain.CategoryFashion, 1))
	require.NoError(t, err)
	require.Len(t, got, 1)

	products := got[0].Products
	require.Len(t, products, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, got[0].ProductIDs())
	assert.Equal(t, "250.1", products[1].Price.String())
	assert.Equal(t, domain.CategoryFashion, products[1].Category)
	assert.True(t, got[0].StartDate.Equal(ref.Add(-time.Minute)))
}

func TestCreateCampaignUnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.campaigns.Create(context.Background(), domain.Campaign{
		Name:      "ghost",
		StartDate: ref,
		Bid:       decimal.NewFromInt(1),
		Products:  []domain.Product{{ID: 404}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.campaigns.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, domain.CategoryHealth, "5")
	q := f.product(t, domain.CategoryHealth, "6")

	first := f.campaign(t, "first", ref, "1", p)
	second := f.campaign(t, "second", ref.AddDate(0, 0, -30), "2", p, q)

	list, err := f.campaigns.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, []int64{p.ID, q.ID}, list[1].ProductIDs())
	assert.Equal(t, "2", list[1].Bid.String())}

func TestProductRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.product(t, domain.CategoryBeauty, "12.50")
	b := f.product(t, domain.CategorySports, "99")

	got, err := f.products.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, domain.CategoryBeauty, got.Category)

	_, err = f.products.Get(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)

	found, err := f.products.FindByIDs(ctx, []int64{b.ID, 9999, a.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, b.ID, found[1].ID)

	empty, err := f.products.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCreateProductDuplicateSerial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := domain.Product{
		Title:        "Mug",
		Price:        decimal.NewFromInt(3),
		Category:     domain.CategoryHomeGoods,
		SerialNumber: "MUG-1",
	}

	_, err := f.products.Create(ctx, p)
	require.NoError(t, err)

	_, err = f.products.Create(ctx, p)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "MUG-1")
}

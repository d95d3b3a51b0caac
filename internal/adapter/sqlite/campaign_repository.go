package sqlite

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	sqlite3lib "modernc.org/sqlite/lib"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository on SQLite.
type CampaignRepository struct {
	db *sqlx.DB
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

func NewCampaignRepository(db *sqlx.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// FindActiveRankedByBid narrows candidates to the window in SQL, then
// applies q.Includes to the loaded campaigns. Bids are stored as decimal
// text, so ranking happens here on exact values.
func (r *CampaignRepository) FindActiveRankedByBid(ctx context.Context, q domain.ActivityQuery) ([]domain.Campaign, error) {
	to, err := toNanos(q.ReferenceTime)
	if err != nil {
		return nil, err
	}
	from, err := toNanos(q.WindowStart)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var rows []campaignRow
	err = tx.SelectContext(ctx, &rows, `
		SELECT id, name, start_date, bid
		FROM campaigns
		WHERE start_date <= ? AND start_date > ?`, to, from)
	if err != nil {
		return nil, fmt.Errorf("select active campaigns: %w", err)
	}

	campaigns, err := loadCampaigns(ctx, tx, rows)
	if err != nil {
		return nil, err
	}
	campaigns = slices.DeleteFunc(campaigns, func(c domain.Campaign) bool {
		return !q.Includes(c)
	})
	slices.SortFunc(campaigns, func(a, b domain.Campaign) int {
		if c := b.Bid.Cmp(a.Bid); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if q.Limit > 0 && len(campaigns) > q.Limit {
		campaigns = campaigns[:q.Limit]
	}
	return campaigns, nil
}

// Create inserts the campaign and its product links in one transaction.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	start, err := toNanos(c.StartDate)
	if err != nil {
		return domain.Campaign{}, err
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO campaigns (name, start_date, bid) VALUES (?, ?, ?)`,
		c.Name, start, c.Bid)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("insert campaign: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign id: %w", err)
	}

	for _, p := range c.Products {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO campaign_products (campaign_id, product_id) VALUES (?, ?)`, c.ID, p.ID)
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return domain.Campaign{}, &domain.Error{
				Kind: domain.ErrNotFound,
				Msg:  fmt.Sprintf("Products not found for IDs: [%d]", p.ID),
			}
		}
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("link product %d: %w", p.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Campaign{}, fmt.Errorf("commit: %w", err)
	}
	c.StartDate = c.StartDate.UTC()
	return c, nil
}

// List returns every campaign ordered by id.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var rows []campaignRow
	if err = tx.SelectContext(ctx, &rows,
		`SELECT id, name, start_date, bid FROM campaigns ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select campaigns: %w", err)
	}
	return loadCampaigns(ctx, tx, rows)
}

// loadCampaigns attaches products to rows, keeping the order of rows.
// Products of a campaign are ordered by id.
func loadCampaigns(ctx context.Context, tx *sqlx.Tx, rows []campaignRow) ([]domain.Campaign, error) {
	if len(rows) == 0 {
		return []domain.Campaign{}, nil
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(`
		SELECT cp.campaign_id, p.id, p.title, p.price, p.category, p.serial_number
		FROM campaign_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.campaign_id IN (?)
		ORDER BY cp.campaign_id, p.id`, ids)
	if err != nil {
		return nil, err
	}
	var links []campaignProductRow
	if err = tx.SelectContext(ctx, &links, tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select campaign products: %w", err)
	}

	byCampaign := make(map[int64][]domain.Product, len(rows))
	for _, l := range links {
		byCampaign[l.CampaignID] = append(byCampaign[l.CampaignID], l.toDomain())
	}

	out := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(byCampaign[row.ID]))
	}
	return out, nil
}

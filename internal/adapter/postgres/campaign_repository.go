package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// FindActiveRankedByBid runs the activity query and loads the products of
// the returned campaigns in one read-only snapshot.
func (r *CampaignRepository) FindActiveRankedByBid(ctx context.Context, q domain.ActivityQuery) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := pgx.BeginTxFunc(ctx, r.pool, readSnapshot, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT c.id, c.name, c.start_date, c.bid
			FROM campaigns c
			WHERE c.start_date <= $1 AND c.start_date > $2
			  AND ($3::text = '' OR EXISTS (
			        SELECT 1
			        FROM campaign_products cp
			        JOIN products p ON p.id = cp.product_id
			        WHERE cp.campaign_id = c.id AND p.category = $3))
			ORDER BY c.bid DESC, c.id ASC
			LIMIT $4`,
			q.ReferenceTime, q.WindowStart, string(q.Category), q.Limit)
		if err != nil {
			return err
		}
		if campaigns, err = pgx.CollectRows(rows, scanCampaign); err != nil {
			return err
		}
		return loadProducts(ctx, tx, campaigns)
	})
	if err != nil {
		return nil, fmt.Errorf("find active campaigns: %w", err)
	}
	return campaigns, nil
}

// Create inserts the campaign and its product links in one serializable
// transaction.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (_ domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO campaigns (name, start_date, bid) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.StartDate, c.Bid.String()).Scan(&c.ID)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("insert campaign: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO campaign_products (campaign_id, product_id) SELECT $1, unnest($2::bigint[])`,
		c.ID, c.ProductIDs())
	if hasCode(err, foreignKeyViolation) {
		return domain.Campaign{}, &domain.Error{
			Kind: domain.ErrNotFound,
			Msg:  fmt.Sprintf("Products not found for IDs: %v", c.ProductIDs()),
		}
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("link products: %w", err)
	}
	return c, nil
}

// List returns every campaign ordered by id.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := pgx.BeginTxFunc(ctx, r.pool, readSnapshot, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT id, name, start_date, bid FROM campaigns ORDER BY id`)
		if err != nil {
			return err
		}
		if campaigns, err = pgx.CollectRows(rows, scanCampaign); err != nil {
			return err
		}
		return loadProducts(ctx, tx, campaigns)
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

var readSnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// loadProducts fills Products of every campaign, ordered by product id.
func loadProducts(ctx context.Context, tx pgx.Tx, campaigns []domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(campaigns))
	index := make(map[int64]int, len(campaigns))
	for i, c := range campaigns {
		ids = append(ids, c.ID)
		index[c.ID] = i
		campaigns[i].Products = []domain.Product{}
	}

	rows, err := tx.Query(ctx, `
		SELECT cp.campaign_id, p.id, p.title, p.price, p.category, p.serial_number
		FROM campaign_products cp
		JOIN products p ON p.id = cp.product_id
		WHERE cp.campaign_id = ANY($1)
		ORDER BY cp.campaign_id, p.id`, ids)
	if err != nil {
		return err
	}
	type link struct {
		campaignID int64
		product    domain.Product
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (link, error) {
		var (
			l        link
			category string
		)
		err := row.Scan(&l.campaignID, &l.product.ID, &l.product.Title, &l.product.Price,
			&category, &l.product.SerialNumber)
		l.product.Category = domain.Category(category)
		return l, err
	})
	if err != nil {
		return err
	}
	for _, l := range links {
		i := index[l.campaignID]
		campaigns[i].Products = append(campaigns[i].Products, l.product)
	}
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.Bid)
	c.StartDate = c.StartDate.UTC()
	return c, err
}

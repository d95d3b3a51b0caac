package port

import (
	"context"

	"promoted-ads/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence.
// Implementations must be safe for concurrent use and give each call a
// consistent read of the data.
type CampaignRepository interface {
	// FindActiveRankedByBid returns campaigns matching q, highest bid first,
	// each with its products loaded. An empty slice means no match.
	FindActiveRankedByBid(ctx context.Context, q domain.ActivityQuery) ([]domain.Campaign, error)
	// Create stores the campaign and its product links and returns it with
	// the assigned id. Referenced products must already exist.
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// List returns every campaign with products, ordered by id.
	List(ctx context.Context) ([]domain.Campaign, error)
}

// ProductRepository is the outbound port for product persistence.
type ProductRepository interface {
	// FindByIDs returns the products that exist among ids, in ascending id
	// order. Unknown ids are silently skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	// Get returns a single product or an error wrapping domain.ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Product, error)
	// Create stores p and returns it with the assigned id. A duplicate
	// serial number yields an error wrapping domain.ErrConflict.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// CampaignResolver finds the single best active campaign for a category.
// It prefers campaigns owning a product of the category and falls back to
// any active campaign when there is none.
type CampaignResolver struct {
	repo port.CampaignRepository
}

// NewCampaignResolver creates a resolver reading from repo.
func NewCampaignResolver(repo port.CampaignRepository) *CampaignResolver {
	return &CampaignResolver{repo: repo}
}

// Resolve returns the highest-bid campaign active at ref. Both lookups use
// the same ref so that window membership cannot change between them.
// Repository errors are returned as they are, without retrying.
func (r *CampaignResolver) Resolve(ctx context.Context, category domain.Category, ref time.Time) (domain.Campaign, error) {
	ctx, span := tracer.Start(ctx, "CampaignResolver.Resolve", trace.WithAttributes(
		attribute.String("category", category.String()),
	))
	defer span.End()

	q := domain.NewActivityQuery(ref, category, 1)
	c, ok, err := r.first(ctx, q)
	if err != nil {
		return domain.Campaign{}, err
	}
	if ok {
		return c, nil
	}
	if category == "" {
		return domain.Campaign{}, domain.ErrNoActiveCampaigns
	}

	span.AddEvent("no campaign in category, retrying without category")
	c, ok, err = r.first(ctx, q.WithoutCategory())
	if err != nil {
		return domain.Campaign{}, err
	}
	if !ok {
		return domain.Campaign{}, domain.ErrNoActiveCampaigns
	}
	return c, nil
}

func (r *CampaignResolver) first(ctx context.Context, q domain.ActivityQuery) (domain.Campaign, bool, error) {
	campaigns, err := r.repo.FindActiveRankedByBid(ctx, q)
	if err != nil {
		return domain.Campaign{}, false, fmt.Errorf("find active campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return domain.Campaign{}, false, nil
	}
	return campaigns[0], true, nil
}

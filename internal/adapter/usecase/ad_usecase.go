package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// AdUseCase picks the product to promote for a category. It keeps no state
// between calls and is safe for concurrent use.
type AdUseCase struct {
	resolver *CampaignResolver

	// now supplies the reference time of each request.
	now func() time.Time
}

// NewAdUseCase creates a usecase that resolves campaigns from repo.
func NewAdUseCase(repo port.CampaignRepository) *AdUseCase {
	return &AdUseCase{resolver: NewCampaignResolver(repo), now: time.Now}
}

// ServeAd resolves the winning campaign for category at the current time
// and returns its most expensive product of that category. The product is
// filtered by the requested category even when the campaign was found
// through the fallback, so a fallback campaign without such a product
// yields ErrNoProductFound.
func (u *AdUseCase) ServeAd(ctx context.Context, category domain.Category) (*port.AdResponse, error) {
	ctx, span := tracer.Start(ctx, "AdUseCase.ServeAd")
	defer span.End()

	if !category.Valid() {
		return nil, &domain.Error{Kind: domain.ErrInvalidInput, Msg: "category is required"}
	}

	campaign, err := u.resolver.Resolve(ctx, category, u.now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("campaign.id", campaign.ID))

	product, err := SelectHighestPriced(campaign.Products, category)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("product.id", product.ID))

	resp := port.NewProductResponse(product)
	return &resp, nil
}

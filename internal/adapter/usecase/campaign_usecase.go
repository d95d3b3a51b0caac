package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"promoted-ads/internal/core/domain"
	"promoted-ads/internal/core/port"
)

// CampaignUseCase validates and stores campaigns.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	products  port.ProductRepository
	now       func() time.Time
}

// NewCampaignUseCase creates a usecase over the given repositories.
func NewCampaignUseCase(campaigns port.CampaignRepository, products port.ProductRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, products: products, now: time.Now}
}

// CreateCampaign validates req, resolves its products and stores the
// campaign. Field failures are reported together; unknown product ids are
// reported as not found.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignResponse, error) {
	ctx, span := tracer.Start(ctx, "CampaignUseCase.CreateCampaign")
	defer span.End()

	c := domain.Campaign{
		Name:      strings.TrimSpace(req.Name),
		StartDate: req.StartDate.UTC(),
		Bid:       req.Bid,
	}
	if err := c.ValidateNew(u.now()); err != nil {
		return nil, err
	}

	products, err := u.fetchAndValidateProducts(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	c.Products = products

	created, err := u.campaigns.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	resp := port.NewCampaignResponse(created)
	return &resp, nil
}

// ListCampaigns returns every stored campaign.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignResponse, error) {
	campaigns, err := u.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]port.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, port.NewCampaignResponse(c))
	}
	return out, nil
}

// fetchAndValidateProducts loads the products behind ids, failing when the
// list is empty or any id is unknown.
func (u *CampaignUseCase) fetchAndValidateProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, domain.ErrEmptyProductIDs
	}
	unique := slices.Clone(ids)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	products, err := u.products.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(products) == len(unique) {
		return products, nil
	}

	found := make(map[int64]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return nil, &domain.Error{
		Kind: domain.ErrNotFound,
		Msg:  fmt.Sprintf("Products not found for IDs: %v", missing),
	}
}

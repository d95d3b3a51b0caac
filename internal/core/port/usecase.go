package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"promoted-ads/internal/core/domain"
)

// AdUseCase defines the ad serving operation exposed to transports.
type AdUseCase interface {
	// ServeAd returns the promoted product for category. It fails with
	// domain.ErrInvalidInput for an unknown category and domain.ErrNotFound
	// when nothing can be served.
	ServeAd(ctx context.Context, category domain.Category) (*AdResponse, error)
}

// CampaignUseCase manages campaigns.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignResponse, error)
	ListCampaigns(ctx context.Context) ([]CampaignResponse, error)
}

// ProductUseCase manages products.
type ProductUseCase interface {
	CreateProduct(ctx context.Context, req CreateProductReq) (*ProductResponse, error)
	GetProduct(ctx context.Context, id int64) (*ProductResponse, error)
}

// AdResponse is the product chosen for an ad request. It is a DTO and
// carries only the product's public fields.
type AdResponse = ProductResponse

// ProductResponse represents a product returned to clients.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Category     domain.Category `json:"category"`
	SerialNumber string          `json:"serialNumber"`
}

// NewProductResponse maps a domain product to its public representation.
func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Price:        p.Price,
		Category:     p.Category,
		SerialNumber: p.SerialNumber,
	}
}

// Product maps the response back to a domain product.
func (r ProductResponse) Product() domain.Product {
	return domain.Product{
		ID:           r.ID,
		Title:        r.Title,
		Price:        r.Price,
		Category:     r.Category,
		SerialNumber: r.SerialNumber,
	}
}

// CreateProductReq holds the fields of a new product.
type CreateProductReq struct {
	Title        string
	Price        decimal.Decimal
	Category     domain.Category
	SerialNumber string
}

// CreateCampaignReq holds the fields of a new campaign. Products are given
// by id and must exist.
type CreateCampaignReq struct {
	Name       string
	StartDate  time.Time
	Bid        decimal.Decimal
	ProductIDs []int64
}

// CampaignResponse represents a campaign returned to clients.
type CampaignResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	StartDate  time.Time       `json:"startDate"`
	Bid        decimal.Decimal `json:"bid"`
	ProductIDs []int64         `json:"productIds"`
}

// NewCampaignResponse maps a domain campaign to its public representation.
func NewCampaignResponse(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:         c.ID,
		Name:       c.Name,
		StartDate:  c.StartDate,
		Bid:        c.Bid,
		ProductIDs: c.ProductIDs(),
	}
}

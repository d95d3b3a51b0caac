package sqlite

import (
	"github.com/shopspring/decimal"

	"promoted-ads/internal/core/domain"
)

type productRow struct {
	ID           int64           `db:"id"`
	Title        string          `db:"title"`
	Price        decimal.Decimal `db:"price"`
	Category     string          `db:"category"`
	SerialNumber string          `db:"serial_number"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:           r.ID,
		Title:        r.Title,
		Price:        r.Price,
		Category:     domain.Category(r.Category),
		SerialNumber: r.SerialNumber,
	}
}

type campaignRow struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	StartDate int64           `db:"start_date"`
	Bid       decimal.Decimal `db:"bid"`
}

func (r campaignRow) toDomain(products []domain.Product) domain.Campaign {
	if products == nil {
		products = []domain.Product{}
	}
	return domain.Campaign{
		ID:        r.ID,
		Name:      r.Name,
		StartDate: fromNanos(r.StartDate),
		Bid:       r.Bid,
		Products:  products,
	}
}

type campaignProductRow struct {
	CampaignID int64 `db:"campaign_id"`
	productRow
}

package domain

import "github.com/shopspring/decimal"

// Product is a sellable item that campaigns promote. Price is kept as an
// exact decimal.
type Product struct {
	ID           int64
	Title        string
	Price        decimal.Decimal
	Category     Category
	SerialNumber string
}

// Validate checks the fields a product must carry before it is stored.
func (p Product) Validate() error {
	var v Violations
	v.Blank("title", p.Title)
	if !p.Price.IsPositive() {
		v.Add("price", "must be greater than 0")
	}
	if !p.Category.Valid() {
		v.Add("category", "must not be null")
	}
	v.Blank("serialNumber", p.SerialNumber)
	return v.Err()
}

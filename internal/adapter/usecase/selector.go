package usecase

import "promoted-ads/internal/core/domain"

// SelectHighestPriced returns the most expensive product among products
// whose category passes the filter. An empty category considers every
// product. Prices are compared exactly; on equal prices the product that
// comes first in products wins. ErrNoProductFound is returned when nothing
// passes the filter.
func SelectHighestPriced(products []domain.Product, category domain.Category) (domain.Product, error) {
	best := -1
	for i := range products {
		if !category.Matches(products[i].Category) {
			continue
		}
		if best < 0 || products[i].Price.GreaterThan(products[best].Price) {
			best = i
		}
	}
	if best < 0 {
		return domain.Product{}, domain.ErrNoProductFound
	}
	return products[best], nil
}

package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ActiveWindow is how long a campaign stays active after its start date.
const ActiveWindow = 10 * 24 * time.Hour

// LatestStartDate is the last start date a campaign may have. Later
// instants do not fit in int64 nanoseconds since the Unix epoch.
var LatestStartDate = time.Unix(0, math.MaxInt64).UTC()

// Campaign represents an advertising campaign promoting a set of products.
// The bid decides ranking between concurrently active campaigns.
type Campaign struct {
	ID        int64
	Name      string
	StartDate time.Time
	Bid       decimal.Decimal
	Products  []Product
}

// IsActiveAt reports whether the campaign is running at t. The window is
// start-inclusive and end-exclusive.
func (c Campaign) IsActiveAt(t time.Time) bool {
	return !c.StartDate.After(t) && c.StartDate.After(t.Add(-ActiveWindow))
}

// HasCategory reports whether at least one product of the campaign belongs
// to category. The empty category matches any campaign.
func (c Campaign) HasCategory(category Category) bool {
	if category == "" {
		return true
	}
	for _, p := range c.Products {
		if p.Category == category {
			return true
		}
	}
	return false
}

// ProductIDs returns the ids of the campaign's products in order.
func (c Campaign) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

// ValidateNew checks a campaign about to be created at now.
func (c Campaign) ValidateNew(now time.Time) error {
	var v Violations
	v.Blank("name", c.Name)
	if c.StartDate.IsZero() {
		v.Add("startDate", "must not be null")
	} else if c.StartDate.Before(now) {
		v.Add("startDate", "must be a date in the present or in the future")
	} else if c.StartDate.After(LatestStartDate) {
		v.Add("startDate", "must not be after "+LatestStartDate.Format(time.RFC3339))
	}
	if !c.Bid.IsPositive() {
		v.Add("bid", "must be greater than 0")
	}
	return v.Err()
}

package domain

import "time"

// ActivityQuery describes a ranked lookup of active campaigns. Stores must
// return campaigns with WindowStart < StartDate <= ReferenceTime that, when
// Category is set, own at least one product of that category. Results are
// ordered by bid descending, equal bids by ascending id, and truncated to
// Limit.
type ActivityQuery struct {
	ReferenceTime time.Time
	WindowStart   time.Time
	Category      Category
	Limit         int
}

// NewActivityQuery derives the window from ref. A non-positive limit is
// treated as 1.
func NewActivityQuery(ref time.Time, category Category, limit int) ActivityQuery {
	if limit <= 0 {
		limit = 1
	}
	return ActivityQuery{
		ReferenceTime: ref,
		WindowStart:   ref.Add(-ActiveWindow),
		Category:      category,
		Limit:         limit,
	}
}

// WithoutCategory returns the same query over every category.
func (q ActivityQuery) WithoutCategory() ActivityQuery {
	q.Category = ""
	return q
}

// Includes reports whether c satisfies the query's filters, ignoring order
// and limit. WindowStart is assumed to be ReferenceTime minus ActiveWindow,
// as set by NewActivityQuery.
func (q ActivityQuery) Includes(c Campaign) bool {
	return c.IsActiveAt(q.ReferenceTime) && c.HasCategory(q.Category)
}

package domain

import (
	"fmt"
	"strings"
)

// Category is a closed set of product categories. Values are the upper-case
// names used on the wire and in storage. The zero value matches any category
// wherever a category is used as a filter.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryFashion     Category = "FASHION"
	CategoryHomeGoods   Category = "HOMEGOODS"
	CategoryBeauty      Category = "BEAUTY"
	CategoryHealth      Category = "HEALTH"
	CategorySports      Category = "SPORTS"
	CategoryTravel      Category = "TRAVEL"
	CategoryBooks       Category = "BOOKS"
	CategoryPets        Category = "PETS"
	CategoryOffice      Category = "OFFICE"
)

// Categories lists every known category in declaration order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryHomeGoods,
	CategoryBeauty,
	CategoryHealth,
	CategorySports,
	CategoryTravel,
	CategoryBooks,
	CategoryPets,
	CategoryOffice,
}

// ParseCategory resolves s case-insensitively. Surrounding whitespace is
// ignored. Unknown or empty input yields an error wrapping ErrInvalidInput.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &Error{Kind: ErrInvalidInput, Msg: fmt.Sprintf("unknown category %q", s)}
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Matches reports whether a product of category other passes the filter c.
func (c Category) Matches(other Category) bool {
	return c == "" || c == other
}

func (c Category) String() string {
	return string(c)
}

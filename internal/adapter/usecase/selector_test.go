package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promoted-ads/internal/core/domain"
)

func product(id int64, category domain.Category, price string) domain.Product {
	return domain.Product{
		ID:           id,
		Title:        "Product",
		Price:        decimal.RequireFromString(price),
		Category:     category,
		SerialNumber: "SN",
	}
}

func TestSelectHighestPriced(t *testing.T) {
	products := []domain.Product{
		product(1, domain.CategoryBooks, "101"),
		product(2, domain.CategoryFashion, "250.10"),
		product(3, domain.CategoryBooks, "199.99"),
		product(4, domain.CategoryBooks, "102"),
	}

	t.Run("without category picks overall maximum", func(t *testing.T) {
		got, err := SelectHighestPriced(products, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("category filters before comparing", func(t *testing.T) {
		got, err := SelectHighestPriced(products, domain.CategoryBooks)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("no product of category", func(t *testing.T) {
		_, err := SelectHighestPriced(products, domain.CategoryPets)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.True(t, errors.Is(err, domain.ErrNoProductFound))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := SelectHighestPriced(nil, "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSelectHighestPricedComparesExactly(t *testing.T) {
	// Both values collapse to the same float64.
	products := []domain.Product{
		product(1, domain.CategoryOffice, "0.30000000000000000001"),
		product(2, domain.CategoryOffice, "0.30000000000000000002"),
		product(3, domain.CategoryOffice, "0.3"),
	}

	got, err := SelectHighestPriced(products, domain.CategoryOffice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestSelectHighestPricedTieKeepsFirst(t *testing.T) {
	products := []domain.Product{
		product(7, domain.CategoryPets, "15"),
		product(3, domain.CategoryPets, "15.00"),
		product(5, domain.CategoryPets, "9"),
	}

	got, err := SelectHighestPriced(products, domain.CategoryPets)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)

	// Repeating over the same input gives the same answer.
	for range 10 {
		again, err := SelectHighestPriced(products, domain.CategoryPets)
		require.NoError(t, err)
		assert.Equal(t, got.ID, again.ID)
	}
}

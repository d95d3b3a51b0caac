package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"BOOKS", "books", "Books", " bOoKs "} {
		c, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, CategoryBooks, c)
	}

	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCategoryInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "GARDEN", "book"} {
		_, err := ParseCategory(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidInput))

		var derr *Error
		require.ErrorAs(t, err, &derr)
		assert.Contains(t, derr.Msg, "unknown category")
	}
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, Category("").Matches(CategoryPets))
	assert.True(t, CategoryPets.Matches(CategoryPets))
	assert.False(t, CategoryPets.Matches(CategoryBooks))
}

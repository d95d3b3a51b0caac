package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	p := Product{
		Title:        "Desk lamp",
		Price:        decimal.RequireFromString("19.90"),
		Category:     CategoryOffice,
		SerialNumber: "LAMP-1",
	}
	require.NoError(t, p.Validate())

	p.Title = ""
	p.Category = "GARDEN"
	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "[title: must not be blank], [category: must not be null]")
}

func TestViolations(t *testing.T) {
	var v Violations
	require.NoError(t, v.Err())

	v.Blank("name", "\t")
	v.Blank("other", "x")
	v.Add("bid", "must be greater than 0")
	assert.EqualError(t, v.Err(), "[name: must not be blank], [bid: must be greater than 0]")
}

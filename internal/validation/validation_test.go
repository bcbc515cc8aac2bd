package validation_test

import (
	"errors"
	"testing"

	"fjacquet/expense-tracker/internal/trackererror"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{name: "Smallest positive", amount: "0.01", valid: true},
		{name: "Typical", amount: "50.00", valid: true},
		{name: "Upper bound is inclusive", amount: "1000", valid: true},
		{name: "Zero is rejected", amount: "0", valid: false},
		{name: "Negative is rejected", amount: "-1", valid: false},
		{name: "Just above upper bound", amount: "1000.01", valid: false},
		{name: "Far above upper bound", amount: "1500", valid: false},
		{name: "Exponent below bound", amount: "1e-13", valid: false},
		{name: "Exponent at bound", amount: "1e-12", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.valid, validation.IsValidAmount(amount))
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		valid    bool
	}{
		{name: "Lower case", category: "food", valid: true},
		{name: "Mixed case", category: "Travel", valid: true},
		{name: "Upper case", category: "ENTERTAINMENT", valid: true},
		{name: "Bills", category: "bills", valid: true},
		{name: "Other", category: "other", valid: true},
		{name: "Empty", category: "", valid: false},
		{name: "Whitespace only", category: "   ", valid: false},
		{name: "Unknown word", category: "groceries", valid: false},
		{name: "Digits", category: "food123", valid: false},
		{name: "Punctuation", category: "food!", valid: false},
		{name: "Inner space", category: "fo od", valid: false},
		{name: "Surrounding whitespace", category: " food ", valid: false},
		{name: "Non ASCII letter", category: "fóod", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.IsValidCategory(tt.category))
		})
	}
}

func TestValidCategories_ReturnsCopy(t *testing.T) {
	cats := validation.ValidCategories()
	require.Equal(t, []string{"food", "travel", "bills", "entertainment", "other"}, cats)

	cats[0] = "mutated"
	assert.Equal(t, "food", validation.ValidCategories()[0])
	assert.False(t, validation.IsValidCategory("mutated"))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validation.ValidateAmount(decimal.NewFromInt(1000)))

	err := validation.ValidateAmount(decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.Is(err, trackererror.ErrInvalidAmount))
	assert.Contains(t, err.Error(), "must be greater than 0")

	err = validation.ValidateAmount(decimal.NewFromInt(1500))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 1000")

	err = validation.ValidateAmount(decimal.New(1, -100000000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, trackererror.ErrInvalidAmount))
	assert.Contains(t, err.Error(), "has too many digits")
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, validation.ValidateCategory("Food"))

	err := validation.ValidateCategory("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, trackererror.ErrInvalidCategory))

	var ve *trackererror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "category", ve.Field)
	assert.Equal(t, "bogus", ve.Value)
}

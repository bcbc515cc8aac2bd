package filter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, time.October, 28, 14, 30, 0, 0, time.UTC)

func tx(amount, category string) *models.Transaction {
	return models.NewTransactionAt(decimal.RequireFromString(amount), category, testTime)
}

func amounts(txs []*models.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.Amount().StringFixed(2))
	}
	return out
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		token    string
		expected Kind
	}{
		{"none", KindNone},
		{"None", KindNone},
		{"category", KindCategory},
		{" Category ", KindCategory},
		{"amount-min", KindAmountMin},
		{"Amount >=", KindAmountMin},
		{"AMOUNT", KindAmountMin},
		{"", KindNone},
		{"date", KindNone},
		{"categories", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseKind(tt.token))
		})
	}
}

func TestIsKnownKind(t *testing.T) {
	assert.True(t, IsKnownKind("none"))
	assert.True(t, IsKnownKind("Category"))
	assert.True(t, IsKnownKind("amount-min"))
	assert.False(t, IsKnownKind("date"))
	assert.False(t, IsKnownKind(""))
}

func TestAmountFilter(t *testing.T) {
	input := []*models.Transaction{
		tx("50.00", "food"),
		tx("75.00", "travel"),
		tx("150.00", "bills"),
		tx("50.00", "entertainment"),
	}

	t.Run("threshold equal to amounts is inclusive", func(t *testing.T) {
		got := NewAmountFilter(decimal.RequireFromString("50.00")).Filter(input)
		assert.Equal(t, []string{"50.00", "75.00", "150.00", "50.00"}, amounts(got))
		assert.Equal(t, "325.00", models.Total(got).StringFixed(2))
	})

	t.Run("higher threshold keeps order", func(t *testing.T) {
		got := NewAmountFilter(decimal.RequireFromString("60.00")).Filter(input)
		require.Len(t, got, 2)
		assert.Same(t, input[1], got[0])
		assert.Same(t, input[2], got[1])
		assert.Equal(t, "225.00", models.Total(got).StringFixed(2))
	})

	t.Run("zero and negative thresholds are accepted", func(t *testing.T) {
		assert.Len(t, NewAmountFilter(decimal.Zero).Filter(input), 4)
		assert.Len(t, NewAmountFilter(decimal.NewFromInt(-10)).Filter(input), 4)
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := append([]*models.Transaction(nil), input...)
		NewAmountFilter(decimal.NewFromInt(100)).Filter(input)
		assert.Equal(t, before, input)
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		got := NewAmountFilter(decimal.Zero).Filter([]*models.Transaction{nil, input[0], nil})
		assert.Equal(t, []*models.Transaction{input[0]}, got)
	})

	t.Run("metadata", func(t *testing.T) {
		f := NewAmountFilter(decimal.RequireFromString("60"))
		assert.Equal(t, KindAmountMin, f.Kind())
		assert.Equal(t, "amount >= 60", f.Name())
		assert.True(t, decimal.NewFromInt(60).Equal(f.MinAmount()))
	})
}

func TestCategoryFilter(t *testing.T) {
	input := []*models.Transaction{
		tx("50", "food"),
		tx("100", "travel"),
		tx("75", "Food"),
		tx("200", "bills"),
		tx("30", "FOOD"),
		tx("10", ""),
	}

	f, err := NewCategoryFilter("food")
	require.NoError(t, err)

	got := f.Filter(input)
	assert.Equal(t, []string{"50.00", "75.00", "30.00"}, amounts(got))
	assert.Equal(t, "155.00", models.Total(got).StringFixed(2))
	for _, g := range got {
		assert.Equal(t, "food", strings.ToLower(g.Category()))
	}

	t.Run("filter category is case-insensitive", func(t *testing.T) {
		upper, err := NewCategoryFilter("FOOD")
		require.NoError(t, err)
		assert.Len(t, upper.Filter(input), 3)
	})

	t.Run("no substring matching", func(t *testing.T) {
		other, err := NewCategoryFilter("other")
		require.NoError(t, err)
		assert.Empty(t, other.Filter(input))
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, KindCategory, f.Kind())
		assert.Equal(t, "food", f.Category())
		assert.Equal(t, "category = food", f.Name())
	})
}

func TestNewCategoryFilter_Invalid(t *testing.T) {
	for _, category := range []string{"bogus", "", "  ", "food1", "food!"} {
		t.Run(category, func(t *testing.T) {
			f, err := NewCategoryFilter(category)
			assert.Nil(t, f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, trackererror.ErrInvalidCategory))
		})
	}
}

func TestApply(t *testing.T) {
	input := []*models.Transaction{tx("1", "food"), nil, tx("2", "bills")}

	all := Apply(nil, input)
	assert.Equal(t, []*models.Transaction{input[0], input[2]}, all)

	all[0] = nil
	assert.NotNil(t, input[0], "Apply must return a fresh slice")

	f, err := NewCategoryFilter("bills")
	require.NoError(t, err)
	assert.Equal(t, []*models.Transaction{input[2]}, Apply(f, input))
}

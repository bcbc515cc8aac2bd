package filter

import (
	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// AmountFilter keeps transactions whose amount is at least a threshold.
// The threshold is not validated here: zero and negative values are accepted.
type AmountFilter struct {
	minAmount decimal.Decimal
}

// NewAmountFilter creates an AmountFilter with an inclusive lower bound.
func NewAmountFilter(minAmount decimal.Decimal) *AmountFilter {
	return &AmountFilter{minAmount: minAmount}
}

// MinAmount returns the inclusive threshold.
func (f *AmountFilter) MinAmount() decimal.Decimal {
	return f.minAmount
}

func (f *AmountFilter) Filter(txs []*models.Transaction) []*models.Transaction {
	return keep(txs, func(tx *models.Transaction) bool {
		return tx.Amount().GreaterThanOrEqual(f.minAmount)
	})
}

func (f *AmountFilter) Kind() Kind {
	return KindAmountMin
}

func (f *AmountFilter) Name() string {
	return "amount >= " + f.minAmount.String()
}

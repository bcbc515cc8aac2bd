// Package models provides the data structures used throughout the expense tracker.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the display format of a transaction's creation instant (dd-MM-yyyy HH:mm).
const TimestampLayout = "02-01-2006 15:04"

// Clock returns the current instant. Tests may replace it.
var Clock = time.Now

// Transaction is an immutable record of a single expense.
//
// Transactions are always handled through pointers: two transactions holding
// the same values are still distinct entities, and removal from a store
// targets a specific pointer.
type Transaction struct {
	id        string
	amount    decimal.Decimal
	category  string
	createdAt time.Time
}

// NewTransaction creates a transaction stamped with the current instant.
// It performs no validation; see the validation package for the business rules.
func NewTransaction(amount decimal.Decimal, category string) *Transaction {
	return NewTransactionAt(amount, category, Clock())
}

// NewTransactionAt creates a transaction stamped with the given instant.
func NewTransactionAt(amount decimal.Decimal, category string, createdAt time.Time) *Transaction {
	return &Transaction{
		id:        uuid.NewString(),
		amount:    amount,
		category:  category,
		createdAt: createdAt,
	}
}

// ID returns the identifier generated at construction.
func (t *Transaction) ID() string {
	return t.id
}

// Amount returns the monetary amount.
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Category returns the category exactly as supplied.
func (t *Transaction) Category() string {
	return t.category
}

// CreatedAt returns the creation instant.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// Timestamp returns the creation instant formatted with TimestampLayout.
func (t *Transaction) Timestamp() string {
	return t.createdAt.Format(TimestampLayout)
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s %s", t.amount.StringFixed(2), t.category, t.Timestamp())
}

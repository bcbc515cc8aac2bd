// Package filter provides the selection strategies applied to the transaction
// list before it is displayed.
package filter

import (
	"strings"

	"fjacquet/expense-tracker/internal/models"
)

// Kind identifies a filter strategy.
type Kind string

const (
	KindNone      Kind = "none"
	KindCategory  Kind = "category"
	KindAmountMin Kind = "amount-min"
)

// TransactionFilter selects a subsequence of transactions.
//
// Implementations must not modify or reorder the input and must skip nil
// entries instead of failing on them.
type TransactionFilter interface {
	// Filter returns a new slice holding only the matching transactions.
	Filter(txs []*models.Transaction) []*models.Transaction

	// Kind returns the strategy tag of this filter.
	Kind() Kind

	// Name returns a short description for logging and display.
	Name() string
}

// ParseKind maps a user selection token to a Kind.
// Besides the canonical tokens it understands the labels "None", "Category"
// and "Amount >=". Unknown tokens select KindNone.
func ParseKind(token string) Kind {
	t := strings.ToLower(strings.TrimSpace(token))
	switch {
	case t == string(KindCategory):
		return KindCategory
	case strings.HasPrefix(t, "amount"):
		return KindAmountMin
	default:
		return KindNone
	}
}

// IsKnownKind reports whether token names a filter kind explicitly, as
// opposed to falling back to KindNone.
func IsKnownKind(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	return t == string(KindNone) || ParseKind(t) != KindNone
}

// Apply runs f over txs. A nil filter selects everything; the result is
// always a fresh slice.
func Apply(f TransactionFilter, txs []*models.Transaction) []*models.Transaction {
	if f == nil {
		out := make([]*models.Transaction, 0, len(txs))
		for _, tx := range txs {
			if tx != nil {
				out = append(out, tx)
			}
		}
		return out
	}
	return f.Filter(txs)
}

func keep(txs []*models.Transaction, match func(*models.Transaction) bool) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx != nil && match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

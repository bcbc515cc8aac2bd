// Package validation holds the business rules applied to user-entered
// transaction values before they reach the store.
package validation

import (
	"regexp"
	"strings"

	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/shopspring/decimal"
)

// Amount bounds. MinAmount is exclusive, MaxAmount inclusive.
var (
	MinAmount = decimal.Zero
	MaxAmount = decimal.NewFromInt(1000)
)

// validCategories is the closed category set. It is not user-extensible.
var validCategories = []string{"food", "travel", "bills", "entertainment", "other"}

var lettersOnly = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidCategories returns a copy of the accepted categories in display order.
func ValidCategories() []string {
	out := make([]string, len(validCategories))
	copy(out, validCategories)
	return out
}

// IsValidAmount reports whether amount lies in (0, 1000]. Amounts whose
// exponent is outside models.MaxExponent are never valid.
func IsValidAmount(amount decimal.Decimal) bool {
	if !models.WithinExponentRange(amount) {
		return false
	}
	return amount.GreaterThan(MinAmount) && amount.LessThanOrEqual(MaxAmount)
}

// IsValidCategory reports whether category is one of the known categories.
// The comparison ignores case; anything other than ASCII letters is rejected.
func IsValidCategory(category string) bool {
	return categoryReason(category) == ""
}

// ValidateAmount returns a *trackererror.ValidationError wrapping
// ErrInvalidAmount when the amount is out of range.
func ValidateAmount(amount decimal.Decimal) error {
	if IsValidAmount(amount) {
		return nil
	}
	reason := "must be at most " + MaxAmount.String()
	if !models.WithinExponentRange(amount) {
		reason = "has too many digits"
	} else if !amount.GreaterThan(MinAmount) {
		reason = "must be greater than " + MinAmount.String()
	}
	return &trackererror.ValidationError{
		Field:  "amount",
		Value:  models.AmountText(amount),
		Reason: reason,
		Err:    trackererror.ErrInvalidAmount,
	}
}

// ValidateCategory returns a *trackererror.ValidationError wrapping
// ErrInvalidCategory when the category is rejected.
func ValidateCategory(category string) error {
	reason := categoryReason(category)
	if reason == "" {
		return nil
	}
	return &trackererror.ValidationError{
		Field:  "category",
		Value:  category,
		Reason: reason,
		Err:    trackererror.ErrInvalidCategory,
	}
}

func categoryReason(category string) string {
	if strings.TrimSpace(category) == "" {
		return "category is empty"
	}
	if !lettersOnly.MatchString(category) {
		return "category must contain letters only"
	}
	lower := strings.ToLower(category)
	for _, c := range validCategories {
		if c == lower {
			return ""
		}
	}
	return "category must be one of " + strings.Join(validCategories, ", ")
}

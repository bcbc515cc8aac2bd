package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent of parsed numbers in both
// directions. Comparing decimals rescales them, which costs 10^|exponent|.
const MaxExponent = 12

// ErrExponentOutOfRange is returned for numbers such as 1e-100000000.
var ErrExponentOutOfRange = errors.New("exponent out of range")

// WithinExponentRange reports whether d can be compared cheaply.
func WithinExponentRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -MaxExponent && exp <= MaxExponent
}

// AmountText renders d for logs and error messages without expanding huge
// exponents.
func AmountText(d decimal.Decimal) string {
	if WithinExponentRange(d) {
		return d.String()
	}
	return fmt.Sprintf("%se%d", d.Coefficient().String(), d.Exponent())
}

// ParseDecimal parses a plain decimal number and rejects exponents beyond
// MaxExponent.
func ParseDecimal(value string) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !WithinExponentRange(dec) {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrExponentOutOfRange, dec.Exponent())
	}
	return dec, nil
}

// ParseAmount parses user-entered amount text into a decimal.
// It accepts a comma as decimal separator, apostrophes as thousand separators
// and a leading or trailing currency marker; anything else must be a plain
// decimal number.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	for _, marker := range []string{"CHF", "EUR", "USD", "$", "€"} {
		amount = strings.ReplaceAll(amount, marker, "")
	}
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, ",", ".")

	dec, err := ParseDecimal(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", amountStr, err)
	}
	return dec, nil
}

// Total sums the amounts of the given transactions, skipping nil entries.
func Total(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		total = total.Add(tx.amount)
	}
	return total
}

// FormatAmount renders an amount with a fixed number of decimal places.
func FormatAmount(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}

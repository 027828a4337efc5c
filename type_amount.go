package qif

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary quantity parsed from the file. The zero Amount
// means the field was absent. Values are exact base-10 decimals, never
// binary floats, so sums over many records do not drift.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// ParseAmount converts a raw amount token into an Amount. Commas are
// grouping separators and are stripped before parsing: the producer
// writes "1,234.00" for 1234.00. Locales with a decimal comma are not
// supported; the producer standardizes on the dot.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{value: d, valid: true}, nil
}

// AmountOf returns a set Amount holding the given decimal value.
func AmountOf(d decimal.Decimal) Amount { return Amount{value: d, valid: true} }

// Valid reports whether the field was present.
func (a Amount) Valid() bool { return a.valid }

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Equal reports whether both amounts have the same presence and value.
func (a Amount) Equal(b Amount) bool { return a.valid == b.valid && a.value.Equal(b.value) }

// Add returns the sum of the two amounts; an absent amount counts as zero.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value), valid: true}
}

// String renders the amount with the scale it was parsed with, so
// "-45.00" reads back as "-45.00". Grouping commas are not restored.
func (a Amount) String() string {
	if !a.valid {
		return ""
	}
	// Decimal.String trims trailing zeros; the exponent still carries
	// the parsed scale, so render with it.
	if e := a.value.Exponent(); e < 0 {
		return a.value.StringFixed(-e)
	}
	return a.value.String()
}

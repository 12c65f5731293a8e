// Package money converts between decimal currency strings and integer
// minor-unit amounts, and applies the deposit policy. All arithmetic on
// amounts happens in minor units so no float ever touches money.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount marks a monetary string that does not parse as a
// non-negative decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// ToMinorUnits parses a decimal currency string ("1234.56") into minor units
// (123456), rounding half away from zero to the nearest minor unit.
func ToMinorUnits(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// ToDecimalString formats minor units as a decimal string with exactly two
// fraction digits. Inverse of ToMinorUnits for any two-decimal input.
func ToDecimalString(minor int64) string {
	return decimal.NewFromInt(minor).Div(hundred).StringFixed(2)
}

// Package units converts between whole-unit decimal strings, such as "1.5",
// and raw token amounts in the smallest unit of a token.
package units

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/govalues/pairrate"
)

// maxDigits is the number of decimal digits of the largest 128-bit value.
const maxDigits = 39

var (
	errNegative  = errors.New("amount is negative")
	errPrecision = errors.New("amount is finer than the smallest unit")
	errTooLarge  = errors.New("amount does not fit in 128 bits")
)

// Parse converts a whole-unit amount to raw units of a token with the given
// number of decimals. "1.5" with 6 decimals is 1500000.
//
// Parse returns an error if the string is not a decimal number, the number is
// negative, it has more fractional digits than decimals, or the raw amount
// does not fit in 128 bits. Exponent forms such as "1.5e3" are accepted.
func Parse(s string, decimals uint8) (pairrate.Uint128, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return pairrate.Uint128{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	if d.IsNegative() {
		return pairrate.Uint128{}, fmt.Errorf("parsing %q: %w", s, errNegative)
	}
	if d.IsZero() {
		return pairrate.Uint128{}, nil
	}

	// Decide from the digit count and exponent, before the integer is built.
	digits := int64(d.NumDigits())
	exp := int64(d.Exponent()) + int64(decimals)
	switch {
	case digits+exp > maxDigits:
		return pairrate.Uint128{}, fmt.Errorf("parsing %q with %v decimals: %w", s, decimals, errTooLarge)
	case exp < 0 && -exp >= digits:
		return pairrate.Uint128{}, fmt.Errorf("parsing %q with %v decimals: %w", s, decimals, errPrecision)
	}
	raw := d.Shift(int32(decimals))
	if !raw.Equal(raw.Truncate(0)) {
		return pairrate.Uint128{}, fmt.Errorf("parsing %q with %v decimals: %w", s, decimals, errPrecision)
	}
	u, err := pairrate.FromBig(raw.BigInt())
	if err != nil {
		return pairrate.Uint128{}, fmt.Errorf("parsing %q with %v decimals: %w", s, decimals, errTooLarge)
	}
	return u, nil
}

// Format renders raw units of a token with the given number of decimals
// as an exact whole-unit amount without trailing zeros.
func Format(amount pairrate.Uint128, decimals uint8) string {
	return decimal.NewFromBigInt(amount.Big(), -int32(decimals)).String()
}

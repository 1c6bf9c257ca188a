package pairrate

import "fmt"

//go:generate go run ./scripts/pow10/codegen.go

// pow10 returns 10^n.
func pow10(n uint8) (Uint128, error) {
	if n > MaxDecimals {
		return Uint128{}, fmt.Errorf("computing [10^%v]: factor exceeds %v: %w", n, MaxUint128, ErrDecimalFactorOverflow)
	}
	return pow10Table[n], nil
}

// Rescale converts an amount with from fractional digits to an amount
// with to fractional digits.
// When the number of digits decreases, the amount is divided by the power of ten
// and the remainder is discarded.
// When it increases, the amount is multiplied by the power of ten.
//
// Rescale returns an error if:
//   - from or to is greater than [MaxDecimals];
//   - the difference between from and to is greater than [MaxDecimalDiff];
//   - the scaled amount does not fit in 128 bits.
func Rescale(amount Uint128, from, to uint8) (Uint128, error) {
	if from > MaxDecimals || to > MaxDecimals {
		return Uint128{}, fmt.Errorf("rescaling %v from %v to %v decimals: maximum is %v: %w", amount, from, to, MaxDecimals, ErrDecimalsExceedMax)
	}
	diff := to - from
	if from > to {
		diff = from - to
	}
	if diff > MaxDecimalDiff {
		return Uint128{}, fmt.Errorf("rescaling %v from %v to %v decimals: difference %v exceeds %v: %w", amount, from, to, diff, MaxDecimalDiff, ErrDecimalDifferenceExceedsMax)
	}
	if from == to {
		return amount, nil
	}
	factor, err := pow10(diff)
	if err != nil {
		return Uint128{}, fmt.Errorf("rescaling %v from %v to %v decimals: %w", amount, from, to, err)
	}
	if from > to {
		return amount.Quo(factor), nil
	}
	a, ok := amount.CheckedMul(factor)
	if !ok {
		return Uint128{}, fmt.Errorf("rescaling %v from %v to %v decimals: [%v * %v] exceeds %v: %w", amount, from, to, amount, factor, MaxUint128, ErrMultiplyOverflow)
	}
	return a, nil
}

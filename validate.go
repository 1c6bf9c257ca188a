package pairrate

import (
	"fmt"
	"math"
)

// Bounds applied to every rate and every decimal count.
const (
	MaxDecimals    = 38 // MaxDecimals is the largest supported number of fractional digits.
	MinRate        = 1  // MinRate is the smallest allowed rate component.
	MaxDecimalDiff = 32 // MaxDecimalDiff is the largest supported gap between two decimal counts.
)

// MaxRate is the largest allowed rate component and multiply-divide operand.
// It equals ⌊MaxUint128 / 2⌋.
var MaxRate = Uint128{Hi: math.MaxUint64 >> 1, Lo: math.MaxUint64}

func validateRate(r Rate) error {
	if err := validateRateComponent("input", r.In); err != nil {
		return err
	}
	return validateRateComponent("output", r.Out)
}

func validateRateComponent(side string, v Uint128) error {
	switch {
	case v.Cmp(From64(MinRate)) < 0:
		return fmt.Errorf("%v rate %v is below minimum %v: %w", side, v, MinRate, ErrRateOutOfRange)
	case v.Cmp(MaxRate) > 0:
		return fmt.Errorf("%v rate %v exceeds maximum %v: %w", side, v, MaxRate, ErrRateOutOfRange)
	}
	return nil
}

func validateDecimals(d Decimals) error {
	if d.In > MaxDecimals {
		return fmt.Errorf("input decimals %v exceed maximum %v: %w", d.In, MaxDecimals, ErrDecimalsExceedMax)
	}
	if d.Out > MaxDecimals {
		return fmt.Errorf("output decimals %v exceed maximum %v: %w", d.Out, MaxDecimals, ErrDecimalsExceedMax)
	}
	return nil
}

package pairrate

import "fmt"

// OutputAmount returns the amount of the quote token, in raw units with
// [Decimals.Out] fractional digits, that is obtained for the given amount
// of the base token, in raw units with [Decimals.In] fractional digits:
//
//	rescale(⌊in * Rate.Out / Rate.In⌋, Decimals.In, Decimals.Out)
//
// The result is truncated and never rounded up.
//
// OutputAmount returns an error if:
//   - the input amount is zero;
//   - the pair rate is not valid, see [PairRate.IsValid];
//   - the input amount is greater than [MaxUint128] / Rate.Out;
//   - an intermediate or final value does not fit in 128 bits;
//   - the decimal counts differ by more than [MaxDecimalDiff];
//   - the result is zero, in which case the input amount should be increased.
func (r PairRate) OutputAmount(in Uint128) (Uint128, error) {
	if in.IsZero() {
		return Uint128{}, fmt.Errorf("computing %v output amount: input amount must be greater than 0: %w", r.pair, ErrAmountZero)
	}
	if err := r.validate(); err != nil {
		return Uint128{}, fmt.Errorf("computing %v output amount: %w", r.pair, err)
	}
	out, err := convert(in, r.rate.Out, r.rate.In, r.dec.In, r.dec.Out)
	if err != nil {
		return Uint128{}, fmt.Errorf("computing %v output amount for %v: %w", r.pair, in, err)
	}
	if out.IsZero() {
		return Uint128{}, fmt.Errorf("computing %v output amount for %v: calculated output amount is zero, increase input amount: %w", r.pair, in, ErrResultUnderflowedToZero)
	}
	return out, nil
}

// InputAmount returns the amount of the base token, in raw units with
// [Decimals.In] fractional digits, that is required to obtain the given amount
// of the quote token, in raw units with [Decimals.Out] fractional digits:
//
//	rescale(⌊out * Rate.In / Rate.Out⌋, Decimals.Out, Decimals.In)
//
// InputAmount mirrors [PairRate.OutputAmount]: when no digits are discarded
// by rescaling, InputAmount(OutputAmount(x)) == x.
//
// InputAmount returns an error if:
//   - the output amount is zero;
//   - the pair rate is not valid, see [PairRate.IsValid];
//   - the output amount is greater than [MaxUint128] / Rate.In;
//   - an intermediate or final value does not fit in 128 bits;
//   - the decimal counts differ by more than [MaxDecimalDiff];
//   - the result is zero, in which case the output amount should be increased.
func (r PairRate) InputAmount(out Uint128) (Uint128, error) {
	if out.IsZero() {
		return Uint128{}, fmt.Errorf("computing %v input amount: output amount must be greater than 0: %w", r.pair, ErrAmountZero)
	}
	if err := r.validate(); err != nil {
		return Uint128{}, fmt.Errorf("computing %v input amount: %w", r.pair, err)
	}
	in, err := convert(out, r.rate.In, r.rate.Out, r.dec.Out, r.dec.In)
	if err != nil {
		return Uint128{}, fmt.Errorf("computing %v input amount for %v: %w", r.pair, out, err)
	}
	if in.IsZero() {
		return Uint128{}, fmt.Errorf("computing %v input amount for %v: calculated input amount is zero, increase output amount: %w", r.pair, out, ErrResultUnderflowedToZero)
	}
	return in, nil
}

// convert scales amount by multiplier / divisor and rescales the result
// from one decimal count to the other.
// The multiplier must be non-zero.
func convert(amount, multiplier, divisor Uint128, from, to uint8) (Uint128, error) {
	// Cheap bound that may reject amounts mulDiv could still handle.
	if limit := MaxUint128.Quo(multiplier); amount.Cmp(limit) > 0 {
		return Uint128{}, fmt.Errorf("amount exceeds [%v / %v] = %v: %w", MaxUint128, multiplier, limit, ErrPrecheckOverflow)
	}
	base, err := mulDiv(amount, multiplier, divisor)
	if err != nil {
		return Uint128{}, err
	}
	return Rescale(base, from, to)
}

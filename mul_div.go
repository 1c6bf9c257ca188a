package pairrate

import (
	"fmt"
	"math/big"
)

// mulDiv returns ⌊amount * multiplier / divisor⌋.
// The product is computed exactly on big integers, so it may exceed 128 bits
// as long as the quotient does not.
func mulDiv(amount, multiplier, divisor Uint128) (Uint128, error) {
	if divisor.IsZero() {
		return Uint128{}, fmt.Errorf("computing [%v * %v / %v]: %w", amount, multiplier, divisor, ErrDivisionByZero)
	}
	if amount.Cmp(MaxRate) > 0 {
		return Uint128{}, fmt.Errorf("computing [%v * %v / %v]: amount exceeds maximum operand %v: %w", amount, multiplier, divisor, MaxRate, ErrOperandTooLarge)
	}
	if multiplier.Cmp(MaxRate) > 0 {
		return Uint128{}, fmt.Errorf("computing [%v * %v / %v]: multiplier exceeds maximum operand %v: %w", amount, multiplier, divisor, MaxRate, ErrOperandTooLarge)
	}
	q := new(big.Int).Mul(amount.Big(), multiplier.Big())
	q.Quo(q, divisor.Big())
	if q.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("computing [%v * %v / %v]: quotient %v exceeds %v: %w", amount, multiplier, divisor, q, MaxUint128, ErrResultOverflowsRange)
	}
	return FromBig(q)
}

package pairrate

import "errors"

// Errors returned by the package are wrapped with the details of the violated
// bound, so callers should match them with [errors.Is].
var (
	ErrAmountZero                  = errors.New("amount is zero")
	ErrRateOutOfRange              = errors.New("rate out of range")
	ErrDecimalsExceedMax           = errors.New("decimals exceed maximum")
	ErrDecimalDifferenceExceedsMax = errors.New("decimal difference exceeds maximum")
	ErrDivisionByZero              = errors.New("division by zero")
	ErrOperandTooLarge             = errors.New("operand too large")
	ErrPrecheckOverflow            = errors.New("precheck overflow")
	ErrMultiplyOverflow            = errors.New("multiplication overflow")
	ErrDecimalFactorOverflow       = errors.New("decimal factor overflow")
	ErrResultOverflowsRange        = errors.New("result overflows range")
	ErrResultUnderflowedToZero     = errors.New("result underflowed to zero")
	ErrInvalidUint128              = errors.New("invalid uint128")
)

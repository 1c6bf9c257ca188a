/*
Package pairrate converts token amounts across a trading pair using a rational
exchange rate given as two raw integers.
It compensates for the different decimal scales of the two tokens and guards
every arithmetic step against overflow, underflow and precision loss in
128-bit unsigned integer math.

# Features

  - Immutable pair rates, ensuring safe usage across multiple goroutines
  - Validating constructor, invalid pair rates cannot be obtained from [New]
  - Conversion in both directions: amount in to amount out and back
  - Exact intermediate products, the result is truncated and never rounded up
  - Descriptive errors naming the violated bound

# Representation

Amounts are [Uint128] values in the smallest unit of a token.
A [PairRate] consists of a [Pair] of token labels, a [Rate] saying that
Rate.In raw units of the base token are worth Rate.Out raw units of the quote
token, and [Decimals] holding the number of fractional digits of each token.

# Conversion

[PairRate.OutputAmount] computes

	rescale(⌊in * Rate.Out / Rate.In⌋, Decimals.In, Decimals.Out)

and [PairRate.InputAmount] is its mirror.
The product is computed exactly before the division, so it may exceed
128 bits as long as the quotient does not.
Rescaling to fewer decimals discards the remainder.

# Supported Ranges

Rate components must be within [[MinRate], [MaxRate]], where [MaxRate] is half
of [MaxUint128]. Decimal counts must not exceed [MaxDecimals], and two decimal
counts must not differ by more than [MaxDecimalDiff].
Before the exact path runs, an amount greater than [MaxUint128] divided by
the multiplying rate component is rejected.

# Errors

All failures are returned as wrapped sentinel errors, such as [ErrAmountZero]
or [ErrResultUnderflowedToZero], and can be matched with [errors.Is].
Only the Must functions panic.
*/
package pairrate

package pairrate

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Pair holds the labels of the two tokens of a pair.
// Labels are descriptive only and never take part in the arithmetic.
type Pair struct {
	Base  string // token being exchanged
	Quote string // token obtained in exchange for the base token
}

// String returns the pair in the form "BASE/QUOTE".
func (p Pair) String() string {
	return p.Base + "/" + p.Quote
}

// Rate states that In raw units of the base token are worth Out raw units
// of the quote token, before any decimal scaling.
type Rate struct {
	In  Uint128
	Out Uint128
}

// Decimals holds the number of fractional digits of one whole unit of
// the base (In) and quote (Out) tokens.
type Decimals struct {
	In  uint8
	Out uint8
}

// PairRate represents a unidirectional conversion rate between two tokens
// whose raw amounts use different decimal scales.
// The zero value is not valid and every conversion on it fails with
// [ErrRateOutOfRange]; use [New] or [Default] to obtain a usable rate.
// PairRate is immutable and designed to be safe for concurrent use by
// multiple goroutines.
type PairRate struct {
	pair Pair
	rate Rate
	dec  Decimals
}

// New returns a pair rate with the given labels, rate and decimals.
//
// New returns an error if:
//   - a rate component is less than [MinRate] or greater than [MaxRate];
//   - a decimal count is greater than [MaxDecimals].
func New(pair Pair, rate Rate, dec Decimals) (PairRate, error) {
	if err := validateRate(rate); err != nil {
		return PairRate{}, fmt.Errorf("validating %v rate: %w", pair, err)
	}
	if err := validateDecimals(dec); err != nil {
		return PairRate{}, fmt.Errorf("validating %v decimals: %w", pair, err)
	}
	return PairRate{pair: pair, rate: rate, dec: dec}, nil
}

// MustNew is like [New] but panics if the pair rate cannot be constructed.
// It simplifies safe initialization of global variables holding pair rates.
func MustNew(pair Pair, rate Rate, dec Decimals) PairRate {
	r, err := New(pair, rate, dec)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v, %v) failed: %v", pair, rate, dec, err))
	}
	return r
}

// Default returns the neutral rate "TOKEN_A/TOKEN_B 1:1 (18/18)".
func Default() PairRate {
	one := From64(1)
	return PairRate{
		pair: Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		rate: Rate{In: one, Out: one},
		dec:  Decimals{In: 18, Out: 18},
	}
}

// Pair returns the token labels.
func (r PairRate) Pair() Pair {
	return r.pair
}

// RateAndDecimals returns the raw rate and decimals the pair rate was created with.
func (r PairRate) RateAndDecimals() (Rate, Decimals) {
	return r.rate, r.dec
}

// IsValid returns true if both rate components and both decimal counts are within bounds.
func (r PairRate) IsValid() bool {
	return r.validate() == nil
}

func (r PairRate) validate() error {
	if err := validateRate(r.rate); err != nil {
		return err
	}
	return validateDecimals(r.dec)
}

// Inv returns the pair rate of the reversed pair, where the quote token
// is exchanged for the base token.
func (r PairRate) Inv() PairRate {
	return PairRate{
		pair: Pair{Base: r.pair.Quote, Quote: r.pair.Base},
		rate: Rate{In: r.rate.Out, Out: r.rate.In},
		dec:  Decimals{In: r.dec.Out, Out: r.dec.In},
	}
}

// HumanRate returns an approximate number of whole quote tokens per one
// whole base token:
//
//	(Out / In) * 10^(In decimals - Out decimals)
//
// The result is a binary floating-point number intended for display only.
// Use [PairRate.OutputAmount] and [PairRate.InputAmount] to compute amounts.
func (r PairRate) HumanRate() float64 {
	in, out := r.rate.In.Float64(), r.rate.Out.Float64()
	return out / in * math.Pow10(int(r.dec.In)-int(r.dec.Out))
}

// Price returns the same quantity as [PairRate.HumanRate] computed in
// decimal arithmetic and rounded to at most [decimal.MaxPrec] digits,
// with trailing zeros removed.
//
// Price returns an error if a rate component has more than [decimal.MaxPrec]
// digits or the result does not fit in a decimal.
func (r PairRate) Price() (decimal.Decimal, error) {
	in, err := rateDecimal(r.rate.In)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
	}
	out, err := rateDecimal(r.rate.Out)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
	}
	p, err := out.Quo(in)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
	}
	switch diff := int(r.dec.In) - int(r.dec.Out); {
	case diff > 0:
		f, err := decimal.New(1, diff)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
		}
		p, err = p.Quo(f)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
		}
	case diff < 0:
		f, err := decimal.New(1, -diff)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
		}
		p, err = p.Mul(f)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("computing %v price: %w", r.pair, err)
		}
	}
	return p.Trim(0), nil
}

func rateDecimal(v Uint128) (decimal.Decimal, error) {
	if v.Hi != 0 || v.Lo > math.MaxInt64 {
		return decimal.Decimal{}, fmt.Errorf("rate component %v has more than %v digits", v, decimal.MaxPrec)
	}
	return decimal.New(int64(v.Lo), 0)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the pair rate, for example "TOKEN_A/TOKEN_B 10:19 (24/24)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r PairRate) String() string {
	return fmt.Sprintf("%v %v:%v (%v/%v)", r.pair, r.rate.In, r.rate.Out, r.dec.In, r.dec.Out)
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: TOKEN_A/TOKEN_B 10:19 (24/24)
//	%q:    "TOKEN_A/TOKEN_B 10:19 (24/24)"
//	%c:     TOKEN_A/TOKEN_B
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r PairRate) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'c', 'C':
		s = r.pair.String()
	case 'q', 'Q':
		s = `"` + r.String() + `"`
	default:
		s = r.String()
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(s))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(pairrate.PairRate="))
		state.Write([]byte(s))
		state.Write([]byte(")"))
	}
}

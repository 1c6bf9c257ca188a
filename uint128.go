package pairrate

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 represents an unsigned 128-bit integer.
// Token amounts and rate components are expressed in this type, in the
// smallest unit of the token.
// Its zero value is 0.
// Uint128 is designed to be safe for concurrent use by multiple goroutines.
type Uint128 struct {
	Hi uint64 // upper 64 bits
	Lo uint64 // lower 64 bits
}

// MaxUint128 is the largest value representable by [Uint128].
var MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// From64 returns a Uint128 equal to v.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBig converts a big integer to Uint128.
//
// FromBig returns an error if b is negative or does not fit in 128 bits.
func FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 {
		return Uint128{}, fmt.Errorf("converting negative value: %w", ErrResultOverflowsRange)
	}
	if n := b.BitLen(); n > 128 {
		return Uint128{}, fmt.Errorf("converting %v-bit value: maximum is 128 bits: %w", n, ErrResultOverflowsRange)
	}
	lo := new(big.Int).And(b, mask64).Uint64()
	hi := new(big.Int).Rsh(b, 64).Uint64()
	return Uint128{Hi: hi, Lo: lo}, nil
}

// ParseUint128 converts a string of decimal digits to Uint128.
// Signs, spaces and digit separators are not accepted.
//
// ParseUint128 returns an error if the string is not a valid number
// or the number does not fit in 128 bits.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("parsing %q: empty string: %w", s, ErrInvalidUint128)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint128{}, fmt.Errorf("parsing %q: unexpected character %q: %w", s, s[i], ErrInvalidUint128)
		}
	}
	if len(s) <= 19 {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Uint128{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidUint128)
		}
		return From64(v), nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidUint128)
	}
	u, err := FromBig(b)
	if err != nil {
		return Uint128{}, fmt.Errorf("parsing %q: number exceeds %v: %w", s, MaxUint128, ErrInvalidUint128)
	}
	return u, nil
}

// MustParseUint128 is like [ParseUint128] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(fmt.Sprintf("ParseUint128(%q) failed: %v", s, err))
	}
	return u
}

// Big returns the value as a newly allocated big integer.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// IsZero returns:
//
//	true  if u == 0
//	false otherwise
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp compares u and v and returns:
//
//	-1 if u < v
//	 0 if u = v
//	+1 if u > v
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// CheckedMul returns u * v.
// The boolean is false if the product does not fit in 128 bits.
func (u Uint128) CheckedMul(v Uint128) (Uint128, bool) {
	if u.Hi != 0 && v.Hi != 0 {
		return Uint128{}, false
	}
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	c1, p1 := bits.Mul64(u.Hi, v.Lo)
	c2, p2 := bits.Mul64(u.Lo, v.Hi)
	if c1 != 0 || c2 != 0 {
		return Uint128{}, false
	}
	var carry uint64
	hi, carry = bits.Add64(hi, p1, 0)
	if carry != 0 {
		return Uint128{}, false
	}
	hi, carry = bits.Add64(hi, p2, 0)
	if carry != 0 {
		return Uint128{}, false
	}
	return Uint128{Hi: hi, Lo: lo}, true
}

// Quo returns the truncated quotient u / v.
//
// Quo panics if v is zero, like the integer division operator.
func (u Uint128) Quo(v Uint128) Uint128 {
	if v.IsZero() {
		panic(fmt.Sprintf("%v.Quo(%v) failed: %v", u, v, ErrDivisionByZero))
	}
	if v.Hi == 0 {
		var q Uint128
		var r uint64
		q.Hi, r = u.Hi/v.Lo, u.Hi%v.Lo
		q.Lo, _ = bits.Div64(r, u.Lo, v.Lo)
		return q
	}
	// Divisor wider than 64 bits, the quotient fits in 64 bits.
	q := new(big.Int).Quo(u.Big(), v.Big())
	return From64(q.Uint64())
}

// Float64 returns the nearest binary floating-point number to u,
// rounded half to even.
// The result may lose precision for values above 2^53.
func (u Uint128) Float64() float64 {
	if u.Hi == 0 {
		return float64(u.Lo)
	}
	f, _ := new(big.Float).SetInt(u.Big()).Float64()
	return f
}

// String method implements the [fmt.Stringer] interface and returns
// the value in base 10.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.Big().String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUint128].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Uint128) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUint128(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Uint128{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Uint128.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and bare numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Uint128) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return u.UnmarshalText(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is written as a quoted string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

package pairrate_test

import (
	"errors"
	"fmt"

	"github.com/govalues/pairrate"
)

// In this example, a swap engine quotes both directions of a trade between
// a token with 18 decimals and a token with 6 decimals.
func Example_swapQuote() {
	weth := pairrate.Pair{Base: "WETH", Quote: "USDC"}
	r, err := pairrate.New(
		weth,
		pairrate.Rate{In: pairrate.From64(1), Out: pairrate.From64(3000)},
		pairrate.Decimals{In: 18, Out: 6},
	)
	if err != nil {
		panic(err)
	}

	// 1.5 WETH in, USDC out
	in := pairrate.MustParseUint128("1500000000000000000")
	out, err := r.OutputAmount(in)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v WETH units -> %v USDC units\n", in, out)

	// 100 USDC out, WETH in
	out = pairrate.MustParseUint128("100000000")
	in, err = r.InputAmount(out)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v WETH units <- %v USDC units\n", in, out)

	// Output:
	// 1500000000000000000 WETH units -> 4500000000 USDC units
	// 33333000000000000 WETH units <- 100000000 USDC units
}

func ExampleNew() {
	r, err := pairrate.New(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(10), Out: pairrate.From64(19)},
		pairrate.Decimals{In: 24, Out: 24},
	)
	fmt.Println(r, err)
	// Output: TOKEN_A/TOKEN_B 10:19 (24/24) <nil>
}

func ExampleNew_error() {
	_, err := pairrate.New(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(0), Out: pairrate.From64(1)},
		pairrate.Decimals{In: 18, Out: 18},
	)
	fmt.Println(err)
	fmt.Println(errors.Is(err, pairrate.ErrRateOutOfRange))
	// Output:
	// validating TOKEN_A/TOKEN_B rate: input rate 0 is below minimum 1: rate out of range
	// true
}

func ExampleDefault() {
	r := pairrate.Default()
	fmt.Println(r, r.IsValid())
	// Output: TOKEN_A/TOKEN_B 1:1 (18/18) true
}

func ExamplePairRate_OutputAmount() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(10), Out: pairrate.From64(19)},
		pairrate.Decimals{In: 24, Out: 24},
	)
	fmt.Println(r.OutputAmount(pairrate.MustParseUint128("200000000000000000000000000")))
	// Output: 380000000000000000000000000 <nil>
}

func ExamplePairRate_OutputAmount_underflow() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(1), Out: pairrate.From64(1)},
		pairrate.Decimals{In: 24, Out: 18},
	)
	_, err := r.OutputAmount(pairrate.From64(999999))
	fmt.Println(errors.Is(err, pairrate.ErrResultUnderflowedToZero))
	// Output: true
}

func ExamplePairRate_InputAmount() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(1), Out: pairrate.From64(2)},
		pairrate.Decimals{In: 24, Out: 18},
	)
	fmt.Println(r.InputAmount(pairrate.MustParseUint128("2000000000000000000")))
	// Output: 1000000000000000000000000 <nil>
}

func ExamplePairRate_RateAndDecimals() {
	r := pairrate.Default()
	rate, dec := r.RateAndDecimals()
	fmt.Println(rate.In, rate.Out, dec.In, dec.Out)
	// Output: 1 1 18 18
}

func ExamplePairRate_HumanRate() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(2), Out: pairrate.From64(5)},
		pairrate.Decimals{In: 18, Out: 18},
	)
	fmt.Println(r.HumanRate())
	// Output: 2.5
}

func ExamplePairRate_Price() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(1), Out: pairrate.From64(2)},
		pairrate.Decimals{In: 24, Out: 18},
	)
	fmt.Println(r.Price())
	// Output: 2000000 <nil>
}

func ExamplePairRate_Inv() {
	r := pairrate.MustNew(
		pairrate.Pair{Base: "TOKEN_A", Quote: "TOKEN_B"},
		pairrate.Rate{In: pairrate.From64(10), Out: pairrate.From64(19)},
		pairrate.Decimals{In: 24, Out: 18},
	)
	fmt.Println(r.Inv())
	// Output: TOKEN_B/TOKEN_A 19:10 (18/24)
}

func ExamplePairRate_Format() {
	r := pairrate.Default()
	fmt.Printf("%v\n", r)
	fmt.Printf("%q\n", r)
	fmt.Printf("%c\n", r)
	// Output:
	// TOKEN_A/TOKEN_B 1:1 (18/18)
	// "TOKEN_A/TOKEN_B 1:1 (18/18)"
	// TOKEN_A/TOKEN_B
}

func ExampleRescale() {
	a := pairrate.MustParseUint128("1234567890123456789012345")
	fmt.Println(pairrate.Rescale(a, 24, 18))
	fmt.Println(pairrate.Rescale(a, 24, 30))
	// Output:
	// 1234567890123456789 <nil>
	// 1234567890123456789012345000000 <nil>
}

func ExampleParseUint128() {
	fmt.Println(pairrate.ParseUint128("340282366920938463463374607431768211455"))
	// Output: 340282366920938463463374607431768211455 <nil>
}

func ExampleUint128_CheckedMul() {
	a := pairrate.MustParseUint128("18446744073709551616")
	fmt.Println(a.CheckedMul(a))
	fmt.Println(a.CheckedMul(pairrate.From64(2)))
	// Output:
	// 0 false
	// 36893488147419103232 true
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/govalues/pairrate"
	"github.com/govalues/pairrate/internal/units"
)

// run converts the configured amount and writes the quote to w.
func run(cfg config, log zerolog.Logger, w io.Writer) error {

	rateIn, err := pairrate.ParseUint128(cfg.RateIn)
	if err != nil {
		return fmt.Errorf("could not parse input rate: %w", err)
	}
	rateOut, err := pairrate.ParseUint128(cfg.RateOut)
	if err != nil {
		return fmt.Errorf("could not parse output rate: %w", err)
	}

	r, err := pairrate.New(
		pairrate.Pair{Base: cfg.Base, Quote: cfg.Quote},
		pairrate.Rate{In: rateIn, Out: rateOut},
		pairrate.Decimals{In: cfg.BaseDecimals, Out: cfg.QuoteDecimals},
	)
	if err != nil {
		return fmt.Errorf("could not create pair rate: %w", err)
	}

	// The given amount is on the base side for "out" and on the quote side for "in".
	givenDecimals := cfg.BaseDecimals
	if cfg.Side == "in" {
		givenDecimals = cfg.QuoteDecimals
	}

	var given pairrate.Uint128
	if cfg.Units {
		given, err = units.Parse(cfg.Amount, givenDecimals)
	} else {
		given, err = pairrate.ParseUint128(cfg.Amount)
	}
	if err != nil {
		return fmt.Errorf("could not parse amount: %w", err)
	}

	log.Debug().
		Str("pair", r.Pair().String()).
		Str("rate_in", rateIn.String()).
		Str("rate_out", rateOut.String()).
		Uint8("base_decimals", cfg.BaseDecimals).
		Uint8("quote_decimals", cfg.QuoteDecimals).
		Str("side", cfg.Side).
		Str("amount", given.String()).
		Msg("computing quote")

	var other pairrate.Uint128
	switch cfg.Side {
	case "in":
		other, err = r.InputAmount(given)
	default:
		other, err = r.OutputAmount(given)
	}
	if err != nil {
		return fmt.Errorf("could not convert amount: %w", err)
	}

	log.Debug().
		Str("pair", r.Pair().String()).
		Str("given", given.String()).
		Str("result", other.String()).
		Msg("quote computed")

	price := strconv.FormatFloat(r.HumanRate(), 'g', -1, 64)
	p, err := r.Price()
	if err == nil {
		price = p.String()
	} else {
		log.Debug().Err(err).Msg("falling back to approximate rate")
	}

	baseAmount, quoteAmount := given, other
	if cfg.Side == "in" {
		baseAmount, quoteAmount = other, given
	}

	fmt.Fprintf(w, "pair: %v\n", r)
	fmt.Fprintf(w, "rate: %v\n", price)
	fmt.Fprintf(w, "in:   %v %v (%v raw)\n", units.Format(baseAmount, cfg.BaseDecimals), cfg.Base, humanize.BigComma(baseAmount.Big()))
	fmt.Fprintf(w, "out:  %v %v (%v raw)\n", units.Format(quoteAmount, cfg.QuoteDecimals), cfg.Quote, humanize.BigComma(quoteAmount.Big()))

	return nil
}

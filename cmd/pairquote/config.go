package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PAIRQUOTE"

type config struct {
	Base          string
	Quote         string
	RateIn        string
	RateOut       string
	BaseDecimals  uint8
	QuoteDecimals uint8
	Amount        string
	Units         bool
	Side          string
	LogLevel      zerolog.Level
}

// loadConfig parses command line flags and fills every flag that was not
// given on the command line from the PAIRQUOTE_* environment variables.
func loadConfig(args []string) (config, error) {

	flags := pflag.NewFlagSet("pairquote", pflag.ContinueOnError)

	flags.StringP("base", "b", "TOKEN_A", "label of the token being exchanged")
	flags.StringP("quote", "q", "TOKEN_B", "label of the token obtained in exchange")
	flags.String("rate-in", "1", "raw units of the base token in the rate")
	flags.String("rate-out", "1", "raw units of the quote token in the rate")
	flags.Uint8("base-decimals", 18, "number of fractional digits of the base token")
	flags.Uint8("quote-decimals", 18, "number of fractional digits of the quote token")
	flags.StringP("amount", "a", "", "amount to convert, in raw units unless --units is set")
	flags.BoolP("units", "u", false, "amount is given in whole units, like 1.5")
	flags.StringP("side", "s", "out", "out: amount of base in, quote amount out; in: amount of quote out, base amount in")
	flags.StringP("log-level", "l", "info", "log output level")

	err := flags.Parse(args)
	if err != nil {
		return config{}, fmt.Errorf("could not parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err = v.BindPFlags(flags)
	if err != nil {
		return config{}, fmt.Errorf("could not bind flags: %w", err)
	}

	baseDecimals, err := decimalsFrom(v, "base-decimals")
	if err != nil {
		return config{}, err
	}
	quoteDecimals, err := decimalsFrom(v, "quote-decimals")
	if err != nil {
		return config{}, err
	}
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return config{}, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := config{
		Base:          v.GetString("base"),
		Quote:         v.GetString("quote"),
		RateIn:        v.GetString("rate-in"),
		RateOut:       v.GetString("rate-out"),
		BaseDecimals:  baseDecimals,
		QuoteDecimals: quoteDecimals,
		Amount:        v.GetString("amount"),
		Units:         v.GetBool("units"),
		Side:          v.GetString("side"),
		LogLevel:      level,
	}

	switch {
	case cfg.Amount == "":
		return config{}, fmt.Errorf("missing amount")
	case cfg.Side != "in" && cfg.Side != "out":
		return config{}, fmt.Errorf("invalid side %q, want \"in\" or \"out\"", cfg.Side)
	}

	return cfg, nil
}

// decimalsFrom reads a decimal count in base 10. Values that are not
// integers in [0, 255] are rejected instead of being read as 0.
func decimalsFrom(v *viper.Viper, key string) (uint8, error) {
	s := v.GetString(key)
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q: %w", key, s, err)
	}
	return uint8(n), nil
}

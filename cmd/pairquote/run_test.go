package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/pairrate"
)

func wethUSDC(side, amount string, units bool) config {
	return config{
		Base:          "WETH",
		Quote:         "USDC",
		RateIn:        "1",
		RateOut:       "3000",
		BaseDecimals:  18,
		QuoteDecimals: 6,
		Amount:        amount,
		Units:         units,
		Side:          side,
		LogLevel:      zerolog.InfoLevel,
	}
}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		cfg  config
		want []string
	}{
		"output in units": {
			cfg: wethUSDC("out", "1.5", true),
			want: []string{
				"pair: WETH/USDC 1:3000 (18/6)\n",
				"in:   1.5 WETH (1,500,000,000,000,000,000 raw)\n",
				"out:  4500 USDC (4,500,000,000 raw)\n",
			},
		},
		"output raw": {
			cfg: wethUSDC("out", "1000000000000", false),
			want: []string{
				"in:   0.000001 WETH (1,000,000,000,000 raw)\n",
				"out:  0.003 USDC (3,000 raw)\n",
			},
		},
		"input in units": {
			cfg: wethUSDC("in", "100", true),
			want: []string{
				"in:   0.033333 WETH (33,333,000,000,000,000 raw)\n",
				"out:  100 USDC (100,000,000 raw)\n",
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tt.cfg, zerolog.Nop(), &buf)
			require.NoError(t, err)
			for _, line := range tt.want {
				assert.Contains(t, buf.String(), line)
			}
			assert.Contains(t, buf.String(), "rate: ")
		})
	}
}

func TestRun_Error(t *testing.T) {
	zeroRate := wethUSDC("out", "1", false)
	zeroRate.RateIn = "0"

	badRate := wethUSDC("out", "1", false)
	badRate.RateOut = "3e3"

	badDecimals := wethUSDC("out", "1", false)
	badDecimals.QuoteDecimals = 39

	tests := map[string]struct {
		cfg  config
		want error
	}{
		"zero rate":    {cfg: zeroRate, want: pairrate.ErrRateOutOfRange},
		"bad rate":     {cfg: badRate, want: pairrate.ErrInvalidUint128},
		"bad decimals": {cfg: badDecimals, want: pairrate.ErrDecimalsExceedMax},
		"bad amount":   {cfg: wethUSDC("out", "abc", false), want: pairrate.ErrInvalidUint128},
		"zero amount":  {cfg: wethUSDC("out", "0", false), want: pairrate.ErrAmountZero},
		"underflow":    {cfg: wethUSDC("out", "1", false), want: pairrate.ErrResultUnderflowedToZero},
		"too precise":  {cfg: wethUSDC("in", "0.0000001", true)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tt.cfg, zerolog.Nop(), &buf)
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			}
			assert.Empty(t, buf.String())
		})
	}
}

package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	if err != nil {
		log.Error().Err(err).Msg("could not load configuration")
		os.Exit(1)
	}

	log = log.Level(cfg.LogLevel)

	err = run(cfg, log, os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("could not compute quote")
		os.Exit(1)
	}

	os.Exit(0)
}

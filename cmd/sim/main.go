package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bourse/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	verbose := flag.Bool("v", false, "log individual trades")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(*configPath)
		if err != nil {
			log.Error().Err(err).Str("path", *configPath).Msg("unable to load configuration")
			os.Exit(1)
		}
	}

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		log.Error().Err(err).Msg("unable to build runner")
		os.Exit(1)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}

	log.Info().
		Int("submitted", summary.Submitted).
		Int("rejected", summary.Rejected).
		Int("trades", summary.Trades).
		Int("evictions", summary.Evictions).
		Int64("overhead", summary.Overhead).
		Msg("run complete")

	for account, balance := range summary.Balances {
		log.Info().
			Str("account", account).
			Int64("money", balance.Money).
			Int64("stock", balance.Stock).
			Msg("final balance")
	}
}

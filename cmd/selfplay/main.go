package main

// selfplay runs evaluation games with learning disabled: either the
// learned network (via -load) or, with no weights, the greedy
// heuristic baseline. Games fan out over -threads workers.

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"td2048/agent"
	"td2048/automatic"
	"td2048/config"
	"td2048/ntuple"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not parse config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal...")
		cancel()
	}()

	var summary automatic.Summary
	if cfg.LoadPath != "" {
		net := ntuple.NewNetwork()
		if err := net.Load(cfg.LoadPath); err != nil {
			log.Fatal().Err(err).Msg("could not load weights")
		}
		var err error
		summary, err = automatic.StartEvaluationGames(ctx, net, cfg.Seed,
			cfg.Games, cfg.Threads, cfg.LogFile)
		if err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("evaluation failed")
		}
	} else {
		log.Info().Msg("no weights given; running the heuristic baseline")
		runner := automatic.NewGameRunner(&agent.HeuristicPlayer{},
			agent.NewRandomEnv(cfg.Seed), nil)
		results := make([]automatic.Result, 0, cfg.Games)
		for i := 0; i < cfg.Games && ctx.Err() == nil; i++ {
			results = append(results, runner.PlayEpisode())
		}
		summary = automatic.Summarize(results)
	}

	log.Info().
		Int("episodes", summary.Episodes).
		Float64("mean-score", summary.MeanScore).
		Int("max-score", summary.MaxScore).
		Int("max-tile", summary.MaxTile).
		Msg("evaluation finished")
}

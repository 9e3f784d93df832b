package main

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

	net := ntuple.NewNetwork()
	if cfg.LoadPath != "" {
		if err := net.Load(cfg.LoadPath); err != nil {
			log.Fatal().Err(err).Msg("could not load weights")
		}
	} else if !cfg.InitWeights {
		log.Info().Msg("no -load or -init given; starting from zero tables")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("got quit signal...")
		cancel()
	}()

	var logchan chan string
	logDone := make(chan struct{})
	if cfg.LogFile != "" {
		logfile, err := os.Create(cfg.LogFile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create logfile")
		}
		logchan = make(chan string, 100)
		go func() {
			defer close(logDone)
			logfile.WriteString("episode,score,turns,maxtile\n")
			for msg := range logchan {
				logfile.WriteString(msg)
			}
			logfile.Close()
		}()
	} else {
		close(logDone)
	}

	player := agent.NewTDAgent(net, cfg.Alpha)
	env := agent.NewRandomEnv(cfg.Seed)

	log.Info().
		Int("games", cfg.Games).
		Float64("alpha", cfg.Alpha).
		Uint64("seed", cfg.Seed).
		Msg("starting training")

	results, err := automatic.Train(ctx, player, env, cfg.Games, 1000, logchan)
	if logchan != nil {
		close(logchan)
	}
	<-logDone
	if err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("training failed")
	}

	s := automatic.Summarize(results)
	log.Info().
		Int("episodes", s.Episodes).
		Float64("mean-score", s.MeanScore).
		Int("max-score", s.MaxScore).
		Int("max-tile", s.MaxTile).
		Msg("training finished")

	if cfg.SavePath != "" {
		if err := net.Save(cfg.SavePath); err != nil {
			log.Fatal().Err(err).Msg("could not save weights")
		}
	}
}

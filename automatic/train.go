package automatic

// Training and evaluation drivers. Training is strictly sequential:
// the n-tuple network has a single writer, the TD pass at each episode
// close. Evaluation games never write, so they may fan out over
// several workers sharing one frozen network.

import (
	"context"
	"expvar"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"td2048/agent"
	"td2048/ntuple"
)

var (
	EpisodeCounter *expvar.Int
	IsPlaying      *expvar.Int
)

func init() {
	EpisodeCounter = expvar.NewInt("episodeCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Summary aggregates episode results.
type Summary struct {
	Episodes  int
	MeanScore float64
	MaxScore  int
	MaxTile   int
}

func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	total := lo.SumBy(results, func(r Result) int { return r.Score })
	best := lo.MaxBy(results, func(a, b Result) bool { return a.Score > b.Score })
	top := lo.MaxBy(results, func(a, b Result) bool { return a.MaxRank > b.MaxRank })
	return Summary{
		Episodes:  len(results),
		MeanScore: float64(total) / float64(len(results)),
		MaxScore:  best.Score,
		MaxTile:   1 << top.MaxRank,
	}
}

// Train plays numEpisodes against a single learning agent, one at a
// time, logging a progress summary every reportEvery episodes. The
// returned results cover the whole run.
func Train(ctx context.Context, player *agent.TDAgent, env agent.Agent,
	numEpisodes, reportEvery int, logchan chan string) ([]Result, error) {

	if reportEvery <= 0 {
		reportEvery = 1000
	}
	runner := NewGameRunner(player, env, logchan)
	results := make([]Result, 0, numEpisodes)
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)

	for i := 1; i <= numEpisodes; i++ {
		select {
		case <-ctx.Done():
			log.Info().Msgf("Got stop signal after %v episodes, exiting...", i-1)
			return results, ctx.Err()
		default:
		}
		results = append(results, runner.PlayEpisode())
		EpisodeCounter.Add(1)
		if i%reportEvery == 0 {
			s := Summarize(results[i-reportEvery:])
			log.Info().
				Int("episodes", i).
				Float64("mean-score", s.MeanScore).
				Int("max-score", s.MaxScore).
				Int("max-tile", s.MaxTile).
				Msg("training progress")
		}
	}
	return results, nil
}

// StartEvaluationGames plays numGames with learning disabled, spread
// over the given number of worker goroutines. Every worker gets its
// own read-only view of the shared network and its own deterministically
// derived environment seed, so runs are reproducible for a fixed base
// seed and thread count.
func StartEvaluationGames(ctx context.Context, net *ntuple.Network, baseSeed uint64,
	numGames, threads int, outputFilename string) (Summary, error) {

	if threads < 1 {
		threads = 1
	}
	var logfile *os.File
	logChan := make(chan string, 100)
	logDone := make(chan struct{})
	if outputFilename != "" {
		var err error
		logfile, err = os.Create(outputFilename)
		if err != nil {
			return Summary{}, err
		}
		go func() {
			defer close(logDone)
			logfile.WriteString("episode,score,turns,maxtile\n")
			for msg := range logChan {
				logfile.WriteString(msg)
			}
			logfile.Close()
		}()
	} else {
		go func() {
			defer close(logDone)
			for range logChan {
			}
		}()
	}

	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)
	results := make(chan Result, 100)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		w := w
		games := numGames / threads
		if w < numGames%threads {
			games++
		}
		g.Go(func() error {
			player := agent.NewTDAgent(net, 0)
			env := agent.NewRandomEnv(baseSeed + uint64(w))
			runner := NewGameRunner(player, env, logChan)
			for i := 0; i < games; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- runner.PlayEpisode():
				}
			}
			return nil
		})
	}

	collected := make([]Result, 0, numGames)
	collectDone := make(chan struct{})
	go func() {
		defer close(collectDone)
		for r := range results {
			collected = append(collected, r)
		}
	}()

	err := g.Wait()
	close(results)
	<-collectDone
	close(logChan)
	<-logDone

	if err != nil {
		return Summarize(collected), fmt.Errorf("evaluation run: %w", err)
	}
	return Summarize(collected), nil
}

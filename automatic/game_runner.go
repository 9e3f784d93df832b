// Package automatic contains the logic for playing out full episodes
// automatically: a player agent against the random tile environment,
// either one at a time for training or many in parallel for
// evaluation.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"td2048/agent"
	"td2048/board"
	"td2048/move"
)

// initialTiles is how many tiles the environment drops before the
// player's first turn.
const initialTiles = 2

// GameRunner plays episodes between one player and one environment.
type GameRunner struct {
	player agent.Agent
	env    agent.Agent

	board   board.Board
	score   int
	turns   int
	episode int
	logchan chan string
}

// Result summarizes one finished episode.
type Result struct {
	Episode int
	Score   int
	Turns   int
	MaxRank int
}

// NewGameRunner instantiates a runner. logchan may be nil; when set,
// one CSV line per episode is sent on it.
func NewGameRunner(player, env agent.Agent, logchan chan string) *GameRunner {
	return &GameRunner{player: player, env: env, logchan: logchan}
}

// PlayEpisode runs one full game from an empty board until the player
// has no legal slide, then closes both agents' episodes (which is
// where a learning player runs its update pass).
func (r *GameRunner) PlayEpisode() Result {
	r.board = board.Board{}
	r.score = 0
	r.turns = 0
	r.episode++

	r.player.OpenEpisode()
	r.env.OpenEpisode()

	for i := 0; i < initialTiles; i++ {
		r.applyMove(r.env.TakeAction(&r.board))
	}
	for {
		m := r.player.TakeAction(&r.board)
		if m.Action() == move.MoveTypePass {
			break
		}
		reward := r.applyMove(m)
		r.score += reward
		r.turns++

		tile := r.env.TakeAction(&r.board)
		if tile.Action() == move.MoveTypePass {
			break
		}
		r.applyMove(tile)
	}

	r.player.CloseEpisode()
	r.env.CloseEpisode()

	res := Result{Episode: r.episode, Score: r.score, Turns: r.turns, MaxRank: r.board.MaxRank()}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v\n", res.Episode, res.Score, res.Turns, 1<<res.MaxRank)
	}
	return res
}

func (r *GameRunner) applyMove(m *move.Move) int {
	reward := m.Apply(&r.board)
	if reward == board.IllegalMove {
		// Agents only return legal moves; this is a bug in the agent.
		log.Error().Msgf("agent returned illegal move %v", m)
		return 0
	}
	return reward
}

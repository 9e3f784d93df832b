package agent

import (
	"lukechampine.com/frand"

	"td2048/board"
	"td2048/move"
)

// RandomEnv is the tile-insertion environment: after each player
// slide it drops a new tile on a random empty cell. 90% of tiles are
// rank 1 (a 2) and 10% are rank 2 (a 4).
type RandomEnv struct {
	rng *frand.RNG
}

// NewRandomEnv creates an environment seeded deterministically.
func NewRandomEnv(seed uint64) *RandomEnv {
	return &RandomEnv{rng: newRNG(seed)}
}

func (e *RandomEnv) OpenEpisode()  {}
func (e *RandomEnv) CloseEpisode() {}

// TakeAction places a tile on a uniformly random empty cell, or passes
// when the board is full.
func (e *RandomEnv) TakeAction(b *board.Board) *move.Move {
	empties := b.Empties()
	if len(empties) == 0 {
		return move.NewPass()
	}
	cell := empties[e.rng.Intn(len(empties))]
	rank := 1
	if e.rng.Intn(10) == 0 {
		rank = 2
	}
	return move.NewPlace(cell, rank)
}

// Package agent defines the agent roles that play the game: the
// learning player, the random tile environment, and a fixed-heuristic
// player. Roles are composed through the Agent interface rather than
// any kind of hierarchy.
package agent

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"td2048/board"
	"td2048/move"
)

// Agent is the capability interface shared by players and
// environments. TakeAction must not mutate the passed board; any
// simulation happens on private copies. An agent with nothing to do
// returns the pass move.
type Agent interface {
	OpenEpisode()
	CloseEpisode()
	TakeAction(b *board.Board) *move.Move
}

// newRNG builds a deterministic generator from a 64-bit seed.
func newRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

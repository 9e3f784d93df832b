package agent

import (
	"math"

	"td2048/board"
	"td2048/move"
	"td2048/ntuple"
)

// Transition is one recorded turn: the afterstate the chosen slide
// produced and the immediate reward it earned.
type Transition struct {
	After  board.Board
	Reward int
}

// TDAgent selects slides by one-step lookahead over the n-tuple
// network and learns from each finished episode with a backward TD(0)
// pass. It records its own transitions, so it must take exactly one
// action per game turn between OpenEpisode and CloseEpisode.
type TDAgent struct {
	net        *ntuple.Network
	alpha      float64
	trajectory []Transition
}

// NewTDAgent wraps a network with a learning rate. An alpha of zero
// disables learning entirely; the agent then plays greedily against
// the frozen network and CloseEpisode does nothing.
func NewTDAgent(net *ntuple.Network, alpha float64) *TDAgent {
	return &TDAgent{net: net, alpha: alpha}
}

// Network returns the underlying weight tables.
func (a *TDAgent) Network() *ntuple.Network {
	return a.net
}

// OpenEpisode discards the previous episode's trajectory. The close of
// an episode leaves the trajectory in place, so this must run before
// the first action of every episode.
func (a *TDAgent) OpenEpisode() {
	a.trajectory = a.trajectory[:0]
}

// CloseEpisode runs the TD(0) backward pass over the recorded
// trajectory. No-op when the trajectory is empty or alpha is zero.
func (a *TDAgent) CloseEpisode() {
	if len(a.trajectory) == 0 || a.alpha == 0 {
		return
	}
	a.learn()
}

// TakeAction picks the best slide for the given position and records
// the resulting transition. Returns the pass move when no slide is
// legal.
func (a *TDAgent) TakeAction(b *board.Board) *move.Move {
	m, tr, ok := a.SelectSlide(b)
	if ok {
		a.trajectory = append(a.trajectory, tr)
	}
	return m
}

// SelectSlide simulates all four directions on private copies and
// returns the move maximizing immediate reward plus the afterstate's
// value estimate, together with that transition. Direction order is
// fixed (up, right, down, left) and comparison is strict, so the
// earlier direction wins ties. ok is false, with a pass move, when no
// direction is legal; the board itself is never modified. Recording is
// the caller's responsibility (TakeAction does it for normal play).
func (a *TDAgent) SelectSlide(b *board.Board) (m *move.Move, tr Transition, ok bool) {
	bestScore := math.Inf(-1)
	for d := board.Up; d <= board.Left; d++ {
		after := *b
		reward := after.Slide(d)
		if reward == board.IllegalMove {
			continue
		}
		score := float64(reward) + a.net.Evaluate(&after)
		if score > bestScore {
			bestScore = score
			m = move.NewSlide(d)
			tr = Transition{After: after, Reward: reward}
			ok = true
		}
	}
	if !ok {
		m = move.NewPass()
	}
	return m, tr, ok
}

// learn sweeps the trajectory backward. The terminal afterstate is
// pulled toward zero; every earlier afterstate is pulled toward its
// successor's reward plus the successor's live value estimate, so each
// update sees the effect of the later ones in the same pass.
func (a *TDAgent) learn() {
	last := len(a.trajectory) - 1
	a.net.Adjust(&a.trajectory[last].After, 0, a.alpha)
	for t := last - 1; t >= 0; t-- {
		next := &a.trajectory[t+1]
		target := float64(next.Reward) + a.net.Evaluate(&next.After)
		a.net.Adjust(&a.trajectory[t].After, target, a.alpha)
	}
}

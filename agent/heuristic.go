package agent

import (
	"td2048/board"
	"td2048/move"
)

// slideWeights biases the greedy player toward building along the top
// edge: rewards are scaled per direction before comparison.
var slideWeights = map[board.Direction]int{
	board.Up:    6,
	board.Right: 7,
	board.Down:  3,
	board.Left:  3,
}

// heuristicOrder is the direction order ties fall back on.
var heuristicOrder = [4]board.Direction{board.Up, board.Left, board.Right, board.Down}

// HeuristicPlayer is a fixed player with no learning: it picks the
// legal slide with the highest direction-weighted immediate reward.
// Useful as a baseline opponent for benchmarking the learned agent.
type HeuristicPlayer struct{}

func (p *HeuristicPlayer) OpenEpisode()  {}
func (p *HeuristicPlayer) CloseEpisode() {}

func (p *HeuristicPlayer) TakeAction(b *board.Board) *move.Move {
	best := -1
	var bestDir board.Direction
	for _, d := range heuristicOrder {
		sim := *b
		reward := sim.Slide(d)
		if reward == board.IllegalMove {
			continue
		}
		if weighted := reward * slideWeights[d]; weighted > best {
			best = weighted
			bestDir = d
		}
	}
	if best == -1 {
		return move.NewPass()
	}
	return move.NewSlide(bestDir)
}

// Package move defines the opaque action values exchanged between
// agents and the episode runner.
package move

import (
	"fmt"

	"td2048/board"
)

// MoveType is a type of move; a slide, a tile placement, or a pass.
type MoveType uint8

const (
	MoveTypeSlide MoveType = iota
	MoveTypePlace
	MoveTypePass
)

// Move is a single action taken by an agent. The zero value is not
// meaningful; use the constructors.
type Move struct {
	action MoveType
	dir    board.Direction
	cell   int
	rank   int
}

// NewSlide creates a slide move in the given direction.
func NewSlide(d board.Direction) *Move {
	return &Move{action: MoveTypeSlide, dir: d}
}

// NewPlace creates a tile placement on the given cell.
func NewPlace(cell, rank int) *Move {
	return &Move{action: MoveTypePlace, cell: cell, rank: rank}
}

// NewPass creates the null move, returned when an agent has no legal
// action.
func NewPass() *Move {
	return &Move{action: MoveTypePass}
}

func (m *Move) Action() MoveType {
	return m.action
}

// Direction is only meaningful for slide moves.
func (m *Move) Direction() board.Direction {
	return m.dir
}

// Cell is only meaningful for placement moves.
func (m *Move) Cell() int {
	return m.cell
}

// Rank is only meaningful for placement moves.
func (m *Move) Rank() int {
	return m.rank
}

// Apply plays the move on the given board and returns the score
// gained. Placements and passes score zero; an illegal slide returns
// board.IllegalMove.
func (m *Move) Apply(b *board.Board) int {
	switch m.action {
	case MoveTypeSlide:
		return b.Slide(m.dir)
	case MoveTypePlace:
		b.Place(m.cell, m.rank)
	}
	return 0
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypeSlide:
		return fmt.Sprintf("<slide %v>", m.dir)
	case MoveTypePlace:
		return fmt.Sprintf("<place cell: %d tile: %d>", m.cell, 1<<m.rank)
	case MoveTypePass:
		return "<pass>"
	}
	return "<invalid move>"
}

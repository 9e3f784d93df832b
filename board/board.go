// Package board implements the 4x4 grid for a tile-merging game. Tiles
// are stored as log-encoded ranks; rank 0 is an empty cell and rank r
// holds the tile 2^r.
package board

import (
	"fmt"
	"strings"
)

const (
	// Dim is the side length of the grid.
	Dim = 4
	// NumCells is the total cell count.
	NumCells = Dim * Dim
	// IllegalMove is the sentinel reward returned by Slide when the
	// slide leaves the board unchanged.
	IllegalMove = -1
)

// Direction is one of the four slide directions.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("dir(%d)", uint8(d))
}

// Board is a value type; copying one copies the whole grid. Cells are
// indexed row-major, 0 through 15.
type Board [NumCells]int

// slideLines lists, per direction, the four lines of cell indices in
// the order tiles compact toward the destination edge.
var slideLines = [4][Dim][Dim]int{
	Up:    {{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15}},
	Right: {{3, 2, 1, 0}, {7, 6, 5, 4}, {11, 10, 9, 8}, {15, 14, 13, 12}},
	Down:  {{12, 8, 4, 0}, {13, 9, 5, 1}, {14, 10, 6, 2}, {15, 11, 7, 3}},
	Left:  {{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15}},
}

// Cell returns the rank at the given cell index.
func (b *Board) Cell(i int) int {
	return b[i]
}

// Place puts a tile of the given rank on a cell. It does not check
// that the cell is empty; callers place tiles only on empty cells.
func (b *Board) Place(cell, rank int) {
	b[cell] = rank
}

// Slide compacts and merges tiles toward the given edge. It returns
// the score gained (the sum of the values of tiles created by merges),
// or IllegalMove if no tile moved. Two equal ranks r merge into a
// single tile of rank r+1 worth 1<<(r+1); a tile created by a merge
// does not merge again in the same slide.
func (b *Board) Slide(d Direction) int {
	reward := 0
	moved := false
	for _, line := range slideLines[d] {
		var ranks [Dim]int
		n := 0
		for _, idx := range line {
			if b[idx] != 0 {
				ranks[n] = b[idx]
				n++
			}
		}
		var out [Dim]int
		o := 0
		for i := 0; i < n; i++ {
			if i+1 < n && ranks[i] == ranks[i+1] {
				out[o] = ranks[i] + 1
				reward += 1 << (ranks[i] + 1)
				i++
			} else {
				out[o] = ranks[i]
			}
			o++
		}
		for j, idx := range line {
			if b[idx] != out[j] {
				b[idx] = out[j]
				moved = true
			}
		}
	}
	if !moved {
		return IllegalMove
	}
	return reward
}

// Empties returns the indices of all empty cells.
func (b *Board) Empties() []int {
	var cells []int
	for i, r := range b {
		if r == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// MaxRank returns the rank of the largest tile on the board.
func (b *Board) MaxRank() int {
	max := 0
	for _, r := range b {
		if r > max {
			max = r
		}
	}
	return max
}

// GameOver reports whether no slide direction is legal. It works on a
// copy, so the receiver is not modified.
func (b *Board) GameOver() bool {
	for d := Up; d <= Left; d++ {
		sim := *b
		if sim.Slide(d) != IllegalMove {
			return false
		}
	}
	return true
}

// ToDisplayText gives a human-readable rendering of the board with
// tile values (not ranks), for logs and debugging.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("+------------------------+\n")
	for row := 0; row < Dim; row++ {
		sb.WriteString("|")
		for col := 0; col < Dim; col++ {
			rank := b[row*Dim+col]
			if rank == 0 {
				sb.WriteString("     .")
			} else {
				fmt.Fprintf(&sb, "%6d", 1<<rank)
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("+------------------------+")
	return sb.String()
}

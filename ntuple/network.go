// Package ntuple implements an n-tuple network value function over
// board afterstates. The network is a set of independent dense weight
// tables, one per tuple of cells; a board's value is the sum of one
// lookup per table.
package ntuple

import (
	"td2048/board"
)

const (
	// NumTuples is the number of feature groups; the four rows and the
	// four columns of the grid.
	NumTuples = 8
	// TupleSize is the number of cells covered by each tuple.
	TupleSize = 4
	// RankBase is the base of the positional feature encoding. It
	// bounds the addressable tile rank, accommodating exponents 0-24.
	RankBase = 25
	// TableSize is RankBase^TupleSize, the entry count of each table.
	TableSize = RankBase * RankBase * RankBase * RankBase
)

// tuples lists the cell indices covered by each feature group,
// most-significant cell first.
var tuples = [NumTuples][TupleSize]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{8, 9, 10, 11},
	{12, 13, 14, 15},
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
}

// Network holds the weight tables. Tables are mutated only by Adjust;
// Evaluate is a pure read, so a Network shared by several readers is
// safe as long as nothing adjusts it concurrently.
type Network struct {
	tables [NumTuples][]float64
}

// NewNetwork allocates a network with freshly zeroed tables.
func NewNetwork() *Network {
	n := &Network{}
	for i := range n.tables {
		n.tables[i] = make([]float64, TableSize)
	}
	return n
}

// index computes the feature index of tuple t for the given board: the
// base-25 positional encoding of the four covered cell ranks. Ranks
// are assumed in range; boards with tiles beyond rank 24 are a caller
// error.
func index(b *board.Board, t int) int {
	cells := &tuples[t]
	return ((b.Cell(cells[0])*RankBase+b.Cell(cells[1]))*RankBase+
		b.Cell(cells[2]))*RankBase + b.Cell(cells[3])
}

// Evaluate returns the value estimate for an afterstate: the sum over
// all tuples of the weight at that tuple's feature index.
func (n *Network) Evaluate(b *board.Board) float64 {
	v := 0.0
	for t := 0; t < NumTuples; t++ {
		v += n.tables[t][index(b, t)]
	}
	return v
}

// Adjust moves the board's value estimate toward target: the one
// whole-board error is scaled by alpha and the same delta is added to
// every tuple's addressed entry. The uniform per-tuple delta (rather
// than a per-tuple gradient) is a deliberate property of this network;
// keep it.
func (n *Network) Adjust(b *board.Board, target, alpha float64) {
	delta := alpha * (target - n.Evaluate(b))
	for t := 0; t < NumTuples; t++ {
		n.tables[t][index(b, t)] += delta
	}
}

package ntuple

import (
	"math"
	"testing"

	"github.com/matryer/is"

	"td2048/board"
)

func TestEvaluateSumsTupleLookups(t *testing.T) {
	is := is.New(t)

	b := board.Board{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	n := NewNetwork()
	is.Equal(n.Evaluate(&b), 0.0)

	// Seed exactly the entries this board addresses and check the sum.
	want := 0.0
	for ti := 0; ti < NumTuples; ti++ {
		n.tables[ti][index(&b, ti)] = float64(ti + 1)
		want += float64(ti + 1)
	}
	is.Equal(n.Evaluate(&b), want)

	// An all-empty board addresses entry 0 of every table, none of
	// which were touched above.
	other := board.Board{}
	is.Equal(n.Evaluate(&other), 0.0)
}

func TestFeatureIndexEncoding(t *testing.T) {
	is := is.New(t)

	b := board.Board{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	// First row tuple: base-25, most-significant cell first.
	is.Equal(index(&b, 0), ((1*25+2)*25+3)*25+4)
	// First column tuple covers cells 0, 4, 8, 12.
	is.Equal(index(&b, 4), ((1*25+5)*25+9)*25+13)

	// An empty board addresses entry 0 of every table; a board of
	// maximal ranks addresses the last entry.
	empty := board.Board{}
	maxed := board.Board{}
	for i := 0; i < board.NumCells; i++ {
		maxed.Place(i, RankBase-1)
	}
	for ti := 0; ti < NumTuples; ti++ {
		is.Equal(index(&empty, ti), 0)
		is.Equal(index(&maxed, ti), TableSize-1)
	}
}

func TestAdjustDistributesUniformDelta(t *testing.T) {
	is := is.New(t)

	b := board.Board{
		1, 1, 2, 3,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	n := NewNetwork()
	for ti := 0; ti < NumTuples; ti++ {
		n.tables[ti][index(&b, ti)] = 0.5
	}
	before := n.Evaluate(&b)
	is.Equal(before, 4.0)

	const alpha = 0.1
	target := 10.0
	n.Adjust(&b, target, alpha)

	// One whole-board error, the same delta on every table.
	delta := alpha * (target - before)
	for ti := 0; ti < NumTuples; ti++ {
		is.Equal(n.tables[ti][index(&b, ti)], 0.5+delta)
	}
	is.True(math.Abs(n.Evaluate(&b)-(before+NumTuples*delta)) < 1e-12)
}

func TestAdjustZeroAlphaIsNoOp(t *testing.T) {
	is := is.New(t)

	b := board.Board{}
	b.Place(3, 4)
	n := NewNetwork()
	for ti := 0; ti < NumTuples; ti++ {
		n.tables[ti][index(&b, ti)] = 1.25
	}
	n.Adjust(&b, 99, 0)
	for ti := 0; ti < NumTuples; ti++ {
		is.Equal(n.tables[ti][index(&b, ti)], 1.25)
	}
}

package ntuple

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"td2048/board"
)

func testBoards() []board.Board {
	return []board.Board{
		{},
		{1, 0, 0, 2, 0, 3, 0, 0, 0, 0, 4, 0, 5, 0, 0, 1},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9},
	}
}

func seededNetwork() *Network {
	n := NewNetwork()
	for t := range n.tables {
		for _, b := range testBoards() {
			bb := b
			n.tables[t][index(&bb, t)] = float64(t)*0.25 + 1
		}
	}
	return n
}

func TestRoundTrip(t *testing.T) {
	orig := seededNetwork()

	var buf bytes.Buffer
	require.NoError(t, orig.WriteTo(&buf))

	loaded := NewNetwork()
	require.NoError(t, loaded.ReadFrom(&buf))

	for _, b := range testBoards() {
		bb := b
		require.Equal(t, orig.Evaluate(&bb), loaded.Evaluate(&bb))
	}
}

func TestRoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.bin")
	orig := seededNetwork()
	require.NoError(t, orig.Save(path))

	loaded := NewNetwork()
	require.NoError(t, loaded.Load(path))
	for _, b := range testBoards() {
		bb := b
		require.Equal(t, orig.Evaluate(&bb), loaded.Evaluate(&bb))
	}
}

func TestLoadMissingFile(t *testing.T) {
	n := NewNetwork()
	require.Error(t, n.Load(filepath.Join(t.TempDir(), "nope.bin")))
}

func TestLoadWrongTableCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(3)))

	n := seededNetwork()
	b := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	before := n.Evaluate(&b)

	err := n.ReadFrom(&buf)
	require.ErrorIs(t, err, ErrMalformed)
	// A failed load must leave the store exactly as it was.
	require.Equal(t, before, n.Evaluate(&b))
}

func TestLoadTruncatedTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(NumTuples)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, make([]float64, 100)))

	n := seededNetwork()
	b := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	before := n.Evaluate(&b)

	err := n.ReadFrom(&buf)
	require.ErrorIs(t, err, ErrMalformed)
	require.Equal(t, before, n.Evaluate(&b))
}

func TestSaveToBadPath(t *testing.T) {
	n := NewNetwork()
	require.Error(t, n.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "w.bin")))
}

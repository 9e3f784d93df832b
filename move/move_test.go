package move

import (
	"testing"

	"github.com/matryer/is"

	"td2048/board"
)

func TestApply(t *testing.T) {
	is := is.New(t)

	b := board.Board{}
	is.Equal(NewPlace(3, 2).Apply(&b), 0)
	is.Equal(b.Cell(3), 2)

	b = board.Board{1, 1, 0, 0}
	is.Equal(NewSlide(board.Left).Apply(&b), 4)

	before := b
	is.Equal(NewPass().Apply(&b), 0)
	is.Equal(b, before)
}

func TestString(t *testing.T) {
	is := is.New(t)

	is.Equal(NewSlide(board.Up).String(), "<slide up>")
	is.Equal(NewPlace(7, 2).String(), "<place cell: 7 tile: 4>")
	is.Equal(NewPass().String(), "<pass>")
}

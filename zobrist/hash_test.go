package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/JulienBernou/gorhapsody/move"
)

func TestAddAndRemoveStone(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(19)

	cells := make([]move.Color, 19*19)
	h := z.Hash(cells)
	is.Equal(h, uint64(0))

	// add and remove a stone. The final hash should be the same as the
	// beginning hash.
	h1 := z.AddStone(h, move.Coord{Row: 3, Col: 3}, move.Black)
	h2 := z.AddStone(h1, move.Coord{Row: 3, Col: 3}, move.Black)
	is.Equal(h, h2)
	is.True(h1 != h2) // extremely unlikely to collide, but this is not technically always true.
}

func TestIncrementalMatchesFull(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(9)

	cells := make([]move.Color, 9*9)
	h := z.Hash(cells)

	stones := []struct {
		c     move.Coord
		color move.Color
	}{
		{move.Coord{Row: 0, Col: 0}, move.Black},
		{move.Coord{Row: 4, Col: 4}, move.White},
		{move.Coord{Row: 8, Col: 8}, move.Black},
	}
	for _, s := range stones {
		cells[s.c.Row*9+s.c.Col] = s.color
		h = z.AddStone(h, s.c, s.color)
	}
	is.Equal(h, z.Hash(cells))
}

func TestColorsHashDifferently(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(9)

	cells := make([]move.Color, 9*9)
	cells[40] = move.Black
	hb := z.Hash(cells)
	cells[40] = move.White
	hw := z.Hash(cells)
	is.True(hb != hw)
}

package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/JulienBernou/gorhapsody/move"
)

func TestGroupAt(t *testing.T) {
	is := is.New(t)
	b, err := FromPlainText(`
		. X X . .
		. X O O .
		. . . O .
		. . . . .
		. . . . .
	`)
	is.NoErr(err)

	g := b.GroupAt(move.Coord{Row: 0, Col: 1})
	is.Equal(g.Color, move.Black)
	is.Equal(g.Stones, []move.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}})
	// liberties: (0,0), (0,3), (1,0), (2,1)
	is.Equal(g.Liberties, []move.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 1, Col: 0}, {Row: 2, Col: 1}})

	g = b.GroupAt(move.Coord{Row: 2, Col: 3})
	is.Equal(g.Color, move.White)
	is.Equal(len(g.Stones), 3)
	is.Equal(len(g.Liberties), 5)

	is.Equal(b.GroupAt(move.Coord{Row: 4, Col: 4}), nil)
}

func TestGroupsFullScan(t *testing.T) {
	is := is.New(t)
	b, err := FromPlainText(`
		X . X . .
		. . . . .
		. O O . .
		. . . . .
		. . . . X
	`)
	is.NoErr(err)

	groups := b.Groups()
	is.Equal(len(groups), 4)

	// every occupied cell belongs to exactly one group of its color
	owner := map[move.Coord]int{}
	for i, g := range groups {
		for _, s := range g.Stones {
			_, dup := owner[s]
			is.True(!dup)
			owner[s] = i
			is.Equal(b.At(s), g.Color)
		}
	}
	is.Equal(len(owner), 4)
}

func TestGroupLibersetsMatchBoard(t *testing.T) {
	is := is.New(t)
	b, err := FromPlainText(`
		. X X O .
		X X O O .
		. X O . .
		. . . . .
		. . . . .
	`)
	is.NoErr(err)

	for _, g := range b.Groups() {
		// a group's liberty set equals the distinct empty cells adjacent
		// to its stones
		want := map[move.Coord]bool{}
		for _, s := range g.Stones {
			for _, n := range b.Neighbors(s) {
				if b.At(n) == move.Empty {
					want[n] = true
				}
			}
		}
		is.Equal(len(g.Liberties), len(want))
		for _, l := range g.Liberties {
			is.True(want[l])
		}
	}
}

func TestCommonLiberties(t *testing.T) {
	is := is.New(t)
	b, err := FromPlainText(`
		. . . . .
		. O . O .
		. O . O .
		. . . . .
		. . . . .
	`)
	is.NoErr(err)

	g1 := b.GroupAt(move.Coord{Row: 1, Col: 1})
	g2 := b.GroupAt(move.Coord{Row: 1, Col: 3})
	common := CommonLiberties(g1, g2)
	is.Equal(common, []move.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}})
}

func TestLibertiesOf(t *testing.T) {
	is := is.New(t)
	b, err := FromPlainText(`
		X . . . X
		. . . . .
		. . . . .
		. . . . .
		. . . . .
	`)
	is.NoErr(err)

	libs := b.LibertiesOf([]move.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 4}})
	is.Equal(libs, []move.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 3}, {Row: 1, Col: 0}, {Row: 1, Col: 4}})
}

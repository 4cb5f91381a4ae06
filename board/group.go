package board

import (
	"sort"

	"github.com/JulienBernou/gorhapsody/move"
)

// A Group is a maximal set of same-color stones connected by orthogonal
// adjacency, together with its liberties (the distinct empty points
// adjacent to any member stone). Groups are derived from the board on
// demand; they are never stored across moves.
type Group struct {
	Color     move.Color
	Stones    []move.Coord
	Liberties []move.Coord
}

// Contains reports whether c is one of the group's stones.
func (g *Group) Contains(c move.Coord) bool {
	for _, s := range g.Stones {
		if s == c {
			return true
		}
	}
	return false
}

// GroupAt flood-fills the group containing the stone at c. It returns nil
// if the cell is empty. Stones and liberties come back sorted row-major so
// that group identity is stable across runs.
func (b *Board) GroupAt(c move.Coord) *Group {
	color := b.At(c)
	if color == move.Empty {
		return nil
	}

	stones := []move.Coord{}
	libSet := map[move.Coord]bool{}
	visited := map[move.Coord]bool{c: true}
	frontier := []move.Coord{c}

	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		stones = append(stones, cur)
		for _, n := range b.Neighbors(cur) {
			switch b.At(n) {
			case move.Empty:
				libSet[n] = true
			case color:
				if !visited[n] {
					visited[n] = true
					frontier = append(frontier, n)
				}
			}
		}
	}

	libs := make([]move.Coord, 0, len(libSet))
	for l := range libSet {
		libs = append(libs, l)
	}
	sortCoords(stones)
	sortCoords(libs)
	return &Group{Color: color, Stones: stones, Liberties: libs}
}

// Groups rescans the whole board and returns every group on it, in
// row-major order of each group's first stone. Full rescans are fine for
// boards up to MaxDim.
func (b *Board) Groups() []*Group {
	seen := map[move.Coord]bool{}
	groups := []*Group{}
	for row := 0; row < b.dim; row++ {
		for col := 0; col < b.dim; col++ {
			c := move.Coord{Row: row, Col: col}
			if b.At(c) == move.Empty || seen[c] {
				continue
			}
			g := b.GroupAt(c)
			for _, s := range g.Stones {
				seen[s] = true
			}
			groups = append(groups, g)
		}
	}
	return groups
}

// LibertiesOf returns the sorted distinct liberties of an arbitrary set of
// stones, whether or not they form a single group.
func (b *Board) LibertiesOf(stones []move.Coord) []move.Coord {
	libSet := map[move.Coord]bool{}
	for _, s := range stones {
		for _, n := range b.Neighbors(s) {
			if b.At(n) == move.Empty {
				libSet[n] = true
			}
		}
	}
	libs := make([]move.Coord, 0, len(libSet))
	for l := range libSet {
		libs = append(libs, l)
	}
	sortCoords(libs)
	return libs
}

// CommonLiberties returns the sorted liberties shared by two groups.
func CommonLiberties(g1, g2 *Group) []move.Coord {
	in2 := map[move.Coord]bool{}
	for _, l := range g2.Liberties {
		in2[l] = true
	}
	common := []move.Coord{}
	for _, l := range g1.Liberties {
		if in2[l] {
			common = append(common, l)
		}
	}
	sortCoords(common)
	return common
}

func sortCoords(cs []move.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}

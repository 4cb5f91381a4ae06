package analysis

import (
	"github.com/JulienBernou/gorhapsody/board"
	"github.com/JulienBernou/gorhapsody/move"
)

// classifyPoint handles the opening/territorial rung of the ladder: named
// points, first corner play, enclosures, two-stone shapes and generic
// corner plays. It only applies inside the opening move window. The
// matched templates come from the configured pattern table, so shape
// names beyond the built-in set flow straight into the move type.
func (cl *classifier) classifyPoint(rep *MoveReport, after *board.Board,
	m move.Move, recentOwn []move.Coord) (MoveType, bool) {

	if m.Number() > cl.cfg.OpeningMoveWindow {
		return "", false
	}

	c := m.Coord()
	dim := after.Dim()

	// the named point lists are only meaningful on the board size they
	// were written for
	if dim == cl.cfg.NamedPointBoardDim {
		switch {
		case cl.cfg.Patterns.StarPoints.Contains(c.Row, c.Col):
			return TypeStarPoint, true
		case cl.cfg.Patterns.ThreeThreePoints.Contains(c.Row, c.Col):
			return TypeThreeThree, true
		case cl.cfg.Patterns.ThreeFourPoints.Contains(c.Row, c.Col):
			return TypeThreeFour, true
		}
	}

	inCorner := cl.inCornerRegion(c, dim)
	if m.Number() == 1 && inCorner {
		return TypeFirstCornerPlay, true
	}

	lookback := recentOwn
	if len(lookback) > cl.cfg.LookbackWindow {
		lookback = lookback[len(lookback)-cl.cfg.LookbackWindow:]
	}

	// enclosures first: a knight's move from one's own corner stone is an
	// enclosure, not just a knight's move
	if inCorner {
		for _, encl := range cl.cfg.Patterns.Enclosures {
			for _, s := range lookback {
				if !cl.inCornerRegion(s, dim) || !sameQuadrant(c, s, dim) {
					continue
				}
				if encl.Matches(abs(c.Row-s.Row), abs(c.Col-s.Col)) {
					if encl.Large {
						name := encl.Name
						rep.LargeEnclosureType = &name
					}
					return MoveType(encl.Name), true
				}
			}
		}
	}

	for _, shape := range cl.cfg.Patterns.Shapes {
		for _, s := range lookback {
			if shape.Matches(abs(c.Row-s.Row), abs(c.Col-s.Col)) {
				return MoveType(shape.Name), true
			}
		}
	}

	if inCorner {
		return TypeCornerPlay, true
	}
	return "", false
}

// inCornerRegion reports whether c sits within the configured corner
// boundary of both an edge row and an edge column.
func (cl *classifier) inCornerRegion(c move.Coord, dim int) bool {
	b := cl.cfg.CornerBoundary
	nearRow := c.Row < b || c.Row >= dim-b
	nearCol := c.Col < b || c.Col >= dim-b
	return nearRow && nearCol
}

// sameQuadrant reports whether two points fall on the same side of both
// board midlines.
func sameQuadrant(a, b move.Coord, dim int) bool {
	half := dim / 2
	return (a.Row <= half) == (b.Row <= half) && (a.Col <= half) == (b.Col <= half)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

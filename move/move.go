package move

import (
	"fmt"
	"math"
)

// Color is the color of a stone, or the absence of one. Empty is the zero
// value so that a freshly allocated board is all empty cells.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other stone color. It is only meaningful for Black
// and White.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	}
	return "E"
}

// ColorFromString parses the one-letter color tag used by game records.
func ColorFromString(s string) (Color, error) {
	switch s {
	case "B", "b":
		return Black, nil
	case "W", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("bad color tag %q", s)
}

// A Coord is a 0-indexed (row, col) board coordinate.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SGF returns the two-letter SGF form of the coordinate; (0, 0) is "aa",
// with the column letter first.
func (c Coord) SGF() string {
	return string([]byte{byte('a' + c.Col), byte('a' + c.Row)})
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// DistanceTo returns the Euclidean distance to another coordinate, in grid
// units.
func (c Coord) DistanceTo(o Coord) float64 {
	dr := float64(c.Row - o.Row)
	dc := float64(c.Col - o.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// A Move is a single stone placement or pass, as decoded from a game
// record. Moves are immutable once created.
type Move struct {
	color Color
	coord Coord
	pass  bool
	// 1-based position in the game's move sequence.
	number int
}

// NewPlacement creates a stone placement move. number is 1-based.
func NewPlacement(color Color, coord Coord, number int) Move {
	return Move{color: color, coord: coord, number: number}
}

// NewPass creates a pass move. number is 1-based.
func NewPass(color Color, number int) Move {
	return Move{color: color, pass: true, number: number}
}

func (m Move) Color() Color { return m.color }

// Coord returns the target coordinate. It is only meaningful when the move
// is not a pass.
func (m Move) Coord() Coord { return m.coord }

func (m Move) IsPass() bool { return m.pass }

// Number is the 1-based sequence number of the move within its game.
func (m Move) Number() int { return m.number }

// SGFCoords returns the SGF coordinate string for the move, or "" for a
// pass.
func (m Move) SGFCoords() string {
	if m.pass {
		return ""
	}
	return m.coord.SGF()
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	if m.pass {
		return fmt.Sprintf("<%d %v pass>", m.number, m.color)
	}
	return fmt.Sprintf("<%d %v %v>", m.number, m.color, m.coord)
}

package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JulienBernou/gorhapsody/move"
)

const (
	// MinDim is the smallest board we accept. Anything below this has no
	// interior points and is useless for analysis.
	MinDim = 5
	// MaxDim bounds the full-board rescans; see Groups.
	MaxDim     = 25
	DefaultDim = 19
)

var ErrBadDimension = errors.New("board dimension out of range")

// A Board is a square grid of cells. It is owned by a single game state
// and mutated only through Play; it is not safe for concurrent use.
type Board struct {
	dim   int
	cells []move.Color
}

// New creates an empty dim x dim board.
func New(dim int) (*Board, error) {
	if dim < MinDim || dim > MaxDim {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	return &Board{
		dim:   dim,
		cells: make([]move.Color, dim*dim),
	}, nil
}

func (b *Board) Dim() int {
	return b.dim
}

// Cells returns the raw row-major cell contents. Callers must not modify
// the returned slice.
func (b *Board) Cells() []move.Color {
	return b.cells
}

func (b *Board) PosExists(c move.Coord) bool {
	return c.Row >= 0 && c.Row < b.dim && c.Col >= 0 && c.Col < b.dim
}

// At returns the cell contents at c. c must be on the board.
func (b *Board) At(c move.Coord) move.Color {
	return b.cells[c.Row*b.dim+c.Col]
}

func (b *Board) set(c move.Coord, color move.Color) {
	b.cells[c.Row*b.dim+c.Col] = color
}

// Neighbors returns the orthogonally adjacent on-board coordinates of c.
func (b *Board) Neighbors(c move.Coord) []move.Coord {
	ns := make([]move.Coord, 0, 4)
	for _, d := range [4]move.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
		n := move.Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.PosExists(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Diagonals returns the diagonally adjacent on-board coordinates of c.
func (b *Board) Diagonals(c move.Coord) []move.Coord {
	ns := make([]move.Coord, 0, 4)
	for _, d := range [4]move.Coord{
		{Row: -1, Col: -1}, {Row: -1, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 1},
	} {
		n := move.Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if b.PosExists(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]move.Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{dim: b.dim, cells: cells}
}

// Equal reports whether two boards have the same dimension and contents.
func (b *Board) Equal(o *Board) bool {
	if b.dim != o.dim {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// StoneCount returns the number of stones of the given color on the board.
func (b *Board) StoneCount(color move.Color) int {
	n := 0
	for _, c := range b.cells {
		if c == color {
			n++
		}
	}
	return n
}

// IsEmpty returns true if the board has no stones on it.
func (b *Board) IsEmpty() bool {
	return b.StoneCount(move.Black) == 0 && b.StoneCount(move.White) == 0
}

// ToDisplayText returns a human-readable rendering of the board, for
// debugging and test failure output.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n   ")
	for j := 0; j < b.dim; j++ {
		fmt.Fprintf(&sb, "%c ", 'A'+j)
	}
	sb.WriteString("\n")
	for i := 0; i < b.dim; i++ {
		fmt.Fprintf(&sb, "%2d ", i)
		for j := 0; j < b.dim; j++ {
			switch b.cells[i*b.dim+j] {
			case move.Black:
				sb.WriteString("X ")
			case move.White:
				sb.WriteString("O ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

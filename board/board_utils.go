package board

import (
	"fmt"
	"strings"

	"github.com/JulienBernou/gorhapsody/move"
)

// FromPlainText builds a board from a plaintext diagram: one line per row,
// '.' for empty, 'X' for black, 'O' for white. Spaces and blank lines are
// ignored, so diagrams can be indented in test sources. The number of
// lines sets the dimension and every line must match it.
func FromPlainText(desc string) (*Board, error) {
	rows := []string{}
	for _, line := range strings.Split(desc, "\n") {
		line = strings.ReplaceAll(line, " ", "")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != b.dim {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), b.dim)
		}
		for j, ch := range row {
			c := move.Coord{Row: i, Col: j}
			switch ch {
			case '.':
			case 'X':
				b.set(c, move.Black)
			case 'O':
				b.set(c, move.White)
			default:
				return nil, fmt.Errorf("bad cell %q at %v", ch, c)
			}
		}
	}
	return b, nil
}

package zobrist

import (
	"lukechampine.com/frand"

	"github.com/JulienBernou/gorhapsody/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a go board position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable [][]uint64

	boardDim int
}

// two stone colors per point
const numStates = 2

func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][]uint64, boardDim*boardDim)
	for i := 0; i < boardDim*boardDim; i++ {
		z.posTable[i] = make([]uint64, numStates)
		for j := 0; j < numStates; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
}

// Hash computes the full fingerprint for a row-major list of cell contents.
func (z *Zobrist) Hash(cells []move.Color) uint64 {
	key := uint64(0)
	for i, c := range cells {
		if c == move.Empty {
			continue
		}
		key ^= z.posTable[i][c-move.Black]
	}
	return key
}

// AddStone toggles a single stone in or out of the fingerprint. Removing a
// captured stone uses the same call, since XOR is its own inverse.
func (z *Zobrist) AddStone(key uint64, coord move.Coord, color move.Color) uint64 {
	return key ^ z.posTable[coord.Row*z.boardDim+coord.Col][color-move.Black]
}

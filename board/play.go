package board

import (
	"github.com/JulienBernou/gorhapsody/move"
)

// IllegalReason says why a move was rejected by the engine.
type IllegalReason uint8

const (
	ReasonNone IllegalReason = iota
	ReasonOutOfBounds
	ReasonOccupied
	ReasonSuicide
)

func (r IllegalReason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonOccupied:
		return "occupied"
	case ReasonSuicide:
		return "suicide"
	}
	return "none"
}

// MoveEvents describes what applying a single move did to the board.
type MoveEvents struct {
	// Captures holds the coordinates of every opposing stone removed by
	// the move, sorted row-major.
	Captures []move.Coord
	// SelfAtari is true when the mover's resulting group was left with
	// exactly one liberty.
	SelfAtari bool
	// Illegal is true when the move was rejected and the board left
	// untouched.
	Illegal bool
	Reason  IllegalReason
}

func (e *MoveEvents) CapturedCount() int {
	return len(e.Captures)
}

// Play applies one move to the board. A pass changes nothing. A placement
// marks the cell, removes any adjacent opposing groups whose liberties
// dropped to zero, and only then checks the mover's own group: if it has
// no liberties the move is suicide, the placement is reverted and the
// events flag it illegal. Ko is not the board's concern; the game state
// layer detects it from position fingerprints.
func (b *Board) Play(m move.Move) *MoveEvents {
	evts := &MoveEvents{}
	if m.IsPass() {
		return evts
	}

	c := m.Coord()
	if !b.PosExists(c) {
		evts.Illegal = true
		evts.Reason = ReasonOutOfBounds
		return evts
	}
	if b.At(c) != move.Empty {
		evts.Illegal = true
		evts.Reason = ReasonOccupied
		return evts
	}

	color := m.Color()
	opponent := color.Opponent()
	b.set(c, color)

	// Capture resolution comes first: suicide is only suicide if nothing
	// was captured.
	captured := map[move.Coord]bool{}
	for _, n := range b.Neighbors(c) {
		if b.At(n) != opponent || captured[n] {
			continue
		}
		g := b.GroupAt(n)
		if len(g.Liberties) == 0 {
			for _, s := range g.Stones {
				captured[s] = true
				b.set(s, move.Empty)
			}
		}
	}
	for s := range captured {
		evts.Captures = append(evts.Captures, s)
	}
	sortCoords(evts.Captures)

	own := b.GroupAt(c)
	if len(own.Liberties) == 0 {
		// Can only happen with zero captures, so reverting the placement
		// restores the pre-move board exactly.
		b.set(c, move.Empty)
		evts.Captures = nil
		evts.Illegal = true
		evts.Reason = ReasonSuicide
		return evts
	}
	evts.SelfAtari = len(own.Liberties) == 1

	return evts
}

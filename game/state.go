package game

import (
	"github.com/JulienBernou/gorhapsody/board"
	"github.com/JulienBernou/gorhapsody/move"
	"github.com/JulienBernou/gorhapsody/zobrist"
)

// State is the full replay state for one game: the board, a history of
// position fingerprints for ko detection, and the last stone each color
// placed. One State belongs to exactly one replay; it is not safe for
// concurrent use, but independent games can run independent States in
// parallel.
type State struct {
	board  *board.Board
	hasher *zobrist.Zobrist

	// fingerprints[i] is the position hash after move i was applied;
	// fingerprints[0] is the empty board.
	fingerprints []uint64

	lastFriendly map[move.Color]*move.Coord
	movesPlayed  int
}

// NewState creates the replay state for an empty board of the given
// dimension.
func NewState(dim int) (*State, error) {
	b, err := board.New(dim)
	if err != nil {
		return nil, err
	}
	z := &zobrist.Zobrist{}
	z.Initialize(dim)
	return &State{
		board:        b,
		hasher:       z,
		fingerprints: []uint64{z.Hash(b.Cells())},
		lastFriendly: map[move.Color]*move.Coord{},
	}, nil
}

func (s *State) Board() *board.Board {
	return s.board
}

func (s *State) MovesPlayed() int {
	return s.movesPlayed
}

// Fingerprint returns the current position hash.
func (s *State) Fingerprint() uint64 {
	return s.fingerprints[len(s.fingerprints)-1]
}

// LastFriendly returns the coordinate of the given color's most recent
// stone placement, or nil if that color has not placed a stone yet.
// Passes and rejected moves do not update it.
func (s *State) LastFriendly(color move.Color) *move.Coord {
	return s.lastFriendly[color]
}

// Events extends the board-level move events with the ko flag, which
// needs position history to detect.
type Events struct {
	board.MoveEvents
	// KoDetected is advisory: the move stays applied even when true.
	KoDetected bool
}

// PlayMove applies one move to the game state. The board handles
// placement, capture and suicide; this layer maintains the fingerprint
// history and flags single-stone ko recaptures: a move that captures
// exactly one stone and recreates the position from two plies earlier.
func (s *State) PlayMove(m move.Move) *Events {
	evts := &Events{MoveEvents: *s.board.Play(m)}

	fp := s.Fingerprint()
	if !m.IsPass() && !evts.Illegal {
		// full rehash per move; cheap at these board sizes
		fp = s.hasher.Hash(s.board.Cells())
		if len(evts.Captures) == 1 && len(s.fingerprints) >= 2 &&
			fp == s.fingerprints[len(s.fingerprints)-2] {
			evts.KoDetected = true
		}
		c := m.Coord()
		s.lastFriendly[m.Color()] = &c
	}
	s.fingerprints = append(s.fingerprints, fp)
	s.movesPlayed++

	return evts
}

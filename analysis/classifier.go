package analysis

import (
	"math"

	"github.com/JulienBernou/gorhapsody/board"
	"github.com/JulienBernou/gorhapsody/config"
	"github.com/JulienBernou/gorhapsody/game"
	"github.com/JulienBernou/gorhapsody/move"
)

// classifier derives one MoveReport from the before/after board states of
// a single applied move. It holds no per-game state of its own; the
// orchestrator feeds it the mover's recent stones for the lookback
// patterns.
type classifier struct {
	cfg *config.Config
}

// classify computes every detail field and then resolves the type ladder.
// recentOwn is the mover's own previous placements, oldest first, not
// including this move.
func (cl *classifier) classify(before, after *board.Board, m move.Move,
	evts *game.Events, prevFriendly *move.Coord, recentOwn []move.Coord) *MoveReport {

	rep := newMoveReport(m.Number(), m.Color().String())

	if m.IsPass() {
		rep.Type = TypePass
		return rep
	}

	c := m.Coord()
	if before.PosExists(c) {
		sgf := c.SGF()
		rep.SGFCoords = &sgf
	}

	// Illegal moves short-circuit: type only, detail fields stay at
	// their defaults, and the board was left untouched by the engine.
	if evts.Illegal {
		rep.Type = TypeIllegal
		return rep
	}

	opponent := m.Color().Opponent()

	if len(evts.Captures) > 0 {
		rep.Captures = evts.Captures
	}
	rep.CapturedCount = evts.CapturedCount()
	rep.SelfAtari = evts.SelfAtari
	rep.KoDetected = evts.KoDetected

	rep.Atari, rep.AtariThreats = enemyPressure(after, c, opponent)
	rep.IsContact = isContact(before, c, opponent)
	rep.IsHane = isHane(before, c, opponent)
	rep.IsCut = isCut(before, c, opponent)
	rep.IsConnection = isConnection(before, after, c, m.Color())
	rep.IsEmptyTriangle = isEmptyTriangle(after, c, m.Color())

	cl.fillDistances(rep, after, m, prevFriendly)

	rep.Type = cl.resolveType(rep, after, m, recentOwn)
	return rep
}

// resolveType walks the fixed priority ladder; the first match wins. The
// detail fields have already been computed and stay in the report no
// matter which rung matched.
func (cl *classifier) resolveType(rep *MoveReport, after *board.Board,
	m move.Move, recentOwn []move.Coord) MoveType {

	switch {
	case rep.CapturedCount > 0:
		return TypeCapture
	case len(rep.Atari) > 0:
		return TypeAtari
	case rep.IsCut:
		return TypeCut
	case rep.IsConnection:
		return TypeConnection
	case rep.IsHane:
		return TypeHane
	case rep.IsContact:
		return TypeContact
	}
	if t, ok := cl.classifyPoint(rep, after, m, recentOwn); ok {
		return t
	}
	return TypeNormal
}

// enemyPressure collects the distinct opposing groups orthogonally
// adjacent to the new stone that now sit at one liberty (atari) or two
// (atari threat), evaluated on the post-move board.
func enemyPressure(after *board.Board, c move.Coord, opponent move.Color) ([]StoneGroup, []StoneGroup) {
	atari := []StoneGroup{}
	threats := []StoneGroup{}
	seen := map[move.Coord]bool{}
	for _, n := range after.Neighbors(c) {
		if after.At(n) != opponent || seen[n] {
			continue
		}
		g := after.GroupAt(n)
		for _, s := range g.Stones {
			seen[s] = true
		}
		switch len(g.Liberties) {
		case 1:
			atari = append(atari, StoneGroup(g.Stones))
		case 2:
			threats = append(threats, StoneGroup(g.Stones))
		}
	}
	return atari, threats
}

// isContact: the new stone touches an opposing stone orthogonally.
func isContact(before *board.Board, c move.Coord, opponent move.Color) bool {
	for _, n := range before.Neighbors(c) {
		if before.At(n) == opponent {
			return true
		}
	}
	return false
}

// isHane: diagonally adjacent to exactly one opposing stone and
// orthogonally adjacent to none. This is the minimal rule; it does not
// try to tell a hane apart from every turn or wedge shape.
func isHane(before *board.Board, c move.Coord, opponent move.Color) bool {
	if isContact(before, c, opponent) {
		return false
	}
	diag := 0
	for _, n := range before.Diagonals(c) {
		if before.At(n) == opponent {
			diag++
		}
	}
	return diag == 1
}

// isCut: before the move, two distinct opposing groups adjacent to the
// point shared it as their only common liberty. Filling it severs their
// local connection. This is a local heuristic, not a global connectivity
// proof.
func isCut(before *board.Board, c move.Coord, opponent move.Color) bool {
	groups := []*board.Group{}
	seen := map[move.Coord]bool{}
	for _, n := range before.Neighbors(c) {
		if before.At(n) != opponent || seen[n] {
			continue
		}
		g := before.GroupAt(n)
		for _, s := range g.Stones {
			seen[s] = true
		}
		groups = append(groups, g)
	}
	if len(groups) < 2 {
		return false
	}
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			common := board.CommonLiberties(groups[i], groups[j])
			if len(common) == 1 && common[0] == c {
				return true
			}
		}
	}
	return false
}

// isConnection: the move touches two or more distinct friendly groups
// before the move and they all ended up in the new stone's group.
func isConnection(before, after *board.Board, c move.Coord, color move.Color) bool {
	friends := []*board.Group{}
	seen := map[move.Coord]bool{}
	for _, n := range before.Neighbors(c) {
		if before.At(n) != color || seen[n] {
			continue
		}
		g := before.GroupAt(n)
		for _, s := range g.Stones {
			seen[s] = true
		}
		friends = append(friends, g)
	}
	if len(friends) < 2 {
		return false
	}
	merged := after.GroupAt(c)
	for _, g := range friends {
		if !merged.Contains(g.Stones[0]) {
			return false
		}
	}
	return true
}

// isEmptyTriangle: the new stone completes a 2x2 block holding three own
// stones and one empty point.
func isEmptyTriangle(after *board.Board, c move.Coord, color move.Color) bool {
	for _, d := range [4][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}} {
		tl := move.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		br := move.Coord{Row: tl.Row + 1, Col: tl.Col + 1}
		if !after.PosExists(tl) || !after.PosExists(br) {
			continue
		}
		own, empty := 0, 0
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				switch after.At(move.Coord{Row: tl.Row + dr, Col: tl.Col + dc}) {
				case color:
					own++
				case move.Empty:
					empty++
				}
			}
		}
		if own == 3 && empty == 1 {
			return true
		}
	}
	return false
}

func (cl *classifier) fillDistances(rep *MoveReport, after *board.Board,
	m move.Move, prevFriendly *move.Coord) {

	c := m.Coord()
	dim := after.Dim()

	center := float64(dim-1) / 2
	dr := float64(c.Row) - center
	dc := float64(c.Col) - center
	fromCenter := math.Sqrt(dr*dr + dc*dc)
	rep.DistanceFromCenter = &fromCenter

	if prevFriendly != nil {
		d := c.DistanceTo(*prevFriendly)
		rep.DistanceFromPreviousFriendlyStone = &d
	}

	opponent := m.Color().Opponent()
	var nearestFriendly, nearestEnemy *float64
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			p := move.Coord{Row: row, Col: col}
			if p == c {
				// skip the stone just placed
				continue
			}
			switch after.At(p) {
			case m.Color():
				d := c.DistanceTo(p)
				if nearestFriendly == nil || d < *nearestFriendly {
					nearestFriendly = &d
				}
			case opponent:
				d := c.DistanceTo(p)
				if nearestEnemy == nil || d < *nearestEnemy {
					nearestEnemy = &d
				}
			}
		}
	}
	rep.DistanceToNearestFriendlyStone = nearestFriendly
	rep.DistanceToNearestEnemyStone = nearestEnemy
}

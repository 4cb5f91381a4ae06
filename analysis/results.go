package analysis

import (
	"github.com/JulienBernou/gorhapsody/move"
)

// MoveType is the single classification a move resolves to. It is a
// string type because the shape patterns in the config table contribute
// their own names to the set.
type MoveType string

const (
	TypePass            MoveType = "Pass"
	TypeCapture         MoveType = "Capture"
	TypeAtari           MoveType = "Atari"
	TypeCut             MoveType = "Cut"
	TypeConnection      MoveType = "Connection"
	TypeHane            MoveType = "Hane"
	TypeContact         MoveType = "Contact Move"
	TypeStarPoint       MoveType = "Star Point"
	TypeThreeThree      MoveType = "3-3 Point"
	TypeThreeFour       MoveType = "3-4 Point"
	TypeFirstCornerPlay MoveType = "First Corner Play"
	TypeCornerEnclosure MoveType = "Corner Enclosure"
	TypeLargeEnclosure  MoveType = "Large Enclosure"
	TypeCornerPlay      MoveType = "Corner Play"
	TypeNormal          MoveType = "Normal Move"
	TypeIllegal         MoveType = "Illegal Move"
)

// A StoneGroup identifies a group by its sorted stone coordinates.
type StoneGroup []move.Coord

// A MoveReport is the full tactical/positional report for one move. One
// report is emitted per input move, in order, and never mutated after the
// classifier returns it. Field names match the wire format the rendering
// and audio layers consume.
type MoveReport struct {
	MoveNumber int      `json:"move_number"`
	Player     string   `json:"player"`
	SGFCoords  *string  `json:"sgf_coords"`
	Type       MoveType `json:"type"`

	CapturedCount int          `json:"captured_count"`
	Captures      []move.Coord `json:"captures"`
	Atari         []StoneGroup `json:"atari"`
	AtariThreats  []StoneGroup `json:"atari_threats"`

	SelfAtari          bool    `json:"self_atari"`
	IsContact          bool    `json:"is_contact"`
	IsHane             bool    `json:"is_hane"`
	IsCut              bool    `json:"is_cut"`
	IsConnection       bool    `json:"is_connection"`
	IsEmptyTriangle    bool    `json:"is_empty_triangle"`
	LargeEnclosureType *string `json:"large_enclosure_type"`
	KoDetected         bool    `json:"ko_detected"`

	DistanceFromCenter                *float64 `json:"distance_from_center"`
	DistanceFromPreviousFriendlyStone *float64 `json:"distance_from_previous_friendly_stone"`
	DistanceToNearestFriendlyStone    *float64 `json:"distance_to_nearest_friendly_stone"`
	DistanceToNearestEnemyStone       *float64 `json:"distance_to_nearest_enemy_stone"`
}

func newMoveReport(number int, player string) *MoveReport {
	return &MoveReport{
		MoveNumber:   number,
		Player:       player,
		Captures:     []move.Coord{},
		Atari:        []StoneGroup{},
		AtariThreats: []StoneGroup{},
	}
}

// RunState tracks the orchestrator's lifecycle. Strictly linear: a fresh
// analyzer is Created, AnalyzeGame moves it to Running, and it finishes
// Completed whether or not individual moves were legal.
type RunState uint8

const (
	Created RunState = iota
	Running
	Completed
)

func (s RunState) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// A Record is one decoded game: the board size and the ordered move list,
// exactly as the external record decoder hands them over.
type Record struct {
	BoardSize int
	Moves     []move.Move
}

// Result is the complete analysis of one game.
type Result struct {
	Reports []*MoveReport
	// Summaries holds per-player aggregates: index 0 black, 1 white.
	Summaries [2]*PlayerSummary
}

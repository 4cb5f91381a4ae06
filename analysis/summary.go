package analysis

import (
	"github.com/samber/lo"

	"github.com/JulienBernou/gorhapsody/move"
)

// PlayerSummary aggregates one player's reports across the game.
type PlayerSummary struct {
	Player       string         `json:"player"`
	MovesPlayed  int            `json:"moves_played"`
	Passes       int            `json:"passes"`
	IllegalMoves int            `json:"illegal_moves"`
	// StonesCaptured counts opposing stones this player removed;
	// StonesLost counts this player's stones removed by the opponent.
	StonesCaptured int            `json:"stones_captured"`
	StonesLost     int            `json:"stones_lost"`
	SelfAtaris     int            `json:"self_ataris"`
	MoveTypes      map[string]int `json:"move_types"`
}

// summarize computes both players' aggregates from the ordered reports.
func summarize(reports []*MoveReport) [2]*PlayerSummary {
	var out [2]*PlayerSummary
	colors := [2]move.Color{move.Black, move.White}
	for i, color := range colors {
		own := lo.Filter(reports, func(r *MoveReport, _ int) bool {
			return r.Player == color.String()
		})
		theirs := lo.Filter(reports, func(r *MoveReport, _ int) bool {
			return r.Player == color.Opponent().String()
		})
		out[i] = &PlayerSummary{
			Player:      color.String(),
			MovesPlayed: len(own),
			Passes: lo.CountBy(own, func(r *MoveReport) bool {
				return r.Type == TypePass
			}),
			IllegalMoves: lo.CountBy(own, func(r *MoveReport) bool {
				return r.Type == TypeIllegal
			}),
			StonesCaptured: lo.SumBy(own, func(r *MoveReport) int {
				return r.CapturedCount
			}),
			StonesLost: lo.SumBy(theirs, func(r *MoveReport) int {
				return r.CapturedCount
			}),
			SelfAtaris: lo.CountBy(own, func(r *MoveReport) bool {
				return r.SelfAtari
			}),
			MoveTypes: lo.CountValuesBy(own, func(r *MoveReport) string {
				return string(r.Type)
			}),
		}
	}
	return out
}

package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/JulienBernou/gorhapsody/board"
	"github.com/JulienBernou/gorhapsody/config"
	"github.com/JulienBernou/gorhapsody/game"
	"github.com/JulienBernou/gorhapsody/move"
)

// Analyzer replays one recorded game move by move and produces a
// MoveReport per move. An Analyzer is single-use: Created -> Running ->
// Completed, no branching, no retries. Run independent Analyzers for
// independent games; there is no shared state between them.
type Analyzer struct {
	cfg      *config.Config
	cl       *classifier
	runState RunState
}

// New creates an Analyzer. A nil cfg means defaults.
func New(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Analyzer{
		cfg: cfg,
		cl:  &classifier{cfg: cfg},
	}
}

func (a *Analyzer) RunState() RunState {
	return a.runState
}

// AnalyzeGame replays the record and returns one report per input move,
// in input order, always: illegal moves are recorded in their report and
// the replay continues. If ctx is cancelled between moves, the partial
// result accumulated so far is returned together with the context error.
func (a *Analyzer) AnalyzeGame(ctx context.Context, rec *Record) (*Result, error) {
	if rec == nil {
		return nil, errors.New("game record is nil")
	}
	if a.runState != Created {
		return nil, fmt.Errorf("analyzer already %s; analyzers are single-use", a.runState)
	}
	a.runState = Running

	dim := rec.BoardSize
	if dim == 0 {
		dim = board.DefaultDim
	}
	st, err := game.NewState(dim)
	if err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	log.Debug().Int("dim", dim).Int("moves", len(rec.Moves)).Msg("starting game analysis")

	result := &Result{Reports: make([]*MoveReport, 0, len(rec.Moves))}
	recent := map[move.Color][]move.Coord{}

	for i, m := range rec.Moves {
		select {
		case <-ctx.Done():
			log.Warn().Int("analyzed", len(result.Reports)).
				Msg("analysis cancelled; returning partial reports")
			result.Summaries = summarize(result.Reports)
			a.runState = Completed
			return result, ctx.Err()
		default:
		}

		if m.Number() == 0 {
			// defend against decoders that left numbering blank
			m = renumber(m, i+1)
		}

		prevFriendly := st.LastFriendly(m.Color())
		before := st.Board().Copy()
		evts := st.PlayMove(m)

		rep := a.cl.classify(before, st.Board(), m, evts, prevFriendly, recent[m.Color()])
		result.Reports = append(result.Reports, rep)

		if !m.IsPass() && !evts.Illegal {
			recent[m.Color()] = append(recent[m.Color()], m.Coord())
		}

		log.Debug().
			Int("move", rep.MoveNumber).
			Str("player", rep.Player).
			Str("type", string(rep.Type)).
			Int("captured", rep.CapturedCount).
			Msg("classified move")
	}

	result.Summaries = summarize(result.Reports)
	a.runState = Completed

	log.Info().
		Int("moves", len(result.Reports)).
		Int("black-captures", result.Summaries[0].StonesCaptured).
		Int("white-captures", result.Summaries[1].StonesCaptured).
		Msg("game analysis complete")

	return result, nil
}

func renumber(m move.Move, number int) move.Move {
	if m.IsPass() {
		return move.NewPass(m.Color(), number)
	}
	return move.NewPlacement(m.Color(), m.Coord(), number)
}

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/JulienBernou/gorhapsody/move"
)

// p builds an unnumbered placement; the analyzer fills sequence numbers
// in input order.
func p(color move.Color, row, col int) move.Move {
	return move.NewPlacement(color, move.Coord{Row: row, Col: col}, 0)
}

func pass(color move.Color) move.Move {
	return move.NewPass(color, 0)
}

func analyze(t *testing.T, dim int, moves ...move.Move) *Result {
	t.Helper()
	res, err := New(nil).AnalyzeGame(context.Background(), &Record{BoardSize: dim, Moves: moves})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return res
}

func TestOneReportPerMove(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 4, 4),
		pass(move.White),
		p(move.Black, 4, 4), // occupied: illegal, still reported
		p(move.White, 2, 2),
	)
	is.Equal(len(res.Reports), 4)
	for i, rep := range res.Reports {
		is.Equal(rep.MoveNumber, i+1)
	}
	is.Equal(res.Reports[1].Type, TypePass)
	is.Equal(res.Reports[2].Type, TypeIllegal)
}

func TestCaptureScenario(t *testing.T) {
	is := is.New(t)
	// black surrounds the lone white stone at (1,1) and takes it
	res := analyze(t, 9,
		p(move.Black, 0, 1),
		p(move.White, 1, 1),
		p(move.Black, 1, 0),
		p(move.White, 7, 7),
		p(move.Black, 2, 1),
		p(move.White, 7, 6),
		p(move.Black, 1, 2),
	)
	last := res.Reports[6]
	is.Equal(last.Type, TypeCapture)
	is.Equal(last.CapturedCount, 1)
	is.Equal(last.Captures, []move.Coord{{Row: 1, Col: 1}})
}

func TestCapturedCountAlwaysMatchesCaptures(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 0, 1),
		p(move.White, 1, 1),
		p(move.Black, 1, 0),
		pass(move.White),
		p(move.Black, 2, 1),
		p(move.White, 0, 0), // suicide, rejected
		p(move.Black, 1, 2),
	)
	for _, rep := range res.Reports {
		is.Equal(rep.CapturedCount, len(rep.Captures))
	}
}

func TestAtariScenario(t *testing.T) {
	is := is.New(t)
	// black reduces the two-stone white group from two liberties to one
	res := analyze(t, 9,
		p(move.Black, 1, 0),
		p(move.White, 0, 0),
		p(move.Black, 4, 4),
		p(move.White, 0, 1),
		p(move.Black, 1, 1),
	)
	last := res.Reports[4]
	is.Equal(last.Type, TypeAtari)
	is.Equal(last.CapturedCount, 0)
	is.Equal(len(last.Atari), 1)
	is.Equal(last.Atari[0], StoneGroup{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
}

func TestKoScenario(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 5,
		p(move.Black, 0, 1),
		p(move.White, 0, 2),
		p(move.Black, 1, 0),
		p(move.White, 1, 1),
		p(move.Black, 2, 1),
		p(move.White, 2, 2),
		p(move.Black, 4, 4),
		p(move.White, 1, 3),
		p(move.Black, 1, 2), // black takes the ko
		p(move.White, 1, 1), // white takes straight back
	)
	take := res.Reports[8]
	is.Equal(take.Type, TypeCapture)
	is.True(!take.KoDetected)

	retake := res.Reports[9]
	is.Equal(retake.Type, TypeCapture)
	is.Equal(retake.CapturedCount, 1)
	is.True(retake.KoDetected)
}

func TestDistanceScenario(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 19,
		p(move.Black, 9, 9),
		p(move.White, 0, 0),
	)

	center := res.Reports[0]
	is.True(center.DistanceFromCenter != nil)
	is.Equal(*center.DistanceFromCenter, 0.0)
	is.Equal(center.DistanceFromPreviousFriendlyStone, nil)
	is.Equal(center.DistanceToNearestFriendlyStone, nil)
	is.Equal(center.DistanceToNearestEnemyStone, nil)

	corner := res.Reports[1]
	is.True(corner.DistanceFromCenter != nil)
	is.True(math.Abs(*corner.DistanceFromCenter-12.7279) < 0.001)
	is.True(corner.DistanceToNearestEnemyStone != nil)
	is.True(math.Abs(*corner.DistanceToNearestEnemyStone-12.7279) < 0.001)
	is.Equal(corner.DistanceToNearestFriendlyStone, nil)
}

func TestPassScenario(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 19,
		p(move.Black, 3, 3),
		pass(move.White),
	)
	rep := res.Reports[1]
	is.Equal(rep.Type, TypePass)
	is.Equal(rep.SGFCoords, nil)
	is.Equal(rep.CapturedCount, 0)
	is.Equal(rep.DistanceFromCenter, nil)
	is.Equal(rep.DistanceFromPreviousFriendlyStone, nil)
	is.Equal(rep.DistanceToNearestFriendlyStone, nil)
	is.Equal(rep.DistanceToNearestEnemyStone, nil)
}

func TestIllegalScenarios(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 4, 4),
		p(move.White, 4, 4), // occupied
		p(move.White, 9, 4), // out of bounds
		p(move.White, 4, 5), // fine
	)
	occupied := res.Reports[1]
	is.Equal(occupied.Type, TypeIllegal)
	is.Equal(occupied.CapturedCount, 0)
	is.Equal(occupied.DistanceFromCenter, nil)

	oob := res.Reports[2]
	is.Equal(oob.Type, TypeIllegal)
	is.Equal(oob.SGFCoords, nil)

	// board was untouched: the follow-up contact move sees black alive
	// at (4,4)
	is.Equal(res.Reports[3].Type, TypeContact)
}

func TestSuicideRejected(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 0, 1),
		p(move.White, 7, 7),
		p(move.Black, 1, 0),
		p(move.White, 0, 0), // no liberties, captures nothing
	)
	rep := res.Reports[3]
	is.Equal(rep.Type, TypeIllegal)
	is.Equal(rep.CapturedCount, 0)
}

func TestSelfAtariFlagged(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 0, 1),
		p(move.White, 7, 7),
		p(move.Black, 1, 1),
		p(move.White, 0, 0), // one liberty left at (1,0)
	)
	rep := res.Reports[3]
	is.Equal(rep.Type, TypeContact)
	is.True(rep.SelfAtari)
}

func TestConnectionScenario(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 2, 2),
		p(move.White, 6, 6),
		p(move.Black, 2, 4),
		p(move.White, 6, 2),
		p(move.Black, 2, 3), // joins the two black groups
	)
	rep := res.Reports[4]
	is.Equal(rep.Type, TypeConnection)
	is.True(rep.IsConnection)
	is.True(rep.DistanceFromPreviousFriendlyStone != nil)
	is.Equal(*rep.DistanceFromPreviousFriendlyStone, 1.0)
}

func TestCutScenario(t *testing.T) {
	is := is.New(t)
	// the point (1,1) is the only liberty shared by the two white stones
	res := analyze(t, 9,
		p(move.White, 1, 0),
		p(move.Black, 7, 7),
		p(move.White, 1, 2),
		p(move.Black, 1, 1),
	)
	rep := res.Reports[3]
	is.Equal(rep.Type, TypeCut)
	is.True(rep.IsCut)
	is.True(rep.IsContact)
	// the severed edge stone is down to two liberties
	is.Equal(len(rep.AtariThreats), 1)
}

func TestHaneScenario(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.White, 4, 4),
		p(move.Black, 3, 3),
	)
	rep := res.Reports[1]
	is.Equal(rep.Type, TypeHane)
	is.True(rep.IsHane)
	is.True(!rep.IsContact)
}

func TestEmptyTriangleFlagged(t *testing.T) {
	is := is.New(t)
	res := analyze(t, 9,
		p(move.Black, 2, 2),
		p(move.White, 6, 6),
		p(move.Black, 2, 3),
		p(move.White, 6, 5),
		p(move.Black, 3, 2),
	)
	rep := res.Reports[4]
	is.True(rep.IsEmptyTriangle)
}

func TestDeterministicReplay(t *testing.T) {
	is := is.New(t)
	moves := []move.Move{
		p(move.Black, 3, 3),
		p(move.White, 15, 15),
		p(move.Black, 2, 2),
		p(move.White, 16, 3),
		pass(move.Black),
		p(move.White, 9, 9),
	}
	rec := &Record{BoardSize: 19, Moves: moves}

	res1, err := New(nil).AnalyzeGame(context.Background(), rec)
	is.NoErr(err)
	res2, err := New(nil).AnalyzeGame(context.Background(), rec)
	is.NoErr(err)

	j1, err := json.Marshal(res1.Reports)
	is.NoErr(err)
	j2, err := json.Marshal(res2.Reports)
	is.NoErr(err)
	is.True(bytes.Equal(j1, j2))
}

func TestAnalyzerSingleUse(t *testing.T) {
	is := is.New(t)
	a := New(nil)
	rec := &Record{BoardSize: 9, Moves: []move.Move{p(move.Black, 4, 4)}}
	_, err := a.AnalyzeGame(context.Background(), rec)
	is.NoErr(err)
	is.Equal(a.RunState(), Completed)

	_, err = a.AnalyzeGame(context.Background(), rec)
	is.True(err != nil)
}

func TestNilRecordRejected(t *testing.T) {
	is := is.New(t)
	_, err := New(nil).AnalyzeGame(context.Background(), nil)
	is.True(err != nil)
}

func TestCancellationReturnsPartialReports(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New(nil).AnalyzeGame(ctx, &Record{
		BoardSize: 9,
		Moves:     []move.Move{p(move.Black, 4, 4), p(move.White, 2, 2)},
	})
	is.Equal(err, context.Canceled)
	is.True(res != nil)
	is.Equal(len(res.Reports), 0)
}

package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/JulienBernou/gorhapsody/config"
)

// BatchGameResult holds the outcome for a single game in a batch run.
type BatchGameResult struct {
	GameID string
	// Err is the per-game analysis error, if any. A failed game never
	// aborts the batch.
	Err    error
	Result *Result
}

// BatchResult aggregates a whole batch.
type BatchResult struct {
	Games           []*BatchGameResult
	TotalGames      int
	SuccessfulGames int
	FailedGames     int
}

// AnalyzeBatch analyzes many recorded games concurrently, one fresh
// Analyzer (and so one board and game state) per game. threads caps the
// number of games in flight; <= 0 means no cap. Results come back in
// input order regardless of completion order.
func AnalyzeBatch(ctx context.Context, cfg *config.Config, records []*Record, threads int) (*BatchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}

	results := make([]*BatchGameResult, len(records))
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			res, err := New(cfg).AnalyzeGame(ctx, rec)
			results[i] = &BatchGameResult{
				GameID: GameID(rec),
				Err:    err,
				Result: res,
			}
			if err != nil {
				log.Warn().Err(err).Str("game", results[i].GameID).Msg("game analysis failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batch := &BatchResult{Games: results, TotalGames: len(results)}
	for _, r := range results {
		if r.Err != nil {
			batch.FailedGames++
		} else {
			batch.SuccessfulGames++
		}
	}
	log.Info().
		Int("total", batch.TotalGames).
		Int("failed", batch.FailedGames).
		Msg("batch analysis complete")
	return batch, nil
}

// GameID derives a stable identifier for a record from its board size and
// move list, so batch consumers can correlate results across runs.
func GameID(rec *Record) string {
	if rec == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:", rec.BoardSize)
	for _, m := range rec.Moves {
		sb.WriteString(m.Color().String())
		if m.IsPass() {
			sb.WriteString("--")
		} else {
			sb.WriteString(m.Coord().SGF())
		}
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(sb.String()))
}

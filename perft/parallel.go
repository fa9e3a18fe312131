package perft

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/draughts/game"
)

var ErrBadThreads = errors.New("threads must be at least 1")

// ParallelPerft spreads the root moves of g over threads goroutines, each
// with its own Game. If tt is non-nil it is shared by all of them. g itself
// is left untouched. Cancelling ctx stops the count between root moves.
func ParallelPerft(ctx context.Context, g *game.Game, depth, threads int, tt *TranspositionTable) (uint64, error) {
	logger := zerolog.Ctx(ctx)
	if threads < 1 {
		return 0, ErrBadThreads
	}
	if depth <= 1 {
		return Perft(g, depth), nil
	}
	if tt != nil {
		tt.SetMultiThreadedMode()
		defer tt.SetSingleThreadedMode()
	}

	root := g.State()
	moves := g.LegalMoves()
	jobs := make(chan uint32, len(moves))
	for _, mv := range moves {
		jobs <- mv
	}
	close(jobs)

	var nodes atomic.Uint64
	tstart := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	for t := range min(threads, len(moves)) {
		eg.Go(func() error {
			local, err := game.NewGameFromState(root)
			if err != nil {
				return err
			}
			local.SetStateStackLength(depth)
			for mv := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				local.ApplyMove(mv)
				var n uint64
				if tt != nil {
					n = HashPerft(local, depth-1, tt)
				} else {
					n = stackPerft(local, depth-1)
				}
				nodes.Add(n)
				local.SetState(root)
			}
			logger.Debug().Int("thread", t).Msg("perft-worker-done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	elapsed := time.Since(tstart)
	total := nodes.Load()
	logger.Debug().Int("depth", depth).Int("threads", threads).Uint64("nodes", total).
		Float64("nps", float64(total)/elapsed.Seconds()).Msg("parallel-perft")
	return total, nil
}

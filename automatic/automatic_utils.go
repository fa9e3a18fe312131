package automatic

// Running many random games at once, and collecting what they did.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/draughts/config"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("autoplayGames")
	IsPlaying = expvar.NewInt("autoplayThreads")
}

var (
	ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")
	ErrBadOptions     = errors.New("bad autoplay options")
)

var logHeader = []string{
	"game", "plies", "result", "king_moves", "white", "black", "kings", "fingerprint",
}

// Options controls a batch of random games.
type Options struct {
	NumGames int
	Threads  int
	// Seed, if set, makes the batch reproducible: game i always plays the
	// same moves, whatever the thread count.
	Seed *[32]byte
	// Log, if set, receives one CSV line per finished game.
	Log io.Writer
}

// OptionsFromConfig reads the autoplay keys. The returned closer must be
// called once the games are done; it closes the CSV log file, if any.
func OptionsFromConfig(cfg *config.Config) (Options, func() error, error) {
	opts := Options{
		NumGames: cfg.GetInt(config.ConfigAutoplayGames),
		Threads:  cfg.GetInt(config.ConfigAutoplayThreads),
	}
	closer := func() error { return nil }
	if s := cfg.GetString(config.ConfigAutoplaySeed); s != "" {
		seed, err := DecodeSeed(s)
		if err != nil {
			return opts, closer, err
		}
		opts.Seed = &seed
	}
	if fn := cfg.GetString(config.ConfigAutoplayLogFile); fn != "" {
		f, err := os.Create(fn)
		if err != nil {
			return opts, closer, err
		}
		opts.Log = f
		closer = f.Close
	}
	return opts, closer, nil
}

// PlayRandomGames plays the batch described by cfg.
func PlayRandomGames(ctx context.Context, cfg *config.Config) (*Summary, error) {
	opts, closer, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	summary, err := Play(ctx, opts)
	if cerr := closer(); err == nil {
		err = cerr
	}
	return summary, err
}

// Play runs opts.NumGames random games over opts.Threads goroutines and
// summarizes them. If ctx is cancelled, the games finished so far are
// summarized and ctx's error is returned with the summary.
func Play(ctx context.Context, opts Options) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	if opts.NumGames < 1 || opts.Threads < 1 {
		return nil, fmt.Errorf("%w: %d games, %d threads", ErrBadOptions, opts.NumGames, opts.Threads)
	}
	if IsPlaying.Value() > 0 {
		return nil, ErrAlreadyPlaying
	}
	logger.Debug().Int("games", opts.NumGames).Int("threads", opts.Threads).Msg("starting-autoplay")

	GamesCounter.Set(0)
	jobs := make(chan int, 100)
	var logChan chan []string
	writer := errgroup.Group{}
	if opts.Log != nil {
		logChan = make(chan []string, 100)
		writer.Go(func() error {
			w := csv.NewWriter(opts.Log)
			err := w.Write(logHeader)
			// keep draining after a write error so workers never block.
			for rec := range logChan {
				if err == nil {
					err = w.Write(rec)
				}
			}
			w.Flush()
			logger.Debug().Msg("exiting game logger")
			if err != nil {
				return err
			}
			return w.Error()
		})
	}

	tstart := time.Now()
	tallies := make([]*tally, opts.Threads)
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(jobs)
		for i := range opts.NumGames {
			select {
			case jobs <- i:
			case <-ectx.Done():
				logger.Info().Int("queued", i).Msg("got stop signal, exiting soon")
				return ectx.Err()
			}
			if (i+1)%100000 == 0 {
				logger.Debug().Int("queued", i+1).Msg("queued-jobs")
			}
		}
		return nil
	})
	for t := range opts.Threads {
		tl := newTally()
		tallies[t] = tl
		eg.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner()
			for i := range jobs {
				if err := ectx.Err(); err != nil {
					return err
				}
				if opts.Seed != nil {
					r.Reseed(gameSeed(*opts.Seed, i))
				}
				rec := r.PlayGame(i)
				tl.add(rec)
				GamesCounter.Add(1)
				if logChan != nil {
					select {
					case logChan <- recordToCSV(rec):
					case <-ectx.Done():
						return ectx.Err()
					}
				}
			}
			return nil
		})
	}

	err := eg.Wait()
	elapsed := time.Since(tstart)
	if logChan != nil {
		close(logChan)
		if werr := writer.Wait(); werr != nil && err == nil {
			err = werr
		}
	}
	summary := summarize(tallies, elapsed)
	if opts.Seed != nil {
		summary.Seed = EncodeSeed(*opts.Seed)
	}
	logger.Info().Int("games", summary.Games).Uint64("moves", summary.Moves).
		Float64("seconds", summary.Seconds).Msg("autoplay-done")
	return summary, err
}

func recordToCSV(rec GameRecord) []string {
	return []string{
		strconv.Itoa(rec.Index),
		strconv.Itoa(rec.Plies),
		rec.Result.String(),
		strconv.Itoa(int(rec.Final.KingMoves)),
		fmt.Sprintf("%08x", rec.Final.White),
		fmt.Sprintf("%08x", rec.Final.Black),
		fmt.Sprintf("%08x", rec.Final.Kings),
		fmt.Sprintf("%016x", rec.Fingerprint),
	}
}

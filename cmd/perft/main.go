// perft counts the move tree of the start position, or of a position given
// with the position-* settings, to each depth up to perft-depth.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/domino14/draughts/config"
	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/perft"
)

var (
	GitVersion string
)

func main() {
	os.Exit(start())
}

// start runs the count and returns the exit code once deferred profile
// writers have run.
func start() int {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	log.Info().Str("version", GitVersion).Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	err := run(ctx, cfg)

	if cfg.GetString(config.ConfigMemProfile) != "" {
		writeMemProfile(cfg.GetString(config.ConfigMemProfile))
	}
	if err != nil {
		log.Error().Err(err).Msg("perft failed")
		return 1
	}
	return 0
}

func startingGame(cfg *config.Config) (*game.Game, error) {
	if !cfg.HasPosition() {
		return game.NewGame(), nil
	}
	var s game.State
	var err error
	if s.White, err = cfg.Mask(config.ConfigPositionWhite); err != nil {
		return nil, err
	}
	if s.Black, err = cfg.Mask(config.ConfigPositionBlack); err != nil {
		return nil, err
	}
	if s.Kings, err = cfg.Mask(config.ConfigPositionKings); err != nil {
		return nil, err
	}
	s.WhiteToMove = cfg.GetBool(config.ConfigPositionWhiteToMove)
	return game.NewGameFromState(s)
}

func run(ctx context.Context, cfg *config.Config) error {
	g, err := startingGame(cfg)
	if err != nil {
		return err
	}
	fmt.Println(g.ToDisplayText())

	depth := cfg.GetInt(config.ConfigPerftDepth)
	threads := cfg.GetInt(config.ConfigPerftThreads)
	p := message.NewPrinter(language.English)

	if cfg.GetBool(config.ConfigPerftDivide) {
		var total uint64
		for _, e := range perft.Divide(g, depth) {
			p.Printf("%v: %d\n", e.Squares, e.Nodes)
			total += e.Nodes
		}
		p.Printf("total: %d\n", total)
		return nil
	}

	var tt *perft.TranspositionTable
	if frac := cfg.GetFloat64(config.ConfigPerftHashFraction); frac > 0 {
		tt = perft.NewTranspositionTable(frac)
	}

	for d := 1; d <= depth; d++ {
		tstart := time.Now()
		var nodes uint64
		switch {
		case threads > 1:
			nodes, err = perft.ParallelPerft(ctx, g, d, threads, tt)
		case tt != nil:
			nodes = perft.HashPerft(g, d, tt)
		default:
			nodes = perft.Perft(g, d)
		}
		if err != nil {
			return err
		}
		elapsed := time.Since(tstart).Seconds()
		nps := 0.0
		if elapsed > 0 {
			nps = float64(nodes) / elapsed
		}
		p.Printf("perft(%d) = %d\t%.3fs\t%.0f nodes/s\n", d, nodes, elapsed, nps)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if tt != nil {
		st := tt.Stats()
		log.Info().Uint64("lookups", st.Lookups).Uint64("hits", st.Hits).
			Uint64("created", st.Created).Uint64("collisions", st.Collisions).
			Msg("transposition-table-stats")
	}
	return nil
}

func writeMemProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		panic("could not create memory profile: " + err.Error())
	}
	defer f.Close()
	memstats := &runtime.MemStats{}
	runtime.ReadMemStats(memstats)
	log.Info().Interface("memstats", memstats).Msg("memory-stats")
	if err := pprof.WriteHeapProfile(f); err != nil {
		panic("could not write memory profile: " + err.Error())
	}
	log.Info().Msg("wrote memory profile")
}

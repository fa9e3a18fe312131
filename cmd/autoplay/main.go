// autoplay plays random games between two random players and reports how
// they ended. Given analyze-log, it summarizes an earlier run's CSV log
// instead.
package main

import (
	"context"
	"errors"
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

	"github.com/domino14/draughts/automatic"
	"github.com/domino14/draughts/config"
)

var (
	GitVersion string
)

func main() {
	os.Exit(start())
}

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
	logger.Debug().Msg("Debug logging is on")
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

	var summary *automatic.Summary
	var err error
	if path := cfg.GetString(config.ConfigAnalyzeLog); path != "" {
		summary, err = automatic.AnalyzeLogFile(path)
	} else {
		summary, err = automatic.PlayRandomGames(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			// report what finished before the interrupt.
			log.Info().Msg("got quit signal...")
			err = nil
		}
	}

	if cfg.GetString(config.ConfigMemProfile) != "" {
		writeMemProfile(cfg.GetString(config.ConfigMemProfile))
	}
	if err != nil {
		log.Error().Err(err).Msg("autoplay failed")
		return 1
	}
	if err := summary.Write(os.Stdout, cfg.GetString(config.ConfigReportFormat)); err != nil {
		log.Error().Err(err).Msg("could not write report")
		return 1
	}
	return 0
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

// Package config loads settings for the draughts binaries from, in order of
// precedence, command-line flags, DRAUGHTS_* environment variables, an
// optional config.yaml, and the defaults below.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	*viper.Viper
}

const (
	ConfigDebug      = "debug"
	ConfigCPUProfile = "cpu-profile"
	ConfigMemProfile = "mem-profile"

	ConfigAutoplayGames   = "autoplay-games"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigAutoplaySeed    = "autoplay-seed"
	ConfigAutoplayLogFile = "autoplay-log-file"
	ConfigReportFormat    = "report-format"
	ConfigAnalyzeLog      = "analyze-log"

	ConfigPerftDepth        = "perft-depth"
	ConfigPerftThreads      = "perft-threads"
	ConfigPerftDivide       = "perft-divide"
	ConfigPerftHashFraction = "perft-hash-fraction"

	ConfigPositionWhite       = "position-white"
	ConfigPositionBlack       = "position-black"
	ConfigPositionKings       = "position-kings"
	ConfigPositionWhiteToMove = "position-white-to-move"
)

var ErrBadValue = errors.New("bad config value")

// Load reads flags from args and then the environment and config file.
// Unknown flags are an error.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("draughts", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")

	fs.Int(ConfigAutoplayGames, 100000, "number of random games to play")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "goroutines playing random games")
	fs.String(ConfigAutoplaySeed, "", "base64 32-byte seed for reproducible games")
	fs.String(ConfigAutoplayLogFile, "", "CSV file receiving one line per game")
	fs.String(ConfigReportFormat, "text", "report format: text, yaml or json")
	fs.String(ConfigAnalyzeLog, "", "summarize an existing CSV game log instead of playing")

	fs.Int(ConfigPerftDepth, 8, "perft depth in plies")
	fs.Int(ConfigPerftThreads, runtime.NumCPU(), "goroutines for perft; 1 counts serially")
	fs.Bool(ConfigPerftDivide, false, "print the count below each root move")
	fs.Float64(ConfigPerftHashFraction, 0, "fraction of system memory for the perft table; 0 disables it")

	fs.String(ConfigPositionWhite, "", "white pieces as a hex mask; empty for the start position")
	fs.String(ConfigPositionBlack, "", "black pieces as a hex mask")
	fs.String(ConfigPositionKings, "0", "kings as a hex mask")
	fs.Bool(ConfigPositionWhiteToMove, true, "white to move in the given position")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("draughts")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.draughts")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// DefaultConfig is the configuration with no flags given.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// SanitizedSettings returns the settings worth logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	for k, v := range settings {
		if s, ok := v.(string); ok && s == "" {
			delete(settings, k)
		}
	}
	return settings
}

// Mask reads a hex piece mask such as "fff00000" or "0xFFF".
func (c *Config) Mask(key string) (uint32, error) {
	return ParseMask(c.GetString(key))
}

func ParseMask(s string) (uint32, error) {
	var m uint32
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if _, err := fmt.Sscanf(s, "%x", &m); err != nil {
		return 0, fmt.Errorf("%w: mask %q: %w", ErrBadValue, s, err)
	}
	return m, nil
}

// HasPosition reports whether a start position other than the initial one
// was configured.
func (c *Config) HasPosition() bool {
	return c.GetString(ConfigPositionWhite) != "" || c.GetString(ConfigPositionBlack) != ""
}

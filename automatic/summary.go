package automatic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/domino14/draughts/game"
	"github.com/domino14/draughts/stats"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Confidence level, in percent, of the game length interval.
const lengthConfidence = 95

const histogramBins = 12

// tally accumulates the games of one worker.
type tally struct {
	whiteWins, blackWins, draws int
	moves                       uint64
	lengths                     stats.Statistic
	plies                       []float64
	fingerprints                map[uint64]struct{}
}

func newTally() *tally {
	return &tally{fingerprints: make(map[uint64]struct{})}
}

func (t *tally) add(rec GameRecord) {
	switch rec.Result {
	case game.WhiteWins:
		t.whiteWins++
	case game.BlackWins:
		t.blackWins++
	default:
		t.draws++
	}
	t.moves += uint64(rec.Plies)
	t.lengths.Push(float64(rec.Plies))
	t.plies = append(t.plies, float64(rec.Plies))
	t.fingerprints[rec.Fingerprint] = struct{}{}
}

// Summary is the report of a batch of random games.
type Summary struct {
	Games          int     `json:"games" yaml:"games"`
	Moves          uint64  `json:"moves" yaml:"moves"`
	Seconds        float64 `json:"seconds" yaml:"seconds"`
	GamesPerSecond float64 `json:"games_per_second" yaml:"games_per_second"`
	MovesPerSecond float64 `json:"moves_per_second" yaml:"moves_per_second"`

	WhiteWins int `json:"white_wins" yaml:"white_wins"`
	BlackWins int `json:"black_wins" yaml:"black_wins"`
	Draws     int `json:"draws" yaml:"draws"`
	// WhiteBlackRatio is zero when black never won.
	WhiteBlackRatio float64 `json:"white_black_ratio" yaml:"white_black_ratio"`
	DrawRatio       float64 `json:"draw_ratio" yaml:"draw_ratio"`

	MeanPlies   float64    `json:"mean_plies" yaml:"mean_plies"`
	StdevPlies  float64    `json:"stdev_plies" yaml:"stdev_plies"`
	MedianPlies float64    `json:"median_plies" yaml:"median_plies"`
	MinPlies    int        `json:"min_plies" yaml:"min_plies"`
	MaxPlies    int        `json:"max_plies" yaml:"max_plies"`
	PliesCI     [2]float64 `json:"plies_ci95" yaml:"plies_ci95"`

	DistinctGames int    `json:"distinct_games" yaml:"distinct_games"`
	Seed          string `json:"seed,omitempty" yaml:"seed,omitempty"`

	plies []float64
}

func summarize(tallies []*tally, elapsed time.Duration) *Summary {
	s := &Summary{
		WhiteWins: lo.SumBy(tallies, func(t *tally) int { return t.whiteWins }),
		BlackWins: lo.SumBy(tallies, func(t *tally) int { return t.blackWins }),
		Draws:     lo.SumBy(tallies, func(t *tally) int { return t.draws }),
		Moves:     lo.SumBy(tallies, func(t *tally) uint64 { return t.moves }),
		Seconds:   elapsed.Seconds(),
	}
	s.Games = s.WhiteWins + s.BlackWins + s.Draws

	var lengths stats.Statistic
	distinct := make(map[uint64]struct{})
	for _, t := range tallies {
		lengths.Merge(&t.lengths)
		s.plies = append(s.plies, t.plies...)
		for fp := range t.fingerprints {
			distinct[fp] = struct{}{}
		}
	}
	s.DistinctGames = len(distinct)
	s.fillLengths(&lengths)

	if s.Seconds > 0 {
		s.GamesPerSecond = float64(s.Games) / s.Seconds
		s.MovesPerSecond = float64(s.Moves) / s.Seconds
	}
	if s.BlackWins > 0 {
		s.WhiteBlackRatio = float64(s.WhiteWins) / float64(s.BlackWins)
	}
	if s.Games > 0 {
		s.DrawRatio = float64(s.Draws) / float64(s.Games)
	}
	return s
}

func (s *Summary) fillLengths(lengths *stats.Statistic) {
	if lengths.Iterations() == 0 {
		return
	}
	s.MeanPlies = lengths.Mean()
	s.StdevPlies = lengths.Stdev()
	s.MinPlies = int(lengths.Min())
	s.MaxPlies = int(lengths.Max())
	low, high := lengths.ConfidenceInterval(lengthConfidence)
	s.PliesCI = [2]float64{low, high}
	s.MedianPlies = stats.Median(s.plies)
}

// Write renders the summary in one of the Format* formats.
func (s *Summary) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return s.writeText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (s *Summary) writeText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "random games: %d\n", s.Games)
	if s.Seed != "" {
		p.Fprintf(w, "seed: %s\n", s.Seed)
	}
	p.Fprintf(w, "time: %.3fs\n", s.Seconds)
	p.Fprintf(w, "moves: %d\n", s.Moves)
	p.Fprintf(w, "games/s: %.1f\n", s.GamesPerSecond)
	p.Fprintf(w, "moves/s: %.1f\n", s.MovesPerSecond)
	p.Fprintf(w, "white wins: %d, black wins: %d, draws: %d\n", s.WhiteWins, s.BlackWins, s.Draws)
	p.Fprintf(w, "white/black win ratio: %.4f\n", s.WhiteBlackRatio)
	p.Fprintf(w, "draws/games ratio: %.4f\n", s.DrawRatio)
	p.Fprintf(w, "plies per game: mean %.2f, stdev %.2f, median %.0f, min %d, max %d\n",
		s.MeanPlies, s.StdevPlies, s.MedianPlies, s.MinPlies, s.MaxPlies)
	p.Fprintf(w, "mean plies %d%% interval: [%.2f, %.2f]\n", lengthConfidence, s.PliesCI[0], s.PliesCI[1])
	_, err := p.Fprintf(w, "distinct games: %d\n", s.DistinctGames)
	if err != nil {
		return err
	}
	if len(s.plies) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\ngame length histogram (plies):")
	return histogram.Fprint(w, histogram.Hist(histogramBins, s.plies), histogram.Linear(40))
}

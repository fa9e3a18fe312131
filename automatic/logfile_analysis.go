package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/draughts/game"
)

var ErrBadLogFile = errors.New("malformed game log")

// AnalyzeLogFile reads back a CSV game log and summarizes it. Timing is not
// in the log, so the rate fields of the summary are zero.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return AnalyzeLog(file)
}

func AnalyzeLog(in io.Reader) (*Summary, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(logHeader)

	t := newTally()
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLogFile, err)
		}
		line++
		if record[0] == logHeader[0] {
			continue
		}
		rec, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadLogFile, line, err)
		}
		t.add(rec)
	}
	return summarize([]*tally{t}, 0), nil
}

func parseRecord(record []string) (GameRecord, error) {
	var rec GameRecord
	var err error
	if rec.Index, err = strconv.Atoi(record[0]); err != nil {
		return rec, err
	}
	if rec.Plies, err = strconv.Atoi(record[1]); err != nil {
		return rec, err
	}
	switch record[2] {
	case game.WhiteWins.String():
		rec.Result = game.WhiteWins
	case game.BlackWins.String():
		rec.Result = game.BlackWins
	case game.Draw.String():
		rec.Result = game.Draw
	default:
		return rec, fmt.Errorf("unknown result %q", record[2])
	}
	if rec.Fingerprint, err = strconv.ParseUint(record[7], 16, 64); err != nil {
		return rec, err
	}
	return rec, nil
}

// Package automatic plays random draughts games against itself, the
// throughput benchmark for the move generator. Every ply picks a legal move
// uniformly at random until one side has no moves or the king-move draw
// rule triggers.
package automatic

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/domino14/draughts/game"
)

// GameRecord describes one finished game.
type GameRecord struct {
	Index  int
	Plies  int
	Result game.Result
	// Final is the position the game ended in.
	Final game.State
	// Fingerprint is a hash of the whole move sequence; equal fingerprints
	// mean (barring collisions) the same game was played twice.
	Fingerprint uint64
}

// GameRunner plays games one after another on a single Game. It is not
// safe for concurrent use.
type GameRunner struct {
	game   *game.Game
	rng    *frand.RNG
	hasher hash.Hash64
	buf    [4]byte
}

// NewGameRunner returns a runner drawing from a fresh unseeded RNG.
func NewGameRunner() *GameRunner {
	return &GameRunner{
		game:   game.NewGame(),
		rng:    frand.New(),
		hasher: xxhash.New(),
	}
}

// Reseed makes the following game deterministic.
func (r *GameRunner) Reseed(seed [32]byte) {
	r.rng = frand.NewCustom(seed[:], 1024, 12)
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlayGame plays a full game from the starting position.
func (r *GameRunner) PlayGame(index int) GameRecord {
	r.game.Reset()
	r.hasher.Reset()
	plies := 0
	for !r.game.IsDraw() {
		moves := r.game.LegalMoves()
		if len(moves) == 0 {
			break
		}
		mv := moves[r.rng.Intn(len(moves))]
		r.game.ApplyMove(mv)
		binary.LittleEndian.PutUint32(r.buf[:], mv)
		r.hasher.Write(r.buf[:])
		plies++
	}
	return GameRecord{
		Index:       index,
		Plies:       plies,
		Result:      r.game.Result(),
		Final:       r.game.State(),
		Fingerprint: r.hasher.Sum64(),
	}
}

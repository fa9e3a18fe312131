// Package game tracks a draughts game on top of a bitboard: whose turn it
// is, the legal moves for that side, and the counter behind the draw rule.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/draughts/bitboard"
)

// DrawThreshold is the number of consecutive non-capturing king moves after
// which the game is a draw.
const DrawThreshold = 20

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidState = errors.New("invalid state")
)

// Result is the outcome of a game as seen from the current position.
type Result int

const (
	Playing Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case Playing:
		return "playing"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Game is not safe for concurrent use. Drivers that fan out give each
// goroutine its own Game, restored from a State.
type Game struct {
	board *bitboard.Board
	// kingMoves counts consecutive non-capturing king moves, by either side.
	kingMoves   uint8
	whiteToMove bool

	stateStack []State
	stackPtr   int
}

func NewGame() *Game {
	g := &Game{board: bitboard.NewBoard()}
	g.Reset()
	return g
}

// Reset puts the pieces in their starting squares with white to move.
func (g *Game) Reset() {
	g.board.Reset()
	g.kingMoves = 0
	g.whiteToMove = true
	g.stackPtr = 0
}

func (g *Game) Board() *bitboard.Board {
	return g.board
}

func (g *Game) WhiteToMove() bool {
	return g.whiteToMove
}

func (g *Game) KingMoves() int {
	return int(g.kingMoves)
}

// LegalMoves lists the moves of the side to move. Captures are compulsory,
// so when any capture exists only capture chains are returned. An empty
// list means the side to move has lost.
func (g *Game) LegalMoves() []uint32 {
	if g.whiteToMove {
		if j := g.board.WhiteJumpers(); j != 0 {
			return g.board.WhiteJumpList(j)
		}
		return g.board.WhiteMoveList()
	}
	if j := g.board.BlackJumpers(); j != 0 {
		return g.board.BlackJumpList(j)
	}
	return g.board.BlackMoveList()
}

// HasMoves is a cheaper LegalMoves() != empty.
func (g *Game) HasMoves() bool {
	if g.whiteToMove {
		return g.board.WhiteMovers()|g.board.WhiteJumpers() != 0
	}
	return g.board.BlackMovers()|g.board.BlackJumpers() != 0
}

func (g *Game) IsDraw() bool {
	return g.kingMoves >= DrawThreshold
}

// ApplyMove plays mv for the side to move and passes the turn. mv must come
// from LegalMoves; nothing is checked.
func (g *Game) ApplyMove(mv uint32) {
	var own, enemy uint32
	if g.whiteToMove {
		own, enemy = g.board.White(), g.board.Black()
	} else {
		own, enemy = g.board.Black(), g.board.White()
	}
	kingMove := mv&own&g.board.Kings() != 0 && mv&enemy == 0

	if g.whiteToMove {
		g.board.ApplyWhiteMove(mv)
	} else {
		g.board.ApplyBlackMove(mv)
	}

	if kingMove {
		if g.kingMoves < math.MaxUint8 {
			g.kingMoves++
		}
	} else {
		g.kingMoves = 0
	}
	g.whiteToMove = !g.whiteToMove
}

// PlayMove is ApplyMove with validation: the game must still be going and
// mv must be one of the legal moves.
func (g *Game) PlayMove(mv uint32) error {
	if g.IsDraw() {
		return fmt.Errorf("%w: drawn after %d king moves", ErrGameOver, g.kingMoves)
	}
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return fmt.Errorf("%w: %s", ErrGameOver, g.Result())
	}
	if !lo.Contains(moves, mv) {
		log.Debug().Str("move", fmt.Sprintf("%08x", mv)).Int("legal", len(moves)).Msg("rejected-move")
		return fmt.Errorf("%w: %08x", ErrIllegalMove, mv)
	}
	g.ApplyMove(mv)
	return nil
}

// Result reports the outcome of the current position. The draw rule is
// checked first; otherwise a side to move without moves has lost.
func (g *Game) Result() Result {
	if g.IsDraw() {
		return Draw
	}
	if g.HasMoves() {
		return Playing
	}
	if g.whiteToMove {
		return BlackWins
	}
	return WhiteWins
}

// Winner returns 0 if white won, 1 if black won, and -1 for a draw or a game
// still in progress.
func (g *Game) Winner() int {
	switch g.Result() {
	case WhiteWins:
		return 0
	case BlackWins:
		return 1
	}
	return -1
}

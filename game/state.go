package game

import (
	"fmt"

	"github.com/domino14/draughts/bitboard"
)

// State is everything needed to resume a game: the three piece sets, the
// draw counter and the side to move.
type State struct {
	White       uint32 `json:"white" yaml:"white"`
	Black       uint32 `json:"black" yaml:"black"`
	Kings       uint32 `json:"kings" yaml:"kings"`
	KingMoves   uint8  `json:"king_moves" yaml:"king_moves"`
	WhiteToMove bool   `json:"white_to_move" yaml:"white_to_move"`
}

// Validate checks the board invariants that SetState relies on.
func (s State) Validate() error {
	if overlap := s.White & s.Black; overlap != 0 {
		return fmt.Errorf("%w: squares %v are both white and black",
			ErrInvalidState, bitboard.SquareList(overlap))
	}
	if stray := s.Kings &^ (s.White | s.Black); stray != 0 {
		return fmt.Errorf("%w: kings on empty squares %v",
			ErrInvalidState, bitboard.SquareList(stray))
	}
	return nil
}

func (g *Game) State() State {
	return State{
		White:       g.board.White(),
		Black:       g.board.Black(),
		Kings:       g.board.Kings(),
		KingMoves:   g.kingMoves,
		WhiteToMove: g.whiteToMove,
	}
}

// SetState restores a snapshot taken with State. A state that does not pass
// Validate is sanitized by the board setters rather than restored verbatim.
func (g *Game) SetState(s State) {
	g.board.SetWhite(s.White)
	g.board.SetBlack(s.Black)
	g.board.SetKings(s.Kings)
	g.kingMoves = s.KingMoves
	g.whiteToMove = s.WhiteToMove
}

// NewGameFromState builds a game at an arbitrary position.
func NewGameFromState(s State) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := &Game{board: &bitboard.Board{}}
	g.SetState(s)
	return g, nil
}

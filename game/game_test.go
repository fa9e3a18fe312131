package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/draughts/bitboard"
)

var sq = bitboard.Squares

func gameAt(t *testing.T, s State) *Game {
	t.Helper()
	g, err := NewGameFromState(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(g.WhiteToMove())
	is.Equal(g.KingMoves(), 0)
	is.True(!g.IsDraw())
	is.Equal(g.Result(), Playing)
	is.Equal(g.Winner(), -1)
	is.Equal(len(g.LegalMoves()), 7)
	is.Equal(g.State(), State{
		White: bitboard.WhiteStart, Black: bitboard.BlackStart, WhiteToMove: true})
}

func TestTurnsAlternate(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.ApplyMove(sq(9, 13))
	is.True(!g.WhiteToMove())
	assert.ElementsMatch(t, []uint32{
		sq(20, 16), sq(20, 17), sq(21, 17), sq(21, 18),
		sq(22, 18), sq(22, 19), sq(23, 19),
	}, g.LegalMoves())
	g.ApplyMove(sq(22, 18))
	is.True(g.WhiteToMove())
	is.Equal(g.KingMoves(), 0)
}

func TestCapturesAreCompulsory(t *testing.T) {
	is := is.New(t)
	g := gameAt(t, State{White: sq(1, 3), Black: sq(5), WhiteToMove: true})
	is.Equal(g.LegalMoves(), []uint32{sq(1, 5, 10)})

	err := g.PlayMove(sq(3, 7))
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(g.State().White, sq(1, 3)) // rejected move changes nothing

	is.NoErr(g.PlayMove(sq(1, 5, 10)))
	is.Equal(g.Board().Black(), uint32(0))
	is.Equal(g.Result(), WhiteWins)
	is.Equal(g.Winner(), 0)
}

func TestIllegalMoveFromStart(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	before := g.State()
	err := g.PlayMove(sq(8, 13))
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(g.State(), before)
}

func TestBlockedSideLoses(t *testing.T) {
	is := is.New(t)
	g := gameAt(t, State{White: sq(0), Black: sq(4, 9), WhiteToMove: true})
	is.Equal(len(g.LegalMoves()), 0)
	is.True(!g.HasMoves())
	is.Equal(g.Result(), BlackWins)
	is.Equal(g.Winner(), 1)
	is.True(errors.Is(g.PlayMove(sq(0, 4)), ErrGameOver))

	g = gameAt(t, State{White: sq(10)})
	is.Equal(g.Result(), WhiteWins)
}

func TestDrawAfterTwentyKingMoves(t *testing.T) {
	is := is.New(t)
	g := gameAt(t, State{White: sq(0), Black: sq(31), Kings: sq(0, 31), WhiteToMove: true})
	shuffle := []uint32{sq(0, 4), sq(31, 27), sq(4, 0), sq(27, 31)}
	for ply := range DrawThreshold {
		is.True(!g.IsDraw())
		is.NoErr(g.PlayMove(shuffle[ply%len(shuffle)]))
		is.Equal(g.KingMoves(), ply+1)
	}
	is.True(g.IsDraw())
	is.Equal(g.Result(), Draw)
	is.Equal(g.Winner(), -1)
	is.True(errors.Is(g.PlayMove(sq(0, 4)), ErrGameOver))
}

func TestManMoveResetsCounter(t *testing.T) {
	is := is.New(t)
	g := gameAt(t, State{White: sq(0, 3), Black: sq(31), Kings: sq(0, 31), WhiteToMove: true})
	g.ApplyMove(sq(0, 4))
	g.ApplyMove(sq(31, 27))
	is.Equal(g.KingMoves(), 2)
	g.ApplyMove(sq(3, 7))
	is.Equal(g.KingMoves(), 0)
	g.ApplyMove(sq(27, 31))
	is.Equal(g.KingMoves(), 1)
}

func TestKingCaptureResetsCounter(t *testing.T) {
	is := is.New(t)
	g := gameAt(t, State{
		White: sq(13), Black: sq(10, 31), Kings: sq(13, 31),
		KingMoves: 7, WhiteToMove: true,
	})
	is.Equal(g.LegalMoves(), []uint32{sq(13, 10, 6)})
	g.ApplyMove(sq(13, 10, 6))
	is.Equal(g.KingMoves(), 0)
	is.Equal(g.Board().Kings(), sq(6, 31))
}

func TestStateRoundTrip(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	for range 6 {
		g.ApplyMove(g.LegalMoves()[0])
	}
	s := g.State()

	other := NewGame()
	other.SetState(s)
	is.Equal(other.State(), s)
	is.Equal(other.LegalMoves(), g.LegalMoves())
	is.Equal(other.ToDisplayText(), g.ToDisplayText())
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	is.NoErr(NewGame().State().Validate())

	_, err := NewGameFromState(State{White: sq(1, 2), Black: sq(2)})
	is.True(errors.Is(err, ErrInvalidState))

	_, err = NewGameFromState(State{White: sq(1), Kings: sq(1, 5)})
	is.True(errors.Is(err, ErrInvalidState))
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.String(), ""+
		" B B B B \n"+
		"B B B B \n"+
		" B B B B \n"+
		"_ _ _ _ \n"+
		" _ _ _ _ \n"+
		"W W W W \n"+
		" W W W W \n"+
		"W W W W \n"+
		"white: fff\n"+
		"black: fff00000\n")
}

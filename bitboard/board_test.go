package bitboard

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestStartingMovers(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.Equal(b.WhiteMovers(), Squares(8, 9, 10, 11))
	is.Equal(b.BlackMovers(), Squares(20, 21, 22, 23))
	is.Equal(b.WhiteJumpers(), uint32(0))
	is.Equal(b.BlackJumpers(), uint32(0))
}

func TestStartingMoveLists(t *testing.T) {
	b := NewBoard()
	assert.ElementsMatch(t, []uint32{
		Squares(8, 12), Squares(9, 12), Squares(9, 13), Squares(10, 13),
		Squares(10, 14), Squares(11, 14), Squares(11, 15),
	}, b.WhiteMoveList())
	assert.ElementsMatch(t, []uint32{
		Squares(20, 16), Squares(20, 17), Squares(21, 17), Squares(21, 18),
		Squares(22, 18), Squares(22, 19), Squares(23, 19),
	}, b.BlackMoveList())
}

func TestWhiteMenMovingLeft(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetBlack(0)

	type tc struct {
		white  uint32
		movers uint32
	}
	cases := []tc{
		{Squares(7, 15, 23), Squares(7, 15, 23)},
		{Squares(7, 19, 23), Squares(7, 19, 23)},
		{Squares(15, 19, 23), Squares(19, 23)},
		{Squares(7, 15, 23, 31, 11, 19, 27), Squares(11, 19, 27)},
	}
	for _, c := range cases {
		b.SetWhite(c.white)
		is.Equal(b.WhiteMovers(), c.movers)
		is.Equal(b.WhiteJumpers(), uint32(0))
	}
}

func TestWhiteMenMovingRight(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetBlack(0)

	type tc struct {
		white  uint32
		movers uint32
	}
	cases := []tc{
		{Squares(0, 8, 16), Squares(0, 8, 16)},
		{Squares(0, 12, 16), Squares(0, 12, 16)},
		{Squares(8, 12, 16), Squares(12, 16)},
		{Squares(0, 8, 16, 24, 4, 12, 20), Squares(4, 12, 20, 24)},
	}
	for _, c := range cases {
		b.SetWhite(c.white)
		is.Equal(b.WhiteMovers(), c.movers)
	}
}

func TestWhiteMoversWithoutBlack(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetBlack(0)
	b.SetWhite(Squares(22, 23, 18, 19, 12, 13, 9, 11, 6, 2))
	is.Equal(b.WhiteMovers(), Squares(22, 23, 18, 12, 13, 11, 6, 2))
}

func TestSingleWhiteMan(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetBlack(0)
	b.SetWhite(Squares(0))
	moves := b.WhiteMoveList()
	is.Equal(len(moves), 1)
	is.Equal(moves[0], Squares(0, 4))
	b.ApplyWhiteMove(moves[0])
	is.Equal(b.WhiteMovers(), Squares(4))
}

func TestKingMoveList(t *testing.T) {
	is := is.New(t)
	//  K _ _ _ 28-31
	// _ _ K _  24-27
	//  _ _ _ K 20-23
	// _ K _ _  16-19
	//  _ _ K _ 12-15
	// K _ _ _  8 -11
	//  _ K _ _ 4 - 7
	// _ _ _ K  0 - 3
	b := NewBoard()
	b.SetWhite(Squares(3, 5, 8, 14, 17, 23, 26, 28))
	b.SetBlack(0)
	b.SetKings(b.White())

	is.Equal(b.White(), Squares(3, 5, 8, 14, 17, 23, 26, 28))
	is.Equal(b.WhiteMovers(), b.White())
	assert.ElementsMatch(t, []uint32{
		Squares(3, 6), Squares(3, 7),
		Squares(5, 1), Squares(5, 2), Squares(5, 9), Squares(5, 10),
		Squares(8, 4), Squares(8, 12),
		Squares(14, 10), Squares(14, 11), Squares(14, 18), Squares(14, 19),
		Squares(17, 12), Squares(17, 13), Squares(17, 20), Squares(17, 21),
		Squares(23, 19), Squares(23, 27),
		Squares(26, 21), Squares(26, 22), Squares(26, 29), Squares(26, 30),
		Squares(28, 24), Squares(28, 25),
	}, b.WhiteMoveList())
}

func TestWhiteManJumpers(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	type tc struct {
		name    string
		white   uint32
		black   uint32
		jumpers uint32
	}
	cases := []tc{
		{"right from odd", Squares(0, 2, 17, 19), Squares(4, 6, 21, 24), Squares(0, 2, 17)},
		{"left from odd", Squares(1, 3, 16, 18), Squares(4, 6, 21, 24), Squares(1, 3, 18)},
		{"right from even", Squares(4, 6, 21, 24), Squares(9, 11, 26, 28), Squares(4, 6, 21)},
		{"left from even", Squares(5, 7, 20, 22), Squares(9, 11, 24, 26), Squares(5, 7, 22)},
	}
	for _, c := range cases {
		b.SetBlack(0)
		b.SetWhite(c.white)
		b.SetBlack(c.black)
		is.Equal(b.WhiteJumpers(), c.jumpers) // c.name
	}
}

func TestSetterInvariants(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetKings(Squares(0, 31, 15))
	is.Equal(b.Kings(), Squares(0, 31)) // 15 is empty

	// taking over a black king's square removes it from black, the
	// king flag stays since the square is still occupied.
	b.SetWhite(b.White() | Squares(31))
	is.Equal(b.Black()&Squares(31), uint32(0))
	is.Equal(b.White()&b.Black(), uint32(0))
	is.Equal(b.Kings(), Squares(0, 31))

	b.SetWhite(0)
	is.Equal(b.Kings(), uint32(0))
	is.Equal(b.White(), uint32(0))
}

func TestApplyLeavesOpponentAlone(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.ApplyWhiteMove(Squares(8, 12))
	is.Equal(b.White(), Squares(0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12))
	is.Equal(b.Black(), Squares(20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31))
	is.Equal(b.Kings(), uint32(0))
}

func TestPromoteWhite(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetBlack(0)
	b.SetWhite(Squares(24))
	moves := b.WhiteMoveList()
	is.Equal(len(moves), 1)
	is.Equal(moves[0], Squares(24, 28))
	b.ApplyWhiteMove(moves[0])
	is.Equal(b.WhiteMovers(), Squares(28))
	is.Equal(b.White(), Squares(28))
	is.Equal(b.Kings(), Squares(28))
}

func TestPromoteBlack(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.SetWhite(0)
	b.SetBlack(Squares(7))
	moves := b.BlackMoveList()
	is.Equal(len(moves), 1)
	is.Equal(moves[0], Squares(7, 3))
	b.ApplyBlackMove(moves[0])
	is.Equal(b.BlackMovers(), Squares(3))
	is.Equal(b.Black(), Squares(3))
	is.Equal(b.Kings(), Squares(3))
}

func TestCaptures(t *testing.T) {
	is := is.New(t)
	type tc struct {
		name         string
		white, black uint32
		kings        uint32
		whiteMoves   bool
		mv           uint32
		expWhite     uint32
		expBlack     uint32
		expKings     uint32
	}
	cases := []tc{
		{"white man takes man", Squares(1), Squares(5), 0, true,
			Squares(1, 5, 10), Squares(10), 0, 0},
		{"black man takes man and crowns", Squares(5), Squares(9), 0, false,
			Squares(9, 5, 2), 0, Squares(2), Squares(2)},
		{"white king takes man", Squares(13), Squares(10), Squares(13), true,
			Squares(13, 10, 6), Squares(6), 0, Squares(6)},
		{"white king takes king", Squares(13), Squares(10), Squares(10, 13), true,
			Squares(13, 10, 6), Squares(6), 0, Squares(6)},
		{"white man takes king without being crowned", Squares(1), Squares(5), Squares(5), true,
			Squares(1, 5, 10), Squares(10), 0, 0},
	}
	for _, c := range cases {
		b := &Board{}
		b.SetWhite(c.white)
		b.SetBlack(c.black)
		b.SetKings(c.kings)
		if c.whiteMoves {
			b.ApplyWhiteMove(c.mv)
		} else {
			b.ApplyBlackMove(c.mv)
		}
		is.Equal(b.White(), c.expWhite) // c.name
		is.Equal(b.Black(), c.expBlack) // c.name
		is.Equal(b.Kings(), c.expKings) // c.name
	}
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	expected := "" +
		" B B B B \n" +
		"B B B B \n" +
		" B B B B \n" +
		"_ _ _ _ \n" +
		" _ _ _ _ \n" +
		"W W W W \n" +
		" W W W W \n" +
		"W W W W \n" +
		"white: fff\n" +
		"black: fff00000\n"
	is.Equal(b.ToDisplayText(), expected)
}

func TestSquareHelpers(t *testing.T) {
	is := is.New(t)
	is.Equal(Squares(), uint32(0))
	is.Equal(Squares(0, 31), uint32(0x80000001))
	is.Equal(SquareList(Squares(3, 17, 30)), []int{3, 17, 30})
	is.Equal(Row(17), 4)
	is.Equal(Col(17), 1)
	is.Equal(PopCount(BlackStart), 12)
}

// Package bitboard holds the packed representation of an English draughts
// position and everything that can be derived from piece geometry alone:
// which pieces can move or capture, the move and capture-chain lists, and
// move application. It knows nothing about turns or the draw rule.
package bitboard

import (
	"fmt"
	"strings"
)

// Board is three 32-bit sets. kings is always a subset of white|black and
// the two colours never overlap; every mutation re-establishes both.
type Board struct {
	white uint32
	black uint32
	kings uint32
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset sets up the starting position: twelve men each, no kings.
func (b *Board) Reset() {
	b.white = WhiteStart
	b.black = BlackStart
	b.kings = 0
}

// SetWhite replaces the white pieces. Squares taken over from black are
// removed from black.
func (b *Board) SetWhite(pieces uint32) {
	b.white = pieces
	b.black &^= pieces
	b.kings &= b.white | b.black
}

// SetBlack replaces the black pieces. Squares taken over from white are
// removed from white.
func (b *Board) SetBlack(pieces uint32) {
	b.black = pieces
	b.white &^= pieces
	b.kings &= b.white | b.black
}

func (b *Board) SetKings(pieces uint32) {
	b.kings = pieces & (b.white | b.black)
}

func (b *Board) White() uint32 {
	return b.white
}

func (b *Board) Black() uint32 {
	return b.black
}

func (b *Board) Kings() uint32 {
	return b.kings
}

func (b *Board) Occupied() uint32 {
	return b.white | b.black
}

func (b *Board) Empty() uint32 {
	return ^(b.white | b.black)
}

func (b *Board) CopyFrom(other *Board) {
	*b = *other
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) Equals(other *Board) bool {
	return *b == *other
}

// ToDisplayText draws the board with row 7 at the top. Odd rows are indented
// by one space so the playable squares line up diagonally.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		if row%2 == 1 {
			sb.WriteByte(' ')
		}
		for col := range 4 {
			sq := uint32(1) << (row*4 + col)
			switch {
			case b.white&sq != 0:
				sb.WriteByte('W')
			case b.black&sq != 0:
				sb.WriteByte('B')
			default:
				sb.WriteByte('_')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "white: %x\nblack: %x\n", b.white, b.black)
	return sb.String()
}

func (b *Board) String() string {
	return b.ToDisplayText()
}

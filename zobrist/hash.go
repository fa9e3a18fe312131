package zobrist

import (
	"math/bits"

	"lukechampine.com/frand"

	"github.com/domino14/draughts/bitboard"
	"github.com/domino14/draughts/game"
)

const bignum = 1<<63 - 2

// piece kinds, in the order of the second index of posTable.
const (
	whiteMan = iota
	whiteKing
	blackMan
	blackKing
	numKinds
)

// Zobrist hashes draughts positions, including the side to move and the
// king-move counter, so two positions with the same pieces but a different
// distance to the draw rule hash differently.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	blackToMove uint64

	posTable  [bitboard.NumSquares][numKinds]uint64
	kingMoves [256]uint64
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for i := range z.kingMoves {
		z.kingMoves[i] = frand.Uint64n(bignum) + 1
	}
	z.blackToMove = frand.Uint64n(bignum) + 1
}

func kinds(s game.State) [numKinds]uint32 {
	return [numKinds]uint32{
		whiteMan:  s.White &^ s.Kings,
		whiteKing: s.White & s.Kings,
		blackMan:  s.Black &^ s.Kings,
		blackKing: s.Black & s.Kings,
	}
}

func (z *Zobrist) xorSquares(key uint64, set uint32, kind int) uint64 {
	for set != 0 {
		key ^= z.posTable[bits.TrailingZeros32(set)][kind]
		set &= set - 1
	}
	return key
}

func (z *Zobrist) Hash(s game.State) uint64 {
	key := uint64(0)
	for kind, set := range kinds(s) {
		key = z.xorSquares(key, set, kind)
	}
	if !s.WhiteToMove {
		key ^= z.blackToMove
	}
	key ^= z.kingMoves[s.KingMoves]
	return key
}

// AddMove updates key, the hash of before, into the hash of after. Only the
// squares that changed are visited, which for a simple move is two.
func (z *Zobrist) AddMove(key uint64, before, after game.State) uint64 {
	b, a := kinds(before), kinds(after)
	for kind := range numKinds {
		key = z.xorSquares(key, b[kind]^a[kind], kind)
	}
	if before.WhiteToMove != after.WhiteToMove {
		key ^= z.blackToMove
	}
	if before.KingMoves != after.KingMoves {
		key ^= z.kingMoves[before.KingMoves]
		key ^= z.kingMoves[after.KingMoves]
	}
	return key
}

package bitboard

import "math/bits"

// The 32 playable squares are numbered 0..31, four to a row, with row 0 on
// white's side of the board. Even rows sit one half-square to the left of
// odd rows, so the bit offset of a diagonal step depends on the row parity.
//
//	row 7   28  29  30  31
//	row 6 24  25  26  27
//	...
//	row 1    4   5   6   7
//	row 0  0   1   2   3

// Direction is one of the four diagonals. Up is toward row 7.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "none"
}

const (
	NumSquares = 32

	EvenRows uint32 = 0x0F0F0F0F
	OddRows  uint32 = 0xF0F0F0F0

	WhiteStart uint32 = 0x00000FFF
	BlackStart uint32 = 0xFFF00000

	// A white man reaching row 7, or a black man reaching row 0, is crowned.
	WhiteKingRow uint32 = 0xF0000000
	BlackKingRow uint32 = 0x0000000F
)

type step struct {
	from  uint32
	shift int
}

// steps is indexed by direction and then by row parity (0 even, 1 odd).
// from holds the squares of that parity that can take the step without
// leaving the board or wrapping to the opposite edge.
var steps = [4][2]step{
	UpLeft:    {{0x0E0E0E0E, 3}, {0x00F0F0F0, 4}},
	UpRight:   {{0x0F0F0F0F, 4}, {0x00707070, 5}},
	DownLeft:  {{0x0E0E0E00, -5}, {0xF0F0F0F0, -4}},
	DownRight: {{0x0F0F0F00, -4}, {0x70707070, -3}},
}

// leaps are two steps in the same direction. Their offset does not depend on
// parity since every leap crosses one row of each kind.
var leaps = [4]step{
	UpLeft:    {0x00EEEEEE, 7},
	UpRight:   {0x00777777, 9},
	DownLeft:  {0xEEEEEE00, -9},
	DownRight: {0x77777700, -7},
}

var parityMask = [2]uint32{EvenRows, OddRows}

var (
	upDirs   = []Direction{UpLeft, UpRight}
	downDirs = []Direction{DownLeft, DownRight}
	kingDirs = []Direction{UpLeft, UpRight, DownLeft, DownRight}
)

func parity(sq uint32) int {
	if sq&EvenRows != 0 {
		return 0
	}
	return 1
}

// toward moves every square in set n places; positive n moves up.
func toward(set uint32, n int) uint32 {
	if n > 0 {
		return set << n
	}
	return set >> -n
}

// back is the inverse of toward: bit i of the result is bit i+n of set.
func back(set uint32, n int) uint32 {
	if n > 0 {
		return set >> n
	}
	return set << -n
}

// highest isolates the most significant square in set, which must be non-zero.
func highest(set uint32) uint32 {
	return 1 << (31 - bits.LeadingZeros32(set))
}

// Squares builds a mask out of square indices.
func Squares(sqs ...int) uint32 {
	var m uint32
	for _, sq := range sqs {
		m |= 1 << sq
	}
	return m
}

// SquareList returns the squares in mask in ascending order.
func SquareList(mask uint32) []int {
	sqs := make([]int, 0, bits.OnesCount32(mask))
	for mask != 0 {
		sq := bits.TrailingZeros32(mask)
		sqs = append(sqs, sq)
		mask &= mask - 1
	}
	return sqs
}

func Row(sq int) int {
	return sq / 4
}

func Col(sq int) int {
	return sq % 4
}

func PopCount(mask uint32) int {
	return bits.OnesCount32(mask)
}

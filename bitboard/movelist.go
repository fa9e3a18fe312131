package bitboard

// appendSteps appends one origin|destination mask per empty neighbour of
// each piece in pieces, highest square first.
func appendSteps(moves []uint32, pieces, empty uint32, dirs []Direction) []uint32 {
	for pieces != 0 {
		sq := highest(pieces)
		p := parity(sq)
		for _, d := range dirs {
			s := steps[d][p]
			if sq&s.from == 0 {
				continue
			}
			if dest := toward(sq, s.shift); dest&empty != 0 {
				moves = append(moves, sq|dest)
			}
		}
		pieces ^= sq
	}
	return moves
}

// WhiteMoveList lists every non-capturing white move. It does not look at
// captures; when white has jumpers the caller must use WhiteJumpList.
func (b *Board) WhiteMoveList() []uint32 {
	moves := make([]uint32, 0, 32)
	m := b.WhiteMovers()
	empty := b.Empty()
	moves = appendSteps(moves, m, empty, upDirs)
	return appendSteps(moves, m&b.kings, empty, downDirs)
}

// BlackMoveList is WhiteMoveList for black.
func (b *Board) BlackMoveList() []uint32 {
	moves := make([]uint32, 0, 32)
	m := b.BlackMovers()
	empty := b.Empty()
	moves = appendSteps(moves, m, empty, downDirs)
	return appendSteps(moves, m&b.kings, empty, upDirs)
}

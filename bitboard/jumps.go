package bitboard

// appendChains appends every maximal capture chain that starts with the piece
// on sq. enemy and empty are local to the branch being explored; the board
// itself is never touched.
//
// A chain is the XOR of its single jumps (from|over|land), so every
// intermediate landing square cancels out and the result holds the origin,
// the captured pieces and the final square.
//
// Men keep their forward directions for the whole chain and see each captured
// square as empty afterwards. Kings see each captured piece as no longer an
// enemy (the square stays blocked) and toggle the square they leave, which
// frees their origin and blocks any landing square already used.
func appendChains(jumps []uint32, sq, enemy, empty uint32, dirs []Direction, king bool) []uint32 {
	p := parity(sq)
	for _, d := range dirs {
		l := leaps[d]
		if sq&l.from == 0 {
			continue
		}
		over := toward(sq, steps[d][p].shift)
		land := toward(sq, l.shift)
		if over&enemy == 0 || land&empty == 0 {
			continue
		}
		jump := sq | over | land

		start := len(jumps)
		if king {
			jumps = appendChains(jumps, land, enemy^over, empty^sq, dirs, true)
		} else {
			jumps = appendChains(jumps, land, enemy, empty^over, dirs, false)
		}
		if len(jumps) == start {
			jumps = append(jumps, jump)
			continue
		}
		for i := start; i < len(jumps); i++ {
			jumps[i] ^= jump
		}
	}
	return jumps
}

func jumpList(jumpers, enemy, kings, empty uint32, manDirs []Direction) []uint32 {
	jumps := make([]uint32, 0, 32)
	for jumpers != 0 {
		sq := highest(jumpers)
		if sq&kings != 0 {
			jumps = appendChains(jumps, sq, enemy, empty, kingDirs, true)
		} else {
			jumps = appendChains(jumps, sq, enemy, empty, manDirs, false)
		}
		jumpers ^= sq
	}
	return jumps
}

// WhiteJumpList enumerates every complete capture chain for the given white
// jumpers (normally WhiteJumpers()). Different paths that touch the same
// squares show up as separate, identical entries.
func (b *Board) WhiteJumpList(jumpers uint32) []uint32 {
	return jumpList(jumpers&b.white, b.black, b.kings, b.Empty(), upDirs)
}

// BlackJumpList is WhiteJumpList for black.
func (b *Board) BlackJumpList(jumpers uint32) []uint32 {
	return jumpList(jumpers&b.black, b.white, b.kings, b.Empty(), downDirs)
}

package bitboard

// movers returns the subset of pieces with an empty square one step away in
// any of dirs.
func movers(pieces, empty uint32, dirs []Direction) uint32 {
	if pieces == 0 {
		return 0
	}
	var m uint32
	for _, d := range dirs {
		for p := range 2 {
			s := steps[d][p]
			m |= pieces & s.from & back(empty, s.shift)
		}
	}
	return m
}

// jumpers returns the subset of pieces that have an enemy one step away and
// an empty square right behind it, in any of dirs.
func jumpers(pieces, enemy, empty uint32, dirs []Direction) uint32 {
	if pieces == 0 {
		return 0
	}
	var j uint32
	for _, d := range dirs {
		l := leaps[d]
		canLand := pieces & l.from & back(empty, l.shift)
		if canLand == 0 {
			continue
		}
		for p := range 2 {
			j |= canLand & parityMask[p] & back(enemy, steps[d][p].shift)
		}
	}
	return j
}

func (b *Board) WhiteMovers() uint32 {
	empty := b.Empty()
	return movers(b.white, empty, upDirs) | movers(b.white&b.kings, empty, downDirs)
}

func (b *Board) BlackMovers() uint32 {
	empty := b.Empty()
	return movers(b.black, empty, downDirs) | movers(b.black&b.kings, empty, upDirs)
}

func (b *Board) WhiteJumpers() uint32 {
	empty := b.Empty()
	return jumpers(b.white, b.black, empty, upDirs) |
		jumpers(b.white&b.kings, b.black, empty, downDirs)
}

func (b *Board) BlackJumpers() uint32 {
	empty := b.Empty()
	return jumpers(b.black, b.white, empty, downDirs) |
		jumpers(b.black&b.kings, b.white, empty, upDirs)
}

package bitboard

// apply plays mv for the side owning own. The squares of mv that are not
// enemy pieces are the mover's origin and destination (they coincide and
// cancel when a king's chain ends where it started); every enemy square in
// mv was captured.
func (b *Board) apply(mv, own, enemy, crown uint32) (uint32, uint32) {
	moved := mv &^ enemy
	if mv&own&b.kings != 0 {
		b.kings ^= moved
	}
	own ^= moved
	enemy &^= mv
	b.kings |= moved & own & crown
	b.kings &= own | enemy
	return own, enemy
}

// ApplyWhiteMove plays a mask produced by WhiteMoveList or WhiteJumpList.
// Any other mask gives a deterministic but meaningless position.
func (b *Board) ApplyWhiteMove(mv uint32) {
	b.white, b.black = b.apply(mv, b.white, b.black, WhiteKingRow)
}

// ApplyBlackMove plays a mask produced by BlackMoveList or BlackJumpList.
func (b *Board) ApplyBlackMove(mv uint32) {
	b.black, b.white = b.apply(mv, b.black, b.white, BlackKingRow)
}

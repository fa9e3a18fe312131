package game

// SetStateStackLength sizes the undo stack used by PlayMoveWithBackup. It
// should be at least as deep as the longest line that will be played, and
// is allocated once up front so depth-first drivers never allocate.
func (g *Game) SetStateStackLength(length int) {
	g.stateStack = make([]State, length)
	g.stackPtr = 0
}

func (g *Game) backupState() {
	g.stateStack[g.stackPtr] = g.State()
	g.stackPtr++
}

// PlayMoveWithBackup pushes the current state and then applies mv like
// ApplyMove does, without validation.
func (g *Game) PlayMoveWithBackup(mv uint32) {
	g.backupState()
	g.ApplyMove(mv)
}

// UnplayLastMove pops the stack, restoring the position from before the last
// PlayMoveWithBackup.
func (g *Game) UnplayLastMove() {
	g.stackPtr--
	g.SetState(g.stateStack[g.stackPtr])
}

// ResetToFirstState unplays everything on the stack at once.
func (g *Game) ResetToFirstState() {
	if g.stackPtr == 0 {
		return
	}
	g.SetState(g.stateStack[0])
	g.stackPtr = 0
}

// StackDepth is the number of moves that can currently be unplayed.
func (g *Game) StackDepth() int {
	return g.stackPtr
}

// Copy returns an independent game at the same position, with an empty
// stack of the same length.
func (g *Game) Copy() *Game {
	c := &Game{
		board:       g.board.Copy(),
		kingMoves:   g.kingMoves,
		whiteToMove: g.whiteToMove,
	}
	c.SetStateStackLength(len(g.stateStack))
	return c
}

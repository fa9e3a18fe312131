package game

// ToDisplayText draws the board, row 7 first, followed by the white and
// black piece sets in hex. Turn and draw counter are not shown.
func (g *Game) ToDisplayText() string {
	return g.board.ToDisplayText()
}

func (g *Game) String() string {
	return g.ToDisplayText()
}

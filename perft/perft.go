// Package perft counts the nodes of the move tree, the standard way of
// checking a move generator against known totals. The draw rule is ignored:
// a drawn position keeps generating moves like any other.
package perft

import (
	"github.com/domino14/draughts/bitboard"
	"github.com/domino14/draughts/game"
)

// Perft returns the number of positions reached after exactly depth plies.
func Perft(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	init := g.State()
	var nodes uint64
	for _, mv := range moves {
		g.ApplyMove(mv)
		nodes += Perft(g, depth-1)
		g.SetState(init)
	}
	return nodes
}

// PerftAll returns the node counts for every depth from 1 to depth in a
// single walk of the tree. counts[i] is the count at depth i+1.
func PerftAll(g *game.Game, depth int) []uint64 {
	counts := make([]uint64, depth)
	if depth > 0 {
		perftAll(g, counts, 0)
	}
	return counts
}

func perftAll(g *game.Game, counts []uint64, ply int) {
	moves := g.LegalMoves()
	counts[ply] += uint64(len(moves))
	if ply == len(counts)-1 {
		return
	}
	init := g.State()
	for _, mv := range moves {
		g.ApplyMove(mv)
		perftAll(g, counts, ply+1)
		g.SetState(init)
	}
}

// stackPerft is Perft using the game's backup stack instead of local
// snapshots. The stack must hold at least depth states.
func stackPerft(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		g.PlayMoveWithBackup(mv)
		nodes += stackPerft(g, depth-1)
		g.UnplayLastMove()
	}
	return nodes
}

// HashPerft is Perft with subtree counts cached in tt.
func HashPerft(g *game.Game, depth int, tt *TranspositionTable) uint64 {
	z := tt.Zobrist()
	return hashPerft(g, depth, tt, z.Hash(g.State()))
}

func hashPerft(g *game.Game, depth int, tt *TranspositionTable, key uint64) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	if nodes, ok := tt.lookup(key, depth); ok {
		return nodes
	}
	z := tt.Zobrist()
	init := g.State()
	var nodes uint64
	for _, mv := range moves {
		g.ApplyMove(mv)
		nodes += hashPerft(g, depth-1, tt, z.AddMove(key, init, g.State()))
		g.SetState(init)
	}
	tt.store(key, depth, nodes)
	return nodes
}

// DivideEntry is the subtree count below one root move.
type DivideEntry struct {
	Move    uint32 `json:"move" yaml:"move"`
	Squares []int  `json:"squares" yaml:"squares"`
	Nodes   uint64 `json:"nodes" yaml:"nodes"`
}

// Divide splits Perft(g, depth) by root move, in move generation order.
// Duplicate capture chains get one entry each.
func Divide(g *game.Game, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := g.LegalMoves()
	init := g.State()
	entries := make([]DivideEntry, 0, len(moves))
	for _, mv := range moves {
		g.ApplyMove(mv)
		entries = append(entries, DivideEntry{
			Move:    mv,
			Squares: bitboard.SquareList(mv),
			Nodes:   Perft(g, depth-1),
		})
		g.SetState(init)
	}
	return entries
}

package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(g *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	g.ensureLegal()
	if depth == 1 {
		return uint64(len(g.legal))
	}
	moves := append([]Move(nil), g.legal...)
	var nodes uint64
	for _, m := range moves {
		if err := g.MakeMove(m); err != nil {
			continue
		}
		nodes += Perft(g, depth-1)
		_, _ = g.UndoMove()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by UCI.
func PerftDivide(g *GameState, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range g.ValidMoves() {
		if err := g.MakeMove(m); err != nil {
			continue
		}
		out[m.UCI()] = Perft(g, depth-1)
		_, _ = g.UndoMove()
	}
	return out
}

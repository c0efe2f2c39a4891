package engine

var (
	rookDirs    = [4]Square{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs  = [4]Square{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs   = [8]Square{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps = [8]Square{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// pawnForward is the row delta of a pawn push for c.
func pawnForward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// IsSquareAttacked reports whether any piece of color by reaches sq.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	// a pawn of color by attacks sq from one row behind it
	pawnRow := sq.Row - pawnForward(by)
	for _, dCol := range [2]int{-1, 1} {
		from := Square{Row: pawnRow, Col: sq.Col + dCol}
		if from.InBounds() && b.at(from).Is(by, Pawn) {
			return true
		}
	}
	for _, d := range knightJumps {
		from := sq.offset(d.Row, d.Col)
		if from.InBounds() && b.at(from).Is(by, Knight) {
			return true
		}
	}
	for _, d := range queenDirs {
		from := sq.offset(d.Row, d.Col)
		if from.InBounds() && b.at(from).Is(by, King) {
			return true
		}
	}
	if slidingAttacker(b, sq, by, rookDirs[:], Rook) {
		return true
	}
	return slidingAttacker(b, sq, by, bishopDirs[:], Bishop)
}

func slidingAttacker(b *Board, sq Square, by Color, dirs []Square, kind Kind) bool {
	for _, d := range dirs {
		for cur := sq.offset(d.Row, d.Col); cur.InBounds(); cur = cur.offset(d.Row, d.Col) {
			p := b.at(cur)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == kind || p.Kind == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// attackers lists the squares of the pieces of color by that attack sq.
func attackers(b *Board, sq Square, by Color) []Square {
	var found []Square
	pawnRow := sq.Row - pawnForward(by)
	for _, dCol := range [2]int{-1, 1} {
		from := Square{Row: pawnRow, Col: sq.Col + dCol}
		if from.InBounds() && b.at(from).Is(by, Pawn) {
			found = append(found, from)
		}
	}
	for _, d := range knightJumps {
		from := sq.offset(d.Row, d.Col)
		if from.InBounds() && b.at(from).Is(by, Knight) {
			found = append(found, from)
		}
	}
	for i, d := range queenDirs {
		kind := Rook
		if i >= 4 {
			kind = Bishop
		}
		for cur := sq.offset(d.Row, d.Col); cur.InBounds(); cur = cur.offset(d.Row, d.Col) {
			p := b.at(cur)
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == kind || p.Kind == Queen) {
				found = append(found, cur)
			}
			break
		}
		if adj := sq.offset(d.Row, d.Col); adj.InBounds() && b.at(adj).Is(by, King) {
			found = append(found, adj)
		}
	}
	return found
}

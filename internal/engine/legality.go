package engine

// filterLegal keeps the moves that do not leave the mover's king attacked.
// Each candidate is played on a scratch copy of the board.
func filterLegal(pos position, moves []Move) []Move {
	legal := moves[:0]
	for _, m := range moves {
		scratch := *pos.board
		applyMove(&scratch, m)
		if !inCheck(&scratch, pos.side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// inCheck reports whether c's king is attacked. A board without a king of
// color c is never in check.
func inCheck(b *Board, c Color) bool {
	king, ok := b.kingSquare(c)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, king, c.Opponent())
}

// KingSafety describes the threats against one side's king.
type KingSafety struct {
	InCheck  bool
	Checkers []Square
	Pinned   []Square
}

func analyzeKingSafety(b *Board, c Color) KingSafety {
	king, ok := b.kingSquare(c)
	if !ok {
		return KingSafety{}
	}
	enemy := c.Opponent()
	checkers := attackers(b, king, enemy)
	return KingSafety{
		InCheck:  len(checkers) > 0,
		Checkers: checkers,
		Pinned:   pinnedPieces(b, king, c),
	}
}

// pinnedPieces walks each ray from the king. A friendly piece is pinned when
// the next piece beyond it on the same ray is an enemy slider moving along
// that ray.
func pinnedPieces(b *Board, king Square, c Color) []Square {
	var pinned []Square
	for i, d := range queenDirs {
		slider := Rook
		if i >= 4 {
			slider = Bishop
		}
		var candidate *Square
		for cur := king.offset(d.Row, d.Col); cur.InBounds(); cur = cur.offset(d.Row, d.Col) {
			p := b.at(cur)
			if p.IsEmpty() {
				continue
			}
			if p.Color == c {
				if candidate != nil {
					break
				}
				sq := cur
				candidate = &sq
				continue
			}
			if candidate != nil && (p.Kind == slider || p.Kind == Queen) {
				pinned = append(pinned, *candidate)
			}
			break
		}
	}
	return pinned
}

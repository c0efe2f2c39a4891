package engine

// position is the part of the game state move generation depends on.
type position struct {
	board     *Board
	side      Color
	castling  CastlingRights
	enPassant *Square
}

// generatePseudoLegal returns the pseudo-legal moves of the side to move in
// row-major square order. Castling safety is already enforced; other moves
// may still leave the king in check.
func generatePseudoLegal(pos position) []Move {
	moves := make([]Move, 0, 48)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := pos.board.grid[row][col]
			if p.IsEmpty() || p.Color != pos.side {
				continue
			}
			from := Square{Row: row, Col: col}
			switch p.Kind {
			case Pawn:
				moves = pawnMoves(pos, from, p, moves)
			case Knight:
				moves = stepMoves(pos.board, from, p, knightJumps[:], moves)
			case Bishop:
				moves = slideMoves(pos.board, from, p, bishopDirs[:], moves)
			case Rook:
				moves = slideMoves(pos.board, from, p, rookDirs[:], moves)
			case Queen:
				moves = slideMoves(pos.board, from, p, queenDirs[:], moves)
			case King:
				moves = stepMoves(pos.board, from, p, queenDirs[:], moves)
				moves = castleMoves(pos, from, p, moves)
			}
		}
	}
	return moves
}

func pawnMoves(pos position, from Square, p Piece, moves []Move) []Move {
	dir := pawnForward(p.Color)
	startRow := homeRow(p.Color) + dir
	lastRow := homeRow(p.Color.Opponent())

	one := from.offset(dir, 0)
	if one.InBounds() && pos.board.at(one).IsEmpty() {
		moves = pawnAdvance(from, one, p, Empty, lastRow, moves)
		two := one.offset(dir, 0)
		if from.Row == startRow && pos.board.at(two).IsEmpty() {
			moves = append(moves, Move{From: from, To: two, Piece: p, Captured: Empty, Tag: TagDoublePawnAdvance})
		}
	}
	for _, dCol := range [2]int{-1, 1} {
		to := from.offset(dir, dCol)
		if !to.InBounds() {
			continue
		}
		target := pos.board.at(to)
		if !target.IsEmpty() && target.Color != p.Color {
			moves = pawnAdvance(from, to, p, target, lastRow, moves)
			continue
		}
		if target.IsEmpty() && pos.enPassant != nil && *pos.enPassant == to {
			victim := pos.board.at(Square{Row: from.Row, Col: to.Col})
			if victim.Is(p.Color.Opponent(), Pawn) {
				moves = append(moves, Move{From: from, To: to, Piece: p, Captured: victim, Tag: TagEnPassant})
			}
		}
	}
	return moves
}

// pawnAdvance appends a plain pawn move, or one move per promotion kind when
// the pawn reaches lastRow.
func pawnAdvance(from, to Square, p, captured Piece, lastRow int, moves []Move) []Move {
	if to.Row != lastRow {
		return append(moves, Move{From: from, To: to, Piece: p, Captured: captured})
	}
	for _, kind := range PromotionKinds {
		moves = append(moves, Move{From: from, To: to, Piece: p, Captured: captured, Tag: TagPromotion, Promotion: kind})
	}
	return moves
}

func stepMoves(b *Board, from Square, p Piece, offsets []Square, moves []Move) []Move {
	for _, d := range offsets {
		to := from.offset(d.Row, d.Col)
		if !to.InBounds() {
			continue
		}
		target := b.at(to)
		if target.IsEmpty() || target.Color != p.Color {
			moves = append(moves, Move{From: from, To: to, Piece: p, Captured: target})
		}
	}
	return moves
}

func slideMoves(b *Board, from Square, p Piece, dirs []Square, moves []Move) []Move {
	for _, d := range dirs {
		for to := from.offset(d.Row, d.Col); to.InBounds(); to = to.offset(d.Row, d.Col) {
			target := b.at(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to, Piece: p, Captured: Empty})
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, Move{From: from, To: to, Piece: p, Captured: target})
			}
			break
		}
	}
	return moves
}

// castleMoves offers a castle when the right is held, king and rook stand on
// their home squares, the squares between them are empty and the king does
// not start on, pass through or land on an attacked square.
func castleMoves(pos position, from Square, p Piece, moves []Move) []Move {
	row := homeRow(p.Color)
	if from != (Square{Row: row, Col: 4}) {
		return moves
	}
	enemy := p.Color.Opponent()
	if IsSquareAttacked(pos.board, from, enemy) {
		return moves
	}
	rook := Piece{Color: p.Color, Kind: Rook}
	if pos.castling.Kingside(p.Color) && pos.board.at(Square{Row: row, Col: 7}) == rook &&
		emptyCols(pos.board, row, 5, 6) && safeCols(pos.board, row, enemy, 5, 6) {
		moves = append(moves, Move{From: from, To: Square{Row: row, Col: 6}, Piece: p, Captured: Empty, Tag: TagCastleKingside})
	}
	if pos.castling.Queenside(p.Color) && pos.board.at(Square{Row: row, Col: 0}) == rook &&
		emptyCols(pos.board, row, 1, 2, 3) && safeCols(pos.board, row, enemy, 3, 2) {
		moves = append(moves, Move{From: from, To: Square{Row: row, Col: 2}, Piece: p, Captured: Empty, Tag: TagCastleQueenside})
	}
	return moves
}

func emptyCols(b *Board, row int, cols ...int) bool {
	for _, col := range cols {
		if !b.grid[row][col].IsEmpty() {
			return false
		}
	}
	return true
}

func safeCols(b *Board, row int, enemy Color, cols ...int) bool {
	for _, col := range cols {
		if IsSquareAttacked(b, Square{Row: row, Col: col}, enemy) {
			return false
		}
	}
	return true
}

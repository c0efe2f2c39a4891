package engine

// CastlingRights holds the four per-side, per-wing castling permissions.
// Rights are only ever revoked by play; undo restores them from history.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

func fullCastlingRights() CastlingRights {
	return CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}
}

func (r CastlingRights) Kingside(c Color) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

func (r CastlingRights) Queenside(c Color) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// homeRow is the back rank row of c.
func homeRow(c Color) int {
	if c == White {
		return Size - 1
	}
	return 0
}

// revokeSquare drops any right tied to a king or rook home square.
func (r *CastlingRights) revokeSquare(sq Square) {
	switch sq {
	case Square{Row: 7, Col: 4}:
		r.WhiteKingside, r.WhiteQueenside = false, false
	case Square{Row: 7, Col: 7}:
		r.WhiteKingside = false
	case Square{Row: 7, Col: 0}:
		r.WhiteQueenside = false
	case Square{Row: 0, Col: 4}:
		r.BlackKingside, r.BlackQueenside = false, false
	case Square{Row: 0, Col: 7}:
		r.BlackKingside = false
	case Square{Row: 0, Col: 0}:
		r.BlackQueenside = false
	}
}

// update revokes the rights lost by playing m: a king or rook leaving its
// home square, or a rook captured on its home square.
func (r *CastlingRights) update(m Move) {
	r.revokeSquare(m.From)
	r.revokeSquare(m.To)
}

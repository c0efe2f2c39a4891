package engine

// Tag marks the special effect of a move.
type Tag uint8

const (
	TagNone Tag = iota
	TagDoublePawnAdvance
	TagEnPassant
	TagCastleKingside
	TagCastleQueenside
	TagPromotion
)

func (t Tag) String() string {
	switch t {
	case TagDoublePawnAdvance:
		return "double-pawn-advance"
	case TagEnPassant:
		return "en-passant"
	case TagCastleKingside:
		return "castle-kingside"
	case TagCastleQueenside:
		return "castle-queenside"
	case TagPromotion:
		return "promotion"
	}
	return "none"
}

// Move describes one ply. Piece and Captured are snapshots taken when the
// move was generated; Promotion is set only for TagPromotion.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	Tag       Tag
	Promotion Kind
}

// Equal compares origin and destination only. Promotion candidates sharing
// a path are equal to each other.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// Same reports whether two moves are the same candidate, promotion kind
// included.
func (m Move) Same(other Move) bool {
	return m.Equal(other) && m.Promotion == other.Promotion
}

func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

func (m Move) IsCastle() bool {
	return m.Tag == TagCastleKingside || m.Tag == TagCastleQueenside
}

// CaptureSquare is where the captured piece stood. It differs from To only
// for en passant.
func (m Move) CaptureSquare() Square {
	if m.Tag == TagEnPassant {
		return Square{Row: m.From.Row, Col: m.To.Col}
	}
	return m.To
}

// RookPath returns the rook relocation of a castle move.
func (m Move) RookPath() (from, to Square, ok bool) {
	switch m.Tag {
	case TagCastleKingside:
		return Square{Row: m.From.Row, Col: 7}, Square{Row: m.From.Row, Col: 5}, true
	case TagCastleQueenside:
		return Square{Row: m.From.Row, Col: 0}, Square{Row: m.From.Row, Col: 3}, true
	}
	return Square{}, Square{}, false
}

// UCI returns the long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Tag == TagPromotion {
		s += Piece{Color: Black, Kind: m.Promotion}.String()
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}

// applyMove performs the piece placement of m on b.
func applyMove(b *Board, m Move) {
	b.put(m.From, Empty)
	if m.Tag == TagEnPassant {
		b.put(m.CaptureSquare(), Empty)
	}
	placed := m.Piece
	if m.Tag == TagPromotion {
		placed.Kind = m.Promotion
	}
	b.put(m.To, placed)
	if rookFrom, rookTo, ok := m.RookPath(); ok {
		b.put(rookTo, b.at(rookFrom))
		b.put(rookFrom, Empty)
	}
}

// revertMove restores the placement that existed before applyMove(b, m).
func revertMove(b *Board, m Move) {
	if rookFrom, rookTo, ok := m.RookPath(); ok {
		b.put(rookFrom, b.at(rookTo))
		b.put(rookTo, Empty)
	}
	b.put(m.To, Empty)
	b.put(m.CaptureSquare(), m.Captured)
	b.put(m.From, m.Piece)
}

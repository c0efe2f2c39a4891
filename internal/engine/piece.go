package engine

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is the piece kind. NoKind marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

// Letter returns the upper-case SAN letter of the kind; pawns have none.
func (k Kind) Letter() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// KindFromString accepts "queen", "q", "Q" and so on.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "pawn", "p", "P":
		return Pawn, true
	case "knight", "n", "N":
		return Knight, true
	case "bishop", "b", "B":
		return Bishop, true
	case "rook", "r", "R":
		return Rook, true
	case "queen", "q", "Q":
		return Queen, true
	case "king", "k", "K":
		return King, true
	}
	return NoKind, false
}

// Piece is either Empty (Kind == NoKind) or a colored piece.
type Piece struct {
	Color Color
	Kind  Kind
}

var Empty = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) Is(c Color, k Kind) bool {
	return p.Kind == k && p.Color == c
}

// String renders the piece as a FEN letter, "." for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	var r byte
	switch p.Kind {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	}
	if p.Color == White {
		r -= 'a' - 'A'
	}
	return string(r)
}

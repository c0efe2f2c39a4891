package engine

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns on the board.
const Size = 8

// Square addresses a board cell. Row 0 is the eighth rank (black's back
// rank), column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (s Square) InBounds() bool {
	return InBounds(s.Row, s.Col)
}

func (s Square) offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

func (s Square) File() string {
	return string(rune('a' + s.Col))
}

func (s Square) Rank() string {
	return string(rune('0' + Size - s.Row))
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return s.File() + s.Rank()
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("parse square %q: %w", name, ErrOutOfBounds)
	}
	sq := Square{Row: Size - int(name[1]-'0'), Col: int(name[0] - 'a')}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("parse square %q: %w", name, ErrOutOfBounds)
	}
	return sq, nil
}

// Board is a fixed 8x8 grid of pieces. It is a value type; copying a Board
// copies the whole grid.
type Board struct {
	grid [Size][Size]Piece
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard initial position.
func NewBoard() Board {
	var b Board
	for col, kind := range backRank {
		b.grid[0][col] = Piece{Color: Black, Kind: kind}
		b.grid[1][col] = Piece{Color: Black, Kind: Pawn}
		b.grid[6][col] = Piece{Color: White, Kind: Pawn}
		b.grid[7][col] = Piece{Color: White, Kind: kind}
	}
	return b
}

func (b *Board) Get(row, col int) (Piece, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("get (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return b.grid[row][col], nil
}

func (b *Board) Set(row, col int, p Piece) error {
	if !InBounds(row, col) {
		return fmt.Errorf("set (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	b.grid[row][col] = p
	return nil
}

// Grid returns a copy of the cells, indexed [row][col].
func (b *Board) Grid() [Size][Size]Piece {
	return b.grid
}

func (b *Board) at(sq Square) Piece {
	return b.grid[sq.Row][sq.Col]
}

func (b *Board) put(sq Square, p Piece) {
	b.grid[sq.Row][sq.Col] = p
}

func (b *Board) kingSquare(c Color) (Square, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.grid[row][col].Is(c, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// String draws the board one rank per line, eighth rank first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b.grid[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

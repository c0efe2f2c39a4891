package engine

import (
	"fmt"
	"strings"
)

// SAN returns the standard algebraic notation of m in the current position.
// m must be one of the current legal moves.
func (g *GameState) SAN(m Move) (string, error) {
	g.ensureLegal()
	legal, ok := g.lookup(m)
	if !ok {
		return "", fmt.Errorf("notation %s: %w", m, ErrInvalidMove)
	}
	return g.san(legal), nil
}

func (g *GameState) san(m Move) string {
	var sb strings.Builder
	switch m.Tag {
	case TagCastleKingside:
		sb.WriteString("O-O")
	case TagCastleQueenside:
		sb.WriteString("O-O-O")
	default:
		if m.Piece.Kind == Pawn {
			if m.IsCapture() {
				sb.WriteString(m.From.File())
			}
		} else {
			sb.WriteString(m.Piece.Kind.Letter())
			sb.WriteString(g.disambiguation(m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Tag == TagPromotion {
			sb.WriteByte('=')
			sb.WriteString(m.Promotion.Letter())
		}
	}

	next := g.Clone()
	if err := next.MakeMove(m); err != nil {
		return sb.String()
	}
	switch {
	case next.checkmate:
		sb.WriteByte('#')
	case next.InCheck():
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same kind to the same square.
func (g *GameState) disambiguation(m Move) string {
	var ambiguous, sameFile, sameRank bool
	for _, other := range g.legal {
		if other.From == m.From || other.To != m.To || other.Piece != m.Piece {
			continue
		}
		ambiguous = true
		if other.From.Col == m.From.Col {
			sameFile = true
		}
		if other.From.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.From.File()
	case !sameRank:
		return m.From.Rank()
	}
	return m.From.String()
}

// MoveFromUCI finds the legal move written in long algebraic form.
func (g *GameState) MoveFromUCI(s string) (Move, error) {
	g.ensureLegal()
	for _, m := range g.legal {
		if m.UCI() == s {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("uci %q: %w", s, ErrUnknownMove)
}

// MoveFromSAN finds the legal move written in standard algebraic notation.
// Check marks, annotation glyphs, zero-style castles and promotions written
// without "=" are accepted.
func (g *GameState) MoveFromSAN(s string) (Move, error) {
	g.ensureLegal()
	want := normalizeSAN(s)
	for _, m := range g.legal {
		if normalizeSAN(g.san(m)) == want {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("san %q: %w", s, ErrUnknownMove)
}

// normalizeSAN drops check marks, glyphs and the promotion "=", and reads
// zero-style castles as letter O.
func normalizeSAN(s string) string {
	s = strings.TrimRight(s, "+#!?")
	s = strings.ReplaceAll(s, "=", "")
	return strings.ReplaceAll(s, "0", "O")
}

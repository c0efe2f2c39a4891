package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestSAN(t *testing.T) {
	cases := []struct {
		name, fen, setup, move, want string
	}{
		{"knight", startFEN, "", "g1f3", "Nf3"},
		{"pawn push", startFEN, "", "e2e4", "e4"},
		{"pawn capture", startFEN, "e2e4 d7d5", "e4d5", "exd5"},
		{"en passant", startFEN, "e2e4 a7a6 e4e5 d7d5", "e5d6", "exd6"},
		{"castle kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "", "e1g1", "O-O"},
		{"castle queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "", "e8c8", "O-O-O"},
		{"file disambiguation", "7k/8/8/8/8/8/8/KN3N2 w - - 0 1", "", "b1d2", "Nbd2"},
		{"rank disambiguation", "7k/8/8/R7/8/8/8/R6K w - - 0 1", "", "a1a3", "R1a3"},
		{"square disambiguation", "8/7k/8/8/8/Q7/8/Q1Q4K w - - 0 1", "", "a1b2", "Qa1b2"},
		{"rank of three", "8/7k/8/8/8/Q7/8/Q1Q4K w - - 0 1", "", "a3b2", "Q3b2"},
		{"file of three", "8/7k/8/8/8/Q7/8/Q1Q4K w - - 0 1", "", "c1b2", "Qcb2"},
		{"promotion check", "7k/P7/8/8/8/8/8/K7 w - - 0 1", "", "a7a8q", "a8=Q+"},
		{"underpromotion", "7k/P7/8/8/8/8/8/K7 w - - 0 1", "", "a7a8n", "a8=N"},
		{"capture check", "k7/8/8/8/8/8/8/KR5r w - - 0 1", "", "b1h1", "Rxh1"},
		{"mate", startFEN, "f2f3 e7e5 g2g4", "d8h4", "Qh4#"},
		{"check", startFEN, "e2e4 f7f6", "d1h5", "Qh5+"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := fromFEN(t, tc.fen)
			playUCI(t, g, tc.setup)
			m, err := g.MoveFromUCI(tc.move)
			if err != nil {
				t.Fatal(err)
			}
			got, err := g.SAN(m)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
			back, err := g.MoveFromSAN(got)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Same(m) {
				t.Fatalf("MoveFromSAN(%q) = %s want %s", got, back, m)
			}
		})
	}
}

func TestSANLeavesStateAlone(t *testing.T) {
	g := NewGameState()
	before := toFEN(g)
	for _, m := range g.ValidMoves() {
		if _, err := g.SAN(m); err != nil {
			t.Fatal(err)
		}
	}
	if toFEN(g) != before || len(g.History()) != 0 {
		t.Fatalf("SAN mutated the state")
	}
}

func TestUnknownNotation(t *testing.T) {
	g := NewGameState()
	if _, err := g.MoveFromSAN("Nf6"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("got %v want ErrUnknownMove", err)
	}
	if _, err := g.MoveFromUCI("e2e5"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("got %v want ErrUnknownMove", err)
	}
	bogus := Move{From: Square{Row: 0, Col: 0}, To: Square{Row: 4, Col: 4}}
	if _, err := g.SAN(bogus); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("got %v want ErrInvalidMove", err)
	}
}

// replaySAN plays a move-numbered game text and checks that every move is
// written back exactly as given.
func replaySAN(t *testing.T, text string) *GameState {
	t.Helper()
	g := NewGameState()
	for _, tok := range strings.Fields(text) {
		if strings.HasSuffix(tok, ".") {
			continue
		}
		want := strings.ReplaceAll(strings.Trim(tok, "!?"), "0", "O")
		m, err := g.MoveFromSAN(tok)
		if err != nil {
			t.Fatalf("%s: %v\n%s", tok, err, g.board.String())
		}
		got, err := g.SAN(m)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("notation: got %q want %q", got, want)
		}
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("%s: %v", tok, err)
		}
	}
	return g
}

func TestReplayScholarsMate(t *testing.T) {
	g := replaySAN(t, "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6?? 4. Qxf7#")
	if !g.Checkmate() {
		t.Fatalf("expected checkmate")
	}
}

func TestReplayImmortalLosingGame(t *testing.T) {
	replaySAN(t, `1. d4 f5 2. g3 g6 3. Bg2 Bg7 4. Nc3 Nf6 5. Bg5 Nc6 6. Qd2 d6
        7. h4 e6 8. 0-0-0 h6 9. Bf4 Bd7 10. e4 fxe4 11. Nxe4 Nd5 12. Ne2 Qe7
        13. c4 Nb6? 14. c5! dxc5 15. Bxc7! 0-0 16. Bd6 Qf7 17. Bxf8 Rxf8
        18. dxc5 Nd5 19. f4 Rd8 20. N2c3 Ndb4 21. Nd6 Qf8 22. Nxb7 Nd4!
        23. Nxd8 Bb5! 24. Nxe6! Bd3! 25. Bd5! Qf5! 26. Nxd4+ Qxd5!
        27. Nc2! Bxc3 28. bxc3! Qxa2 29. cxb4!`)
}

func TestReplayKasparovsImmortal(t *testing.T) {
	replaySAN(t, `1. e4 d6 2. d4 Nf6 3. Nc3 g6 4. Be3 Bg7 5. Qd2 c6 6. f3 b5
        7. Nge2 Nbd7 8. Bh6 Bxh6 9. Qxh6 Bb7 10. a3 e5 11. 0-0-0 Qe7
        12. Kb1 a6 13. Nc1 0-0-0 14. Nb3 exd4 15. Rxd4 c5 16. Rd1 Nb6
        17. g3 Kb8 18. Na5 Ba8 19. Bh3 d5 20. Qf4+ Ka7 21. Rhe1 d4
        22. Nd5 Nbxd5 23. exd5 Qd6 24. Rxd4 cxd4 25. Re7+ Kb6
        26. Qxd4+ Kxa5 27. b4+ Ka4 28. Qc3 Qxd5 29. Ra7 Bb7 30. Rxb7
        Qc4 31. Qxf6 Kxa3 32. Qxa6+ Kxb4 33. c3+ Kxc3 34. Qa1+ Kd2
        35. Qb2+ Kd1 36. Bf1 Rd2 37. Rd7 Rxd7 38. Bxc4 bxc4 39. Qxh8
        Rd3 40. Qa8 c3 41. Qa4+ Ke1 42. f4 f5 43. Kc1 Rd2 44. Qa7`)
}

func TestSANPromotionWithoutEquals(t *testing.T) {
	g := fromFEN(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1")
	for in, want := range map[string]string{"a8Q": "a7a8q", "a8=Q+": "a7a8q", "a8N": "a7a8n", "a8r": ""} {
		m, err := g.MoveFromSAN(in)
		if want == "" {
			if !errors.Is(err, ErrUnknownMove) {
				t.Fatalf("%s: got %v want ErrUnknownMove", in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if m.UCI() != want {
			t.Fatalf("%s: got %s want %s", in, m.UCI(), want)
		}
	}
}

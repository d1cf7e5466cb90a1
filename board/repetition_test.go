package board

import "testing"

// findMove locates a legal move by its from/to squares, the shape every
// coordinate-sequence test in this file needs.
func findMove(t *testing.T, b *Board, from, to Square) (Move, bool) {
	t.Helper()
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return 0, false
}

func TestPushPopRoundTrip(t *testing.T) {
	b := MustParseFEN(StartFEN)
	startFEN := b.ToFEN()
	startZ := b.ComputeZobrist()

	e2, e4 := Square(1*8+4), Square(3*8+4)
	e7, e5 := Square(6*8+4), Square(4*8+4)

	m1, ok := findMove(t, b, e2, e4)
	if !ok {
		t.Fatalf("e2e4 not found")
	}
	undo1 := b.MakeMove(m1)

	m2, ok := findMove(t, b, e7, e5)
	if !ok {
		t.Fatalf("e7e5 not found")
	}
	undo2 := b.MakeMove(m2)

	b.UnmakeMove(m2, undo2)
	b.UnmakeMove(m1, undo1)

	if b.ToFEN() != startFEN {
		t.Fatalf("FEN mismatch after unmake: got %q want %q", b.ToFEN(), startFEN)
	}
	if b.ComputeZobrist() != startZ {
		t.Fatalf("Zobrist mismatch after unmake")
	}
}

func TestThreefoldRepetitionKnightShuffle(t *testing.T) {
	b := MustParseFEN(StartFEN)

	var hist []uint64
	hist = append(hist, b.Hash())

	play := func(from, to Square) {
		m, ok := findMove(t, b, from, to)
		if !ok {
			t.Fatalf("move %v->%v not found", from, to)
		}
		b.MakeMove(m)
		hist = append(hist, b.Hash())
	}

	g1, f3 := Square(6), Square(2*8+5)
	g8, f6 := Square(7*8+6), Square(5*8+5)

	play(g1, f3)
	play(g8, f6)
	play(f3, g1)
	play(f6, g8) // back to the initial position

	if b.IsDrawByRepetition(hist[:len(hist)-1]) {
		t.Fatalf("should not be threefold yet after one cycle")
	}

	play(g1, f3)
	play(g8, f6)
	play(f3, g1)
	play(f6, g8) // third occurrence of the initial position

	if !b.IsDrawByRepetition(hist[:len(hist)-1]) {
		t.Fatalf("expected threefold repetition after two cycles")
	}
}

func TestFiftyMoveRuleWithRepeatedKnightMoves(t *testing.T) {
	b := MustParseFEN(StartFEN)

	g1, f3 := Square(6), Square(2*8+5)
	g8, f6 := Square(7*8+6), Square(5*8+5)

	for i := 0; i < 25; i++ {
		for _, sq := range [][2]Square{{g1, f3}, {g8, f6}, {f3, g1}, {f6, g8}} {
			m, ok := findMove(t, b, sq[0], sq[1])
			if !ok {
				t.Fatalf("move %v->%v not found at i=%d", sq[0], sq[1], i)
			}
			b.MakeMove(m)
		}
	}

	if !b.IsDrawBy50() {
		t.Fatalf("expected 50-move rule draw after 100 halfmoves, got halfmoveClock=%d", b.HalfmoveClock())
	}
}

func TestThreefoldRepetitionWithIntermediateRookShuffle(t *testing.T) {
	// A short non-repeating king prelude followed by a rook shuffle (answered
	// by a black king shuffle) that brings the post-prelude position back
	// three times.
	b := MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	var hist []uint64
	hist = append(hist, b.Hash())

	play := func(from, to Square) {
		m, ok := findMove(t, b, from, to)
		if !ok {
			t.Fatalf("move %v->%v not found", from, to)
		}
		b.MakeMove(m)
		hist = append(hist, b.Hash())
	}

	a1, a2 := Square(0), Square(8)
	e1, e2 := Square(4), Square(12)
	e8, e7, d7 := Square(60), Square(52), Square(51)

	play(e1, e2)
	play(e8, e7)

	play(a1, a2)
	if b.IsDrawByRepetition(hist[:len(hist)-1]) {
		t.Fatalf("should not be a repetition yet")
	}
	play(e7, d7)
	play(a2, a1)
	play(d7, e7)
	if b.IsDrawByRepetition(hist[:len(hist)-1]) {
		t.Fatalf("should not be threefold after returning once")
	}
	play(a1, a2)
	play(e7, d7)
	play(a2, a1)
	play(d7, e7)
	if !b.IsDrawByRepetition(hist[:len(hist)-1]) {
		t.Fatalf("expected threefold repetition after the third occurrence of the post-prelude position")
	}
}

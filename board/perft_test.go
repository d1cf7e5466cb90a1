package board

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	b := MustParseFEN(StartFEN)
	if got := b.Perft(1); got != 20 {
		t.Fatalf("perft depth1: got %d want %d", got, 20)
	}
	if got := b.Perft(2); got != 400 {
		t.Fatalf("perft depth2: got %d want %d", got, 400)
	}
}

func TestPerftInitialDepth3(t *testing.T) {
	b := MustParseFEN(StartFEN)
	if got := b.Perft(3); got != 8902 {
		t.Fatalf("initial depth3: got %d want %d", got, 8902)
	}
}

func TestPerftInitialDeep(t *testing.T) {
	b := MustParseFEN(StartFEN)
	if got := b.Perft(4); got != 197281 {
		t.Fatalf("initial depth4: got %d want %d", got, 197281)
	}
	if testing.Short() {
		t.Skip("skipping depth 5 perft in short mode")
	}
	if got := b.Perft(5); got != 4865609 {
		t.Fatalf("initial depth5: got %d want %d", got, 4865609)
	}
}

func TestPerftKiwipete(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 48 {
		t.Fatalf("Kiwipete depth1: got %d want %d", got, 48)
	}
	if got := b.Perft(2); got != 2039 {
		t.Fatalf("Kiwipete depth2: got %d want %d", got, 2039)
	}
	if got := b.Perft(3); got != 97862 {
		t.Fatalf("Kiwipete depth3: got %d want %d", got, 97862)
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	b, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 5 {
		t.Fatalf("EP depth1: got %d want %d", got, 5)
	}
	if got := b.Perft(2); got != 19 {
		t.Fatalf("EP depth2: got %d want %d", got, 19)
	}
}

func TestPerftPromotionPosition(t *testing.T) {
	b, err := ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 11 {
		t.Fatalf("promotion depth1: got %d want %d", got, 11)
	}
}

func TestPerftPosition3(t *testing.T) {
	b, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 14 {
		t.Fatalf("pos3 d1: got %d want %d", got, 14)
	}
	if got := b.Perft(2); got != 191 {
		t.Fatalf("pos3 d2: got %d want %d", got, 191)
	}
	if got := b.Perft(3); got != 2812 {
		t.Fatalf("pos3 d3: got %d want %d", got, 2812)
	}
}

func TestPerftPosition4(t *testing.T) {
	b, err := ParseFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 6 {
		t.Fatalf("pos4 d1: got %d want %d", got, 6)
	}
	if got := b.Perft(2); got != 264 {
		t.Fatalf("pos4 d2: got %d want %d", got, 264)
	}
	if got := b.Perft(3); got != 9467 {
		t.Fatalf("pos4 d3: got %d want %d", got, 9467)
	}
}

func TestPerftPosition5(t *testing.T) {
	b, err := ParseFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 44 {
		t.Fatalf("pos5 d1: got %d want %d", got, 44)
	}
	if got := b.Perft(2); got != 1486 {
		t.Fatalf("pos5 d2: got %d want %d", got, 1486)
	}
	if got := b.Perft(3); got != 62379 {
		t.Fatalf("pos5 d3: got %d want %d", got, 62379)
	}
}

func TestPerftPosition6(t *testing.T) {
	b, err := ParseFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 46 {
		t.Fatalf("pos6 d1: got %d want %d", got, 46)
	}
	if got := b.Perft(2); got != 2079 {
		t.Fatalf("pos6 d2: got %d want %d", got, 2079)
	}
	if got := b.Perft(3); got != 89890 {
		t.Fatalf("pos6 d3: got %d want %d", got, 89890)
	}
}

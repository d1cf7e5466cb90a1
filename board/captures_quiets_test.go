package board

import "testing"

func TestMoveGenerationInitial(t *testing.T) {
	b := MustParseFEN(StartFEN)
	moves := b.GenerateLegalMoves()
	if len(moves) != 20 {
		t.Errorf("Initial position: expected 20 moves, got %d", len(moves))
	}
}

func TestCapturesInitialZero(t *testing.T) {
	b := MustParseFEN(StartFEN)
	got := b.GenerateCapturesInto(nil)
	if len(got) != 0 {
		t.Fatalf("initial captures: got %d want 0", len(got))
	}
}

func TestCapturesEnPassant(t *testing.T) {
	b, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	caps := b.GenerateCapturesInto(nil)
	var epCount int
	for _, m := range caps {
		if m.IsEnPassant() {
			epCount++
		}
	}
	if epCount != 1 {
		t.Fatalf("expected exactly 1 en passant capture, got %d (total captures=%d)", epCount, len(caps))
	}
}

func TestPromotionCapturesAndQuiets(t *testing.T) {
	b, err := ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	caps := b.GenerateCapturesInto(nil)
	wantCap := map[string]bool{"a7b8q": true, "a7b8r": true, "a7b8b": true, "a7b8n": true}
	haveCap := map[string]bool{}
	for _, m := range caps {
		haveCap[m.String()] = true
	}
	for s := range wantCap {
		if !haveCap[s] {
			t.Fatalf("missing capture promotion %s; got=%v", s, haveCap)
		}
	}

	quiets := b.GenerateQuietsInto(nil)
	wantQuiet := map[string]bool{"a7a8q": true, "a7a8r": true, "a7a8b": true, "a7a8n": true}
	haveQuiet := map[string]bool{}
	for _, m := range quiets {
		haveQuiet[m.String()] = true
	}
	for s := range wantQuiet {
		if !haveQuiet[s] {
			t.Fatalf("missing quiet promotion %s; got=%v", s, haveQuiet)
		}
	}
}

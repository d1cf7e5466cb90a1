package board

import "testing"

// TestGenerateMovesIntoNoAlloc ensures GenerateMovesInto reuses the provided
// buffer and avoids allocations when capacity suffices.
func TestGenerateMovesIntoNoAlloc(t *testing.T) {
	b := MustParseFEN(StartFEN)
	buf := make([]Move, 0, 256)

	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateMovesInto(buf)
		if len(buf) != 20 {
			t.Fatalf("expected 20 moves, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

func TestGenerateCapturesIntoNoAlloc(t *testing.T) {
	b, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]Move, 0, 256)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateCapturesInto(buf)
		if len(buf) != 1 {
			t.Fatalf("expected 1 capture (EP), got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

func TestGenerateQuietsIntoNoAlloc(t *testing.T) {
	b := MustParseFEN(StartFEN)
	buf := make([]Move, 0, 256)
	allocs := testing.AllocsPerRun(100, func() {
		buf = b.GenerateQuietsInto(buf)
		if len(buf) != 20 {
			t.Fatalf("expected 20 quiet moves in initial position, got %d", len(buf))
		}
		buf = buf[:0]
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocs, got %f", allocs)
	}
}

package humanize

import (
	"testing"

	"humanchess/board"
	"humanchess/personality"
)

func TestSelectReturnsLegalMove(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	params := personality.Default()
	params.HumanSelect = true
	params.RandomSeed = 1

	move := Select(b, &params, 0)
	if move == board.NoMove {
		t.Fatalf("expected a move from the startpos, got NoMove")
	}
	legal := b.GenerateLegalMoves()
	found := false
	for _, m := range legal {
		if m == move {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Select returned a move not in the legal move list: %v", move)
	}
}

func TestSelectOnNoLegalMovesReturnsNoMove(t *testing.T) {
	// Stalemate: black to move, no legal moves.
	b := board.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	params := personality.Default()
	params.HumanSelect = true

	if move := Select(b, &params, 40); move != board.NoMove {
		t.Fatalf("expected NoMove on a position with no legal moves, got %v", move)
	}
}

func TestSelectIsDeterministicForFixedSeed(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	params := personality.Default()
	params.HumanSelect = true
	params.RandomSeed = 777
	params.HumanNoiseCp = 20

	first := Select(b.Clone(), &params, 0)
	second := Select(b.Clone(), &params, 0)
	if first != second {
		t.Fatalf("expected identical selection for identical seed/position, got %v vs %v", first, second)
	}
}

func TestApplyHardFloorDropsFarBehindCandidates(t *testing.T) {
	c := []candidate{
		{move: 1, score: 100},
		{move: 2, score: -50},
		{move: 3, score: -1000},
	}
	out := applyHardFloor(c, 100, 150)
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates to survive a 150cp hard floor, got %d", len(out))
	}
	for _, cand := range out {
		if cand.score < 100-150 {
			t.Fatalf("candidate %v scored below the hard floor", cand)
		}
	}
}

func TestApplyTopKOverrideTruncates(t *testing.T) {
	c := []candidate{
		{move: 1, score: 100},
		{move: 2, score: 90},
		{move: 3, score: 80},
	}
	out := applyTopKOverride(c, 2)
	if len(out) != 2 {
		t.Fatalf("expected top-2 truncation, got %d candidates", len(out))
	}
}

func TestApplyTopKOverrideDisabledAtZero(t *testing.T) {
	c := []candidate{
		{move: 1, score: 100},
		{move: 2, score: 90},
	}
	out := applyTopKOverride(c, 0)
	if len(out) != 2 {
		t.Fatalf("expected top-K override disabled at 0 to leave candidates untouched, got %d", len(out))
	}
}

func TestApplyMarginAndCountCapsCount(t *testing.T) {
	c := []candidate{
		{move: 1, score: 100},
		{move: 2, score: 99},
		{move: 3, score: 98},
		{move: 4, score: 97},
	}
	out := applyMarginAndCount(c, 100, 400, 2)
	if len(out) != 2 {
		t.Fatalf("expected CandidateMovesMax=2 to cap output, got %d", len(out))
	}
}

func TestIsEdgeMoveOpeningDetectsRookPawnPush(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	m, err := board.ParseUCIMove(b, "a2a3")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if !isEdgeMoveOpening(b, m) {
		t.Fatalf("expected a2a3 to be flagged as an edge opening move")
	}
	m2, err := board.ParseUCIMove(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if isEdgeMoveOpening(b, m2) {
		t.Fatalf("expected e2e4 not to be flagged as an edge opening move")
	}
}

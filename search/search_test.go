package search

import (
	"testing"

	"humanchess/board"
	"humanchess/personality"
)

func newTestContext() *Context {
	ctx := NewContext(4)
	ctx.Time.Start(0, 0, 0, true)
	return ctx
}

func TestSearchFindsMateInOne(t *testing.T) {
	b := board.MustParseFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	ctx := newTestContext()
	params := personality.Default()
	result := Run(ctx, b, Options{MaxDepth: 3, UseCustomDepth: true}, &params, func(string) {})

	if !IsMateScore(result.Score) || result.Score <= 0 {
		t.Fatalf("expected a winning mate score, got %d", result.Score)
	}
	if result.BestMove == board.NoMove {
		t.Fatalf("expected a best move, got none")
	}
}

func TestSearchReturnsLegalMoveFromStartpos(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	ctx := newTestContext()
	params := personality.Default()
	result := Run(ctx, b, Options{MaxDepth: 4, UseCustomDepth: true}, &params, func(string) {})

	legal := b.GenerateLegalMoves()
	found := false
	for _, m := range legal {
		if m == result.BestMove {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("search returned a move not in the legal move list: %v", result.BestMove)
	}
}

func TestSearchStalemateReturnsNoMove(t *testing.T) {
	b := board.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !b.InStalemate() {
		t.Fatalf("test position expected to be stalemate")
	}
	ctx := newTestContext()
	params := personality.Default()
	result := Run(ctx, b, Options{MaxDepth: 2, UseCustomDepth: true}, &params, func(string) {})

	if result.BestMove != board.NoMove {
		t.Fatalf("expected NoMove on a stalemated position, got %v", result.BestMove)
	}
}

func TestSearchCandidatesAreSortedByScore(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	ctx := newTestContext()
	params := personality.Default()
	params.CandidateMovesMax = 5
	result := Run(ctx, b, Options{MaxDepth: 3, UseCustomDepth: true, MultiPV: 5}, &params, func(string) {})

	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i].Score > result.Candidates[i-1].Score {
			t.Fatalf("candidates not sorted descending by score at index %d: %d > %d",
				i, result.Candidates[i].Score, result.Candidates[i-1].Score)
		}
	}
}

func TestContextResetForNewGameClearsTables(t *testing.T) {
	ctx := newTestContext()
	b := board.MustParseFEN(board.StartFEN)
	params := personality.Default()
	Run(ctx, b, Options{MaxDepth: 3, UseCustomDepth: true}, &params, func(string) {})

	ctx.ResetForNewGame()
	if ctx.Diag.Nodes != 0 {
		t.Fatalf("expected diagnostics reset after ResetForNewGame")
	}
}

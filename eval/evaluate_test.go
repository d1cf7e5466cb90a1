package eval

import (
	"testing"

	"humanchess/board"
	"humanchess/personality"
)

func TestEvaluateStartposIsRoughlyBalanced(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	score := Evaluate(b, nil)
	if score < -30 || score > 30 {
		t.Fatalf("expected a near-zero startpos score, got %d", score)
	}
}

func TestEvaluateMirrorsAcrossSideToMove(t *testing.T) {
	white := board.MustParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := board.MustParseFEN("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")

	ws := Evaluate(white, nil)
	bs := Evaluate(black, nil)
	if ws != bs {
		t.Fatalf("expected mirrored positions to score identically from side-to-move perspective, got %d vs %d", ws, bs)
	}
}

func TestEvaluateRewardsMaterialAdvantage(t *testing.T) {
	up := board.MustParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	even := board.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	if Evaluate(up, nil) <= Evaluate(even, nil) {
		t.Fatalf("expected an extra queen to score higher than bare kings")
	}
}

func TestGamePhaseDecreasesAsMaterialIsRemoved(t *testing.T) {
	full := board.MustParseFEN(board.StartFEN)
	bare := board.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	if GamePhase(bare) >= GamePhase(full) {
		t.Fatalf("expected bare-kings phase (%d) to be less than startpos phase (%d)", GamePhase(bare), GamePhase(full))
	}
	if GamePhase(full) != TotalPhase {
		t.Fatalf("expected startpos to report full phase %d, got %d", TotalPhase, GamePhase(full))
	}
	if GamePhase(bare) != 0 {
		t.Fatalf("expected bare-kings phase 0, got %d", GamePhase(bare))
	}
}

func TestApplyTradeBiasNeutralIsNoOp(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	if got := applyTradeBias(b, 50, 100); got != 50 {
		t.Fatalf("expected neutral TradeBias (100) to be a no-op, got %d", got)
	}
}

func TestApplySacrificeBiasOnlySoftensLosingScores(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	if got := applySacrificeBias(b, 50, 200); got != 50 {
		t.Fatalf("expected sacrifice bias to leave a winning score untouched, got %d", got)
	}
	losing := applySacrificeBias(b, -200, 200)
	if losing <= -200 {
		t.Fatalf("expected high SacrificeBias to soften a losing score, got %d", losing)
	}
	neutral := applySacrificeBias(b, -200, 100)
	if neutral != -200 {
		t.Fatalf("expected neutral SacrificeBias (100) to be a no-op, got %d", neutral)
	}
}

func TestEvaluateAcceptsNilParams(t *testing.T) {
	b := board.MustParseFEN(board.StartFEN)
	def := personality.Default()
	if Evaluate(b, nil) != Evaluate(b, &def) {
		t.Fatalf("expected nil params to behave like personality.Default()")
	}
}

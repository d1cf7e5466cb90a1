// Package humanize implements human-like root move selection: instead of
// always playing the search's single best move, it samples among a
// guardrailed set of candidates with a temperature- and bias-weighted
// distribution. It is invoked only when PersonalityParams.HumanSelect is
// set; otherwise the caller should just play the search's best move.
package humanize

import (
	"math"
	"sort"

	"humanchess/board"
	"humanchess/eval"
	"humanchess/personality"
)

// candidate is one legal root move together with its shallow one-ply score
// and, once weights are computed, its selection weight/probability.
type candidate struct {
	move        board.Move
	score       int
	weight      float64
	probability float64
}

// openingPlyLimit is how many plies from the start of the game the opening
// sanity guardrail applies for.
const openingPlyLimit = 12

// Select runs the full guardrail-and-sampling pipeline against b's legal
// moves and returns the chosen move. currentPly counts plies played so far
// in the game (not search depth), used by the opening-sanity guardrail. If
// no legal move survives the pipeline (should not happen once the board has
// any legal move), it returns board.NoMove.
func Select(b *board.Board, params *personality.PersonalityParams, currentPly int) board.Move {
	candidates := collectCandidates(b, params)
	if len(candidates) == 0 {
		return board.NoMove
	}
	sortDescending(candidates)

	best := candidates[0].score

	candidates = applyHardFloor(candidates, best, params.HumanHardFloorCp)
	candidates = applyOpeningSanity(b, candidates, currentPly, params.HumanOpeningSanity)
	candidates = applyTopKOverride(candidates, params.HumanTopKOverride)
	candidates = applyMarginAndCount(candidates, best, params.CandidateMarginCp, params.CandidateMovesMax)

	if len(candidates) == 0 {
		return board.NoMove
	}
	if len(candidates) == 1 {
		return candidates[0].move
	}

	rng := NewRNG(params.RandomSeed)
	weighCandidates(candidates, best, params, rng)
	return sampleOne(candidates, rng)
}

// collectCandidates evaluates every legal root move with a one-ply shallow
// evaluation, applying the real make/unmake pair rather than a partial
// board edit (the source engine's shortcut, explicitly corrected here).
func collectCandidates(b *board.Board, params *personality.PersonalityParams) []candidate {
	moves := b.GenerateLegalMoves()
	out := make([]candidate, 0, len(moves))
	for _, m := range moves {
		undo := b.MakeMove(m)
		score := -int(eval.Evaluate(b, params))
		b.UnmakeMove(m, undo)
		out = append(out, candidate{move: m, score: score})
	}
	return out
}

func sortDescending(c []candidate) {
	sort.SliceStable(c, func(i, j int) bool { return c[i].score > c[j].score })
}

// applyHardFloor drops any candidate scoring more than hardFloorCp below the
// best move.
func applyHardFloor(c []candidate, best, hardFloorCp int) []candidate {
	floor := best - hardFloorCp
	out := c[:0:0]
	for _, cand := range c {
		if cand.score >= floor {
			out = append(out, cand)
		}
	}
	return out
}

// applyOpeningSanity penalizes edge knight/pawn moves during the opening
// and re-sorts, matching the source's guardrail ordering (penalize, then
// re-sort, before top-K truncation).
func applyOpeningSanity(b *board.Board, c []candidate, currentPly int, openingSanity int) []candidate {
	if currentPly >= openingPlyLimit || openingSanity <= 0 {
		return c
	}
	penalty := openingSanity * 5
	for i := range c {
		if isEdgeMoveOpening(b, c[i].move) {
			c[i].score -= penalty
		}
	}
	sortDescending(c)
	return c
}

// isEdgeMoveOpening reports whether m is a knight move to the board's edge
// ranks-of-development, or a rook-file pawn push — the source's definition
// of a move that looks unnatural this early.
func isEdgeMoveOpening(b *board.Board, m board.Move) bool {
	from := m.From()
	piece := b.PieceAt(from)
	pt := piece.Type()
	if pt != board.PieceTypeKnight && pt != board.PieceTypePawn {
		return false
	}
	file := from.File()
	rank := from.Rank()

	if pt == board.PieceTypeKnight {
		edgeFile := file == 0 || file == 1 || file == 6 || file == 7
		if edgeFile && (rank == 2 || rank == 5) {
			return true
		}
		return false
	}

	// Pawn: only the true rook-file pushes from their home rank count.
	return (rank == 1 || rank == 6) && (file == 0 || file == 7)
}

// applyTopKOverride truncates to the top k candidates when k > 0.
func applyTopKOverride(c []candidate, k int) []candidate {
	if k > 0 && k < len(c) {
		return c[:k]
	}
	return c
}

// applyMarginAndCount drops candidates below best-margin and caps the
// remaining count, the guardrail pipeline's final stage, applied after
// top-K per the source's own ordering.
func applyMarginAndCount(c []candidate, best, marginCp, maxCount int) []candidate {
	floor := best - marginCp
	out := c[:0:0]
	for _, cand := range c {
		if cand.score >= floor {
			out = append(out, cand)
		}
	}
	if maxCount > 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}

// weighCandidates computes each surviving candidate's softmax weight,
// applying temperature, per-move noise, risk appetite, and simplicity bias
// in the source's order, then normalizes to a probability distribution.
func weighCandidates(c []candidate, best int, params *personality.PersonalityParams, rng *RNG) {
	temperature := float64(params.HumanTemperature) / 100.0
	var total float64

	for i := range c {
		scoreDiff := float64(c[i].score-best) / 100.0
		weight := math.Exp(scoreDiff / (temperature + 0.01))

		if params.HumanNoiseCp > 0 {
			noise := (rng.Float64From(uint64(int64(c[i].move))) - 0.5) * 2.0 * float64(params.HumanNoiseCp) / 100.0
			weight *= math.Exp(noise)
		}

		switch {
		case params.RiskAppetite > 100:
			riskBoost := float64(params.RiskAppetite-100) / 100.0
			if c[i].score < best {
				weight *= 1.0 + riskBoost*0.3
			}
		case params.RiskAppetite < 100:
			riskPenalty := float64(100-params.RiskAppetite) / 100.0
			if c[i].score < best {
				weight *= 1.0 - riskPenalty*0.5
			}
		}

		if params.SimplicityBias > 100 && c[i].score < best-50 {
			simplicityBoost := float64(params.SimplicityBias-100) / 100.0
			weight *= 1.0 - simplicityBoost*0.3
		}

		c[i].weight = weight
		total += weight
	}

	if total <= 0 {
		return
	}
	for i := range c {
		c[i].probability = c[i].weight / total
	}
}

// sampleOne draws a uniform sample from the seeded RNG and returns the
// first candidate whose cumulative probability meets it, falling back to
// the top candidate if rounding leaves the draw unmatched.
func sampleOne(c []candidate, rng *RNG) board.Move {
	r := rng.Float64From(12345)
	var cumulative float64
	for _, cand := range c {
		cumulative += cand.probability
		if r <= cumulative {
			return cand.move
		}
	}
	return c[0].move
}

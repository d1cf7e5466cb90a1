// Package search implements iterative-deepening alpha-beta search with
// quiescence, a transposition table, and the pruning/extension heuristics
// that keep it selective at tournament time controls. Its Result carries the
// best root move with its score and PV; the humanize package builds its own
// candidate list from the root position rather than reading this one.
package search

import "humanchess/board"

// Score is a centipawn evaluation, positive favoring the side to move.
type Score int32

const (
	MaxScore  Score = 32500
	Mate      Score = 20000
	DrawScore Score = 0
)

// IsMateScore reports whether s represents a forced mate (for either side).
func IsMateScore(s Score) bool { return s > Mate || s < -Mate }

// PVLine is the sequence of moves the search believes is best from a node.
type PVLine struct {
	Moves []board.Move
}

func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

// Update sets this line to move followed by child's line.
func (pv *PVLine) Update(move board.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv PVLine) Clone() PVLine {
	out := make([]board.Move, len(pv.Moves))
	copy(out, pv.Moves)
	return PVLine{Moves: out}
}

func (pv PVLine) BestMove() board.Move {
	if len(pv.Moves) == 0 {
		return board.NoMove
	}
	return pv.Moves[0]
}

// CandidateMove is one root move together with the score and principal
// variation the search found for it.
type CandidateMove struct {
	Move  board.Move
	Score Score
	PV    []board.Move
}

// Result is what a completed (or time-stopped) search returns.
type Result struct {
	BestMove   board.Move
	Score      Score
	Depth      int
	Nodes      uint64
	PV         []board.Move
	Candidates []CandidateMove
}

// Options configures one search call.
type Options struct {
	MaxDepth      int
	SoftTimeMs    int
	HardTimeMs    int
	NodesLimit    uint64
	UseCustomDepth bool
	MultiPV       int
}

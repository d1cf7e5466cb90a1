package search

// repState is one ply's worth of the information needed to answer draw
// queries: the position hash and the halfmove clock at that point.
type repState struct {
	hash   uint64
	rule50 int
}

// RepetitionStack is the search-owned, search-aware repetition/fifty-move
// tracker: unlike board.IsDrawByRepetition (a single-call convenience
// wrapper), it distinguishes persistent game history (moves already played
// on the board before this search started) from repetitions that only occur
// inside the current search tree, and lets the root index mark that
// boundary so draw scores are not leaked backward into real game history.
type RepetitionStack struct {
	states []repState
}

// Reset rebuilds the stack so it contains exactly one entry for the current
// position, called at the start of a new game or position command.
func (r *RepetitionStack) Reset(hash uint64, rule50 int) {
	r.states = r.states[:0]
	r.Push(hash, rule50)
}

// EnsureRoot pushes the given root state only if the stack is empty,
// leaving any persistent game history the caller already pushed intact.
// Standalone callers (tests, benchmarks) that never populated the stack
// still get a usable single-entry root.
func (r *RepetitionStack) EnsureRoot(hash uint64, rule50 int) {
	if len(r.states) == 0 {
		r.Push(hash, rule50)
	}
}

func (r *RepetitionStack) Push(hash uint64, rule50 int) {
	r.states = append(r.states, repState{hash: hash, rule50: rule50})
}

func (r *RepetitionStack) Pop() {
	if len(r.states) == 0 {
		return
	}
	r.states = r.states[:len(r.states)-1]
}

// RootIndex returns the current stack depth, to be passed back into IsDraw/
// UpcomingRepetition as rootIndex once the search descends from here.
func (r *RepetitionStack) RootIndex() int {
	return len(r.states) - 1
}

// IsDraw reports whether the position at the top of the stack is a draw by
// the fifty-move rule, by two earlier occurrences anywhere in the window, or
// by a single earlier occurrence at or after rootIndex (a single occurrence
// purely in prior game history, before the search root, does not count).
func (r *RepetitionStack) IsDraw(rootIndex int) bool {
	if len(r.states) == 0 {
		return false
	}
	curr := r.states[len(r.states)-1]
	if curr.rule50 >= 100 {
		return true
	}
	count, firstIdx := r.repetitionInfo(curr.hash, curr.rule50)
	if count >= 2 {
		return true
	}
	return count >= 1 && firstIdx >= rootIndex && firstIdx != -1
}

// UpcomingRepetition reports whether the current position already repeats
// an earlier one in the halfmove-clock-bounded window, used to bias alpha
// toward a draw score before the repetition is actually forced.
func (r *RepetitionStack) UpcomingRepetition(rootIndex int) bool {
	if len(r.states) <= 1 {
		return false
	}
	curr := r.states[len(r.states)-1]
	start := len(r.states) - 1 - curr.rule50
	if start < 0 {
		start = 0
	}
	for i := len(r.states) - 2; i >= start; i-- {
		if r.states[i].hash == curr.hash && i >= rootIndex {
			return true
		}
	}
	return false
}

func (r *RepetitionStack) repetitionInfo(hash uint64, rule50 int) (count, firstIdx int) {
	firstIdx = -1
	if len(r.states) <= 1 {
		return 0, firstIdx
	}
	start := len(r.states) - 1 - rule50
	if start < 0 {
		start = 0
	}
	end := len(r.states) - 2
	for i := start; i <= end; i++ {
		if r.states[i].hash == hash {
			count++
			if firstIdx == -1 {
				firstIdx = i
			}
		}
	}
	return count, firstIdx
}

package search

import "time"

// TimeManager paces iterative deepening against a UCI-style clock budget:
// a soft deadline that the root loop may cross by one more depth if the
// score looks unstable, and a hard deadline it never crosses.
type TimeManager struct {
	started     time.Time
	softDeadline time.Time
	hardDeadline time.Time
	usingCustomDepth bool

	lastScore Score
	lastMove  uint32
	stableDepths int
}

// Start computes the soft/hard deadlines for one move from the remaining
// clock, increment, and an estimate of moves left derived from game phase
// (openings/middlegames get a smaller fraction than endgames, where there
// are usually fewer pieces left to calculate for). The phase estimate is
// used only when an increment is given; without one the budget is a fixed
// fortieth of the remaining clock.
func (tm *TimeManager) Start(remainingMs, incrementMs, phase int, useCustomDepth bool) {
	tm.started = time.Now()
	tm.usingCustomDepth = useCustomDepth
	tm.stableDepths = 0
	tm.lastScore = 0
	tm.lastMove = 0

	if useCustomDepth {
		tm.softDeadline = tm.started.Add(365 * 24 * time.Hour)
		tm.hardDeadline = tm.softDeadline
		return
	}

	movesLeft := estimateMovesRemaining(phase)

	const overheadMs = 30
	const minMoveMs = 5
	const maxFrac = 0.7
	const panicThreshMs = 1000
	const panicFrac = 0.90

	var moveTime int
	if incrementMs > 0 {
		if remainingMs < panicThreshMs {
			moveTime = int(float64(incrementMs) * panicFrac)
		} else {
			moveTime = remainingMs/movesLeft + incrementMs
		}
	} else {
		moveTime = remainingMs / 40
	}

	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}
	if cap := int(float64(remainingMs) * maxFrac); moveTime > cap {
		moveTime = cap
	}
	if moveTime > remainingMs-overheadMs {
		moveTime = remainingMs - overheadMs
	}
	if moveTime < minMoveMs {
		moveTime = minMoveMs
	}

	tm.softDeadline = tm.started.Add(time.Duration(moveTime) * time.Millisecond)
	tm.hardDeadline = tm.started.Add(time.Duration(moveTime) * 2 * time.Millisecond)
}

func estimateMovesRemaining(phase int) int {
	return (phase*25)/24 + 20
}

// HardTimeExceeded reports whether the hard deadline has passed; search must
// stop unconditionally once true, even mid-iteration.
func (tm *TimeManager) HardTimeExceeded() bool {
	return !tm.usingCustomDepth && time.Now().After(tm.hardDeadline)
}

// SoftTimeExceeded reports whether the soft deadline has passed; the root
// loop should not start a new iterative-deepening depth once true, unless
// ShouldExtendTime says the score looks unstable.
func (tm *TimeManager) SoftTimeExceeded() bool {
	return !tm.usingCustomDepth && time.Now().After(tm.softDeadline)
}

// ShouldStopEarly reports a best-move-is-obviously-settled signal: several
// consecutive iterations produced the same move with a stable score.
func (tm *TimeManager) ShouldStopEarly() bool {
	return tm.stableDepths >= 6
}

// UpdateStability tracks whether the best move/score changed since the last
// completed iteration.
func (tm *TimeManager) UpdateStability(score Score, move uint32) {
	if move == tm.lastMove && abs32(int32(score-tm.lastScore)) < 15 {
		tm.stableDepths++
	} else {
		tm.stableDepths = 0
	}
	tm.lastScore = score
	tm.lastMove = move
}

// ShouldExtendTime reports whether the score has been unstable recently
// (few or no stable iterations), meaning it is worth spending more of the
// soft budget before committing to a move.
func (tm *TimeManager) ShouldExtendTime() bool {
	return tm.stableDepths < 2
}

// ExtendTime pushes the soft deadline out (but never past the hard
// deadline) when the position looks unsettled.
func (tm *TimeManager) ExtendTime() {
	extended := time.Now().Add(250 * time.Millisecond)
	if extended.After(tm.hardDeadline) {
		extended = tm.hardDeadline
	}
	if extended.After(tm.softDeadline) {
		tm.softDeadline = extended
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

package search

import (
	"unsafe"

	"humanchess/board"
)

// Bound flags for a stored score, mirroring the classic alpha/beta/exact
// trichotomy.
const (
	BoundAlpha int8 = iota
	BoundBeta
	BoundExact
)

const clusterSize = 4

// unusableScore is returned alongside usable=false from Probe; callers must
// check usable before trusting it.
const unusableScore Score = -32750

type ttEntry struct {
	hash  uint64
	depth int8
	move  board.Move
	score Score
	bound int8
}

// TranspositionTable is a fixed-size, cluster-probed hash table keyed by
// Zobrist hash. Each cluster holds clusterSize entries; a miss falls back to
// replacing the shallowest entry in the cluster ("always replace" within the
// cluster, never globally).
type TranspositionTable struct {
	entries      []ttEntry
	clusterCount uint64
}

// NewTranspositionTable allocates a table sized to roughly sizeMB megabytes.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	t := &TranspositionTable{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table, discarding its contents.
func (t *TranspositionTable) Resize(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(ttEntry{}))
	if entrySize == 0 {
		entrySize = 1
	}
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterBytes := entrySize * clusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	t.clusterCount = clusterCount
	t.entries = make([]ttEntry, clusterCount*clusterSize)
}

// Clear empties every entry without reallocating.
func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
}

func (t *TranspositionTable) probe(hash uint64) (*ttEntry, bool) {
	if t.clusterCount == 0 {
		return nil, false
	}
	base := int((hash % t.clusterCount) * clusterSize)
	for i := 0; i < clusterSize; i++ {
		e := &t.entries[base+i]
		if e.hash == hash {
			return e, true
		}
	}
	return nil, false
}

// Probe returns the raw stored entry for hash, if any, without adjusting
// mate scores for ply (callers needing a usable bound should call Use).
func (t *TranspositionTable) Probe(hash uint64) (move board.Move, found bool) {
	e, ok := t.probe(hash)
	if !ok {
		return board.NoMove, false
	}
	return e.move, true
}

// Use looks up hash and, if the stored entry is deep enough and its bound
// permits a cutoff at (alpha, beta), returns a usable score. The stored
// score is mate-ply-adjusted to the current ply before being returned. The
// caller is responsible for re-validating the stored move's legality before
// playing it; a stale entry from a hash collision can name an illegal move.
func (t *TranspositionTable) Use(hash uint64, depth int8, alpha, beta Score, ply int) (usable bool, score Score, move board.Move) {
	e, ok := t.probe(hash)
	if !ok {
		return false, unusableScore, board.NoMove
	}
	move = e.move
	if e.depth < depth {
		return false, unusableScore, move
	}
	norm := e.score
	if norm > Mate {
		norm -= Score(ply)
	} else if norm < -Mate {
		norm += Score(ply)
	}
	switch e.bound {
	case BoundExact:
		return true, norm, move
	case BoundAlpha:
		if norm <= alpha {
			return true, alpha, move
		}
	case BoundBeta:
		if norm >= beta {
			return true, beta, move
		}
	}
	return false, unusableScore, move
}

// Store records a search result, preferring (in order) an existing entry for
// the same hash, an empty slot, or the shallowest entry in the cluster.
func (t *TranspositionTable) Store(hash uint64, depth int8, ply int, move board.Move, score Score, bound int8) {
	if t.clusterCount == 0 {
		return
	}
	if score > Mate {
		score += Score(ply)
	} else if score < -Mate {
		score -= Score(ply)
	}

	base := int((hash % t.clusterCount) * clusterSize)
	target := -1
	for i := 0; i < clusterSize; i++ {
		if t.entries[base+i].hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if t.entries[base+i].hash == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		minDepth := t.entries[base].depth
		for i := 1; i < clusterSize; i++ {
			if t.entries[base+i].depth < minDepth {
				minDepth = t.entries[base+i].depth
				target = base + i
			}
		}
	}

	e := &t.entries[target]
	e.hash = hash
	e.depth = depth
	e.move = move
	e.score = score
	e.bound = bound
}

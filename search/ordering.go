package search

import "humanchess/board"

// mvvLva[victim][attacker] scores a capture by the value of what it takes
// minus how valuable the taker is, so a pawn capturing a queen ranks far
// above a queen capturing a pawn.
var mvvLva = [7][7]int32{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0},
	{0, 24, 23, 22, 21, 20, 0},
	{0, 34, 33, 32, 31, 30, 0},
	{0, 44, 43, 42, 41, 40, 0},
	{0, 54, 53, 52, 51, 50, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

const (
	pvOffset        int32 = 25000
	promotionOffset int32 = 15000
	captureOffset   int32 = 20000
	killerOffset    int32 = 2000
	counterOffset   int32 = 1000
)

const maxPly = 128

// MoveOrderer owns the killer, history, and counter-move tables for one
// search; a fresh instance is created per Context rather than kept as
// package-level state, so concurrent searches over different contexts never
// share a table.
type MoveOrderer struct {
	killers [maxPly + 1][2]board.Move
	history [2][64][64]int32
	counter [2][64][64]board.Move
}

const historyMax int32 = 2000

func (o *MoveOrderer) InsertKiller(move board.Move, ply int) {
	if ply < 0 || ply > maxPly {
		return
	}
	if move != o.killers[ply][0] {
		o.killers[ply][1] = o.killers[ply][0]
		o.killers[ply][0] = move
	}
}

func (o *MoveOrderer) IsKiller(move board.Move, ply int) bool {
	if ply < 0 || ply > maxPly {
		return false
	}
	return move == o.killers[ply][0] || move == o.killers[ply][1]
}

func (o *MoveOrderer) StoreCounter(side board.Color, prev, move board.Move) {
	o.counter[side][prev.From()][prev.To()] = move
}

// IncrementHistory rewards a quiet move that caused a beta cutoff, aging the
// whole table by half whenever any entry would overflow the cap.
func (o *MoveOrderer) IncrementHistory(side board.Color, move board.Move, depth int8) {
	h := &o.history[side][move.From()][move.To()]
	*h += int32(depth) * int32(depth)
	if *h >= historyMax {
		o.ageHistory(side)
	}
}

// DecrementHistory penalizes a quiet move that was tried but did not cause a
// cutoff, halving its score.
func (o *MoveOrderer) DecrementHistory(side board.Color, move board.Move) {
	h := &o.history[side][move.From()][move.To()]
	if *h > 0 {
		*h /= 2
	}
}

func (o *MoveOrderer) ageHistory(side board.Color) {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			o.history[side][from][to] /= 2
		}
	}
}

func (o *MoveOrderer) ClearKillers() {
	for ply := range o.killers {
		o.killers[ply] = [2]board.Move{}
	}
}

func (o *MoveOrderer) ClearHistory() {
	o.history = [2][64][64]int32{}
	o.counter = [2][64][64]board.Move{}
}

type scoredMove struct {
	move  board.Move
	score int32
}

// scoreMoves assigns each move in moves an ordering score: PV move highest,
// then captures by MVV-LVA, then promotions (a capturing promotion is scored
// as a promotion), then killers, then history
// (boosted further if the move is this node's stored counter-move).
func (o *MoveOrderer) scoreMoves(side board.Color, moves []board.Move, ply int, pvMove, prevMove board.Move) []scoredMove {
	out := make([]scoredMove, len(moves))
	for i, m := range moves {
		var s int32
		switch {
		case pvMove != board.NoMove && m == pvMove:
			s = pvOffset + 1500
		case m.IsPromotion():
			s = promotionOffset + pieceOrderValue(m.PromotionPieceType())
		case m.IsCapture():
			s = captureOffset + mvvLva[captureVictimType(m)][m.MovedPiece().Type()]
		case o.killers[ply][0] == m:
			s = killerOffset + 200
		case o.killers[ply][1] == m:
			s = killerOffset
		default:
			s = o.history[side][m.From()][m.To()]
			if o.counter[side][prevMove.From()][prevMove.To()] == m {
				s += counterOffset
			}
		}
		out[i] = scoredMove{move: m, score: s}
	}
	return out
}

func captureVictimType(m board.Move) board.PieceType {
	if m.IsEnPassant() {
		return board.PieceTypePawn
	}
	return m.CapturedPiece().Type()
}

func pieceOrderValue(pt board.PieceType) int32 {
	switch pt {
	case board.PieceTypeQueen:
		return 900
	case board.PieceTypeRook:
		return 500
	case board.PieceTypeBishop:
		return 330
	case board.PieceTypeKnight:
		return 320
	}
	return 0
}

// scoreCaptures scores only captures/promotions, for quiescence search,
// where quiet moves are never generated in the first place.
func (o *MoveOrderer) scoreCaptures(moves []board.Move, pvMove board.Move) []scoredMove {
	out := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}
		var s int32
		if pvMove != board.NoMove && m == pvMove {
			s = captureOffset + 256
		} else if m.IsPromotion() {
			s = captureOffset + 75
		} else {
			s = mvvLva[captureVictimType(m)][m.MovedPiece().Type()]
		}
		out = append(out, scoredMove{move: m, score: s})
	}
	return out
}

// pickBest moves the highest-scoring move in out[from:] into out[from],
// an in-place selection sort step that avoids sorting moves never reached
// thanks to a cutoff.
func pickBest(out []scoredMove, from int) {
	best := from
	for i := from + 1; i < len(out); i++ {
		if out[i].score > out[best].score {
			best = i
		}
	}
	out[from], out[best] = out[best], out[from]
}

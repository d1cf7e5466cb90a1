package search

import (
	"fmt"
	"time"

	"humanchess/board"
	"humanchess/eval"
	"humanchess/personality"
)

// Margins for the depth-scaled pruning heuristics below, indexed by
// remaining depth. Index 0 is unused (never consulted at depth 0; the
// caller drops into quiescence first).
var (
	rfpMargins      = [8]Score{0, 100, 200, 300, 400, 500, 600, 700}
	futilityMargins = [8]Score{0, 120, 220, 320, 420, 520, 620, 720}
	lmpMargins      = [9]int{0, 3, 5, 9, 14, 20, 27, 35, 44}
)

const (
	lmrDepthLimit  = 2
	lmrMoveLimit   = 2
	nullMoveMinDepth int8 = 2
	deltaMargin    Score = 200
	qseeMargin     Score = 100
	aspirationBase Score = 35
)

// Run performs an iterative-deepening search from b using ctx's tables,
// returning the best move found, its score, the last completed depth, and a
// Candidates list holding that best move with its score and PV as its only
// entry (Options.MultiPV is not consulted).
func Run(ctx *Context, b *board.Board, opts Options, params *personality.PersonalityParams, infoLine func(string)) Result {
	ctx.ResetStop()
	ctx.nodes = 0
	ctx.Diag.Reset()
	// The caller (the UCI driver's position handling) owns pushing real game
	// history onto ctx.Repetition as moves are played; Run must not discard
	// it here, or repetitions that span the actual game (not just this
	// search's recursion) would never be detected.
	ctx.Repetition.EnsureRoot(b.Hash(), b.HalfmoveClock())

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 || maxDepth > 127 {
		maxDepth = 127
	}

	s := &searcher{ctx: ctx, params: params, opts: opts, rootIndex: ctx.Repetition.RootIndex()}

	var alpha, beta Score = -MaxScore, MaxScore
	var bestScore Score
	var completedDepth int
	var prevPV, pv PVLine
	window := aspirationBase

	rootMoves := b.GenerateLegalMoves()
	candidates := make([]CandidateMove, 0, len(rootMoves))

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && !opts.UseCustomDepth {
			if ctx.Time.SoftTimeExceeded() && !ctx.Time.ShouldExtendTime() {
				break
			}
			if ctx.Time.ShouldStopEarly() {
				break
			}
		}

		pv.Clear()
		start := time.Now()
		score := s.alphabeta(b, alpha, beta, int8(depth), 0, &pv, board.NoMove, false, false, board.NoMove)
		elapsed := time.Since(start)

		if ctx.Stopped() || ctx.Time.HardTimeExceeded() {
			if len(prevPV.Moves) == 0 && len(pv.Moves) > 0 {
				bestScore = score
				prevPV = pv.Clone()
			}
			break
		}

		if score <= alpha || score >= beta {
			if window >= MaxScore {
				window = MaxScore
			} else {
				window *= 2
			}
			alpha, beta = score-window, score+window
			if alpha < -MaxScore {
				alpha = -MaxScore
			}
			if beta > MaxScore {
				beta = MaxScore
			}
			depth--
			continue
		}

		window = aspirationBase
		alpha, beta = score-window, score+window
		bestScore = score
		completedDepth = depth
		prevPV = pv.Clone()

		if len(pv.Moves) > 0 {
			ctx.Time.UpdateStability(score, uint32(pv.Moves[0]))
		}
		if ctx.Time.ShouldExtendTime() {
			ctx.Time.ExtendTime()
		}

		if infoLine != nil {
			infoLine(fmt.Sprintf("info depth %d score cp %d nodes %d time %d pv %s",
				depth, score, ctx.nodes, elapsed.Milliseconds(), pvString(pv)))
		}

		if IsMateScore(score) {
			break
		}
	}

	best := prevPV.BestMove()
	if best == board.NoMove && len(rootMoves) > 0 {
		best = rootMoves[0]
	}

	candidates = append(candidates, CandidateMove{Move: best, Score: bestScore, PV: prevPV.Moves})

	return Result{
		BestMove:   best,
		Score:      bestScore,
		Depth:      completedDepth,
		Nodes:      ctx.nodes,
		PV:         prevPV.Moves,
		Candidates: candidates,
	}
}

func pvString(pv PVLine) string {
	s := ""
	for i, m := range pv.Moves {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}

// searcher bundles the per-call-immutable inputs (context, personality,
// options, root boundary) that every recursive alphabeta/quiescence call
// needs, so they don't have to be threaded as separate parameters.
type searcher struct {
	ctx       *Context
	params    *personality.PersonalityParams
	opts      Options
	rootIndex int
}

func (s *searcher) alphabeta(b *board.Board, alpha, beta Score, depth int8, ply int, pv *PVLine, prevMove board.Move, didNull, isExtended bool, excludedMove board.Move) Score {
	s.ctx.nodes++
	s.ctx.Diag.Nodes++

	if s.ctx.nodes&4095 == 0 && s.ctx.Time.HardTimeExceeded() {
		s.ctx.Stop()
	}
	if s.ctx.Stopped() {
		return 0
	}
	if ply >= maxPly {
		return Score(eval.Evaluate(b, s.params))
	}

	var childPV PVLine
	isPVNode := beta-alpha > 1
	isRoot := ply == 0

	if !isRoot {
		// Mate-distance pruning: no score here can beat mating now or be
		// worse than being mated now.
		if mated := -MaxScore + Score(ply); alpha < mated {
			alpha = mated
		}
		if mating := MaxScore - Score(ply); beta > mating {
			beta = mating
		}
		if alpha >= beta {
			return alpha
		}
		if s.ctx.Repetition.IsDraw(s.rootIndex) {
			return DrawScore
		}
		if alpha < DrawScore && s.ctx.Repetition.UpcomingRepetition(s.rootIndex) {
			alpha = DrawScore
		}
	}

	us := b.SideToMove()
	inCheck := b.InCheck(us)
	if inCheck {
		depth++
	}

	if b.InsufficientMaterial() {
		return DrawScore
	}

	if depth <= 0 {
		return s.quiescence(b, alpha, beta, &childPV, 0, 24)
	}

	hash := b.Hash()
	usable, ttScore, ttMove := s.ctx.TT.Use(hash, depth, alpha, beta, ply)
	if ttMove != board.NoMove {
		s.ctx.Diag.TTMoveHits++
	} else {
		s.ctx.Diag.TTMoveMisses++
	}
	if usable && !isRoot && !isPVNode {
		s.ctx.Diag.TTCutoffs++
		return ttScore
	}

	var bestMove board.Move
	var staticScore Score
	if usable {
		staticScore = ttScore
		bestMove = ttMove
	} else {
		staticScore = Score(eval.Evaluate(b, s.params))
	}

	improving := ply >= 2 && !inCheck && staticScore > alpha

	if !inCheck && !isPVNode && !isRoot && depth >= 1 && depth <= 7 && absScore(beta) < Mate {
		margin := rfpMargins[depth]
		if !improving {
			margin -= 50
		}
		if staticScore-margin >= beta {
			s.ctx.Diag.StaticNullCutoffs++
			s.ctx.TT.Store(hash, depth, ply, ttMove, staticScore-margin, BoundBeta)
			return staticScore - margin
		}
	}

	hasNonPawnMaterial := b.Bitboards(us).Knights|b.Bitboards(us).Bishops|b.Bitboards(us).Rooks|b.Bitboards(us).Queens != 0

	if !inCheck && !isPVNode && !didNull && hasNonPawnMaterial && depth >= nullMoveMinDepth && !isRoot {
		undo := b.MakeNullMove()
		r := int8(3) + depth/3
		if depth > 6 {
			r++
		}
		if r > depth-1 {
			r = depth - 1
		}
		score := -s.alphabeta(b, -beta, -beta+1, depth-1-r, ply+1, &childPV, bestMove, true, isExtended, board.NoMove)
		b.UnmakeNullMove(undo)

		if score >= beta && score < Mate {
			s.ctx.Diag.NullMoveCutoffs++
			s.ctx.TT.Store(hash, depth, ply, ttMove, score, BoundBeta)
			return score
		}
	}

	var singularExtension bool
	if !isPVNode && !isRoot && !inCheck && !didNull && !isExtended && depth >= 8 && ttMove != board.NoMove {
		margin := Score(50 + 10*int(depth))
		target := ttScore - margin
		r := int8(3) + depth/4
		if r > depth-1 {
			r = depth - 1
		}
		var verify PVLine
		s.ctx.Diag.SingularExtensions++
		scoreSingular := s.alphabeta(b, target-1, target, depth-1-r, ply, &verify, prevMove, didNull, true, ttMove)
		if scoreSingular < target {
			singularExtension = true
		}
	}

	if ttMove == board.NoMove && depth >= 5 && !didNull && !isExtended {
		reduced := depth - 2
		if depth >= 8 {
			reduced = depth - depth/4
		}
		s.ctx.Diag.IIDProbes++
		var iidPV PVLine
		s.alphabeta(b, alpha, beta, reduced, ply, &iidPV, prevMove, false, true, board.NoMove)
		if m, found := s.ctx.TT.Probe(hash); found && m != board.NoMove {
			ttMove = m
			bestMove = m
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MaxScore + Score(ply)
		}
		return DrawScore
	}

	scored := s.ctx.Orderer.scoreMoves(us, moves, ply, ttMove, prevMove)

	bestScore := -MaxScore
	bound := BoundAlpha
	legal := 0
	quietTried := make([]board.Move, 0, 16)

	for i := range scored {
		pickBest(scored, i)
		move := scored[i].move
		if move == excludedMove {
			continue
		}

		isCapture := move.IsCapture()
		givesCheck := b.GivesCheck(move)
		tactical := isCapture || givesCheck || move.IsPromotion()
		legal++

		if depth <= 8 && !isPVNode && !tactical && !isRoot && legal > 1 {
			margin := lmpMargins[minInt(int(depth), len(lmpMargins)-1)]
			if !improving {
				margin = margin * 2 / 3
			}
			if margin > 0 && legal > margin {
				s.ctx.Diag.LateMovePrunes++
				continue
			}
		}

		if depth >= 1 && depth <= 7 && !givesCheck && !isPVNode && !isRoot && !tactical && absScore(alpha) < Mate {
			margin := futilityMargins[depth]
			if !improving {
				margin -= 50
			}
			if staticScore+margin <= alpha {
				s.ctx.Diag.FutilityPrunes++
				continue
			}
		}

		if !isCapture {
			quietTried = append(quietTried, move)
		}

		undo := b.MakeMove(move)
		s.ctx.Repetition.Push(b.Hash(), b.HalfmoveClock())

		extend := !isExtended && move == ttMove && singularExtension
		nextExtended := isExtended || extend

		var score Score
		if legal == 1 {
			nextDepth := reduceDepth(depth-1, 0, extend)
			score = -s.alphabeta(b, -beta, -alpha, nextDepth, ply+1, &childPV, move, false, nextExtended, board.NoMove)
		} else {
			histScore := s.ctx.Orderer.history[us][move.From()][move.To()]
			var reduct int8
			if int(depth) >= lmrDepthLimit && legal >= lmrMoveLimit && !givesCheck && !tactical {
				reduct = computeLMR(depth, legal, isPVNode, histScore, improving, s.ctx.Orderer.IsKiller(move, ply), extend)
			}
			score = s.pvs(b, move, depth-1, reduct, alpha, beta, ply, extend, nextExtended, &childPV)
		}

		b.UnmakeMove(move, undo)
		s.ctx.Repetition.Pop()

		if score > bestScore {
			bestScore = score
			bestMove = move
		}

		if score >= beta {
			s.ctx.Diag.BetaCutoffs++
			bound = BoundBeta
			if !isCapture {
				s.ctx.Orderer.InsertKiller(move, ply)
				s.ctx.Orderer.StoreCounter(us, prevMove, move)
				s.ctx.Orderer.IncrementHistory(us, move, depth)
				for _, failed := range quietTried {
					if failed != move {
						s.ctx.Orderer.DecrementHistory(us, failed)
					}
				}
			}
			break
		}

		if score > alpha {
			alpha = score
			bound = BoundExact
			pv.Update(move, childPV)
			if !isCapture {
				s.ctx.Orderer.IncrementHistory(us, move, depth)
			}
		}
		childPV.Clear()
	}

	if !s.ctx.Stopped() {
		s.ctx.TT.Store(hash, depth, ply, bestMove, bestScore, bound)
	}

	return bestScore
}

// pvs implements the principal-variation-search three-stage re-search:
// reduced null-window, full-depth null-window, and finally full-window only
// if the move might actually beat alpha.
func (s *searcher) pvs(b *board.Board, move board.Move, baseDepth, reduction int8, alpha, beta Score, ply int, extend, nextExtended bool, childPV *PVLine) Score {
	nextDepth := reduceDepth(baseDepth, reduction, extend)
	score := -s.alphabeta(b, -(alpha + 1), -alpha, nextDepth, ply+1, childPV, move, false, nextExtended, board.NoMove)

	if score > alpha && reduction > 0 {
		nextDepth = reduceDepth(baseDepth, 0, extend)
		score = -s.alphabeta(b, -(alpha + 1), -alpha, nextDepth, ply+1, childPV, move, false, nextExtended, board.NoMove)
	}
	if score > alpha && score < beta {
		nextDepth = reduceDepth(baseDepth, 0, extend)
		score = -s.alphabeta(b, -beta, -alpha, nextDepth, ply+1, childPV, move, false, nextExtended, board.NoMove)
	}
	return score
}

func (s *searcher) quiescence(b *board.Board, alpha, beta Score, pv *PVLine, qply, maxQPly int) Score {
	s.ctx.nodes++
	s.ctx.Diag.Nodes++

	if s.ctx.nodes&2047 == 0 && s.ctx.Time.HardTimeExceeded() {
		s.ctx.Stop()
	}
	if s.ctx.Stopped() {
		return 0
	}

	us := b.SideToMove()
	inCheck := b.InCheck(us)
	standPat := Score(eval.Evaluate(b, s.params))

	if !inCheck {
		if standPat >= beta {
			s.ctx.Diag.QStandPatCutoffs++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
		if standPat+pieceValueMG(board.PieceTypeQueen)+deltaMargin < alpha {
			return alpha
		}
	}

	bestScore := standPat
	if inCheck {
		bestScore = -MaxScore
	}

	if qply >= maxQPly {
		return bestScore
	}

	var scored []scoredMove
	if inCheck {
		moves := b.GenerateLegalMoves()
		scored = s.ctx.Orderer.scoreMoves(us, moves, 0, board.NoMove, board.NoMove)
	} else {
		moves := b.GenerateCapturesInto(make([]board.Move, 0, 16))
		scored = s.ctx.Orderer.scoreCaptures(moves, board.NoMove)
	}

	var childPV PVLine
	for i := range scored {
		pickBest(scored, i)
		move := scored[i].move

		if !inCheck {
			if b.StaticExchangeEval(move) < -int(qseeMargin) {
				continue
			}
			gain := Score(0)
			if move.CapturedPiece() != board.NoPiece {
				gain = pieceValueMG(move.CapturedPiece().Type())
			}
			if move.IsPromotion() {
				gain += pieceValueMG(move.PromotionPieceType()) - pieceValueMG(board.PieceTypePawn)
			}
			if standPat+gain+deltaMargin < alpha {
				continue
			}
		}

		undo := b.MakeMove(move)
		s.ctx.Repetition.Push(b.Hash(), b.HalfmoveClock())
		score := -s.quiescence(b, -beta, -alpha, &childPV, qply+1, maxQPly)
		b.UnmakeMove(move, undo)
		s.ctx.Repetition.Pop()

		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			s.ctx.Diag.QBetaCutoffs++
			return score
		}
		if score > alpha {
			alpha = score
			pv.Update(move, childPV)
		}
		childPV.Clear()
	}

	return bestScore
}

func pieceValueMG(pt board.PieceType) Score {
	switch pt {
	case board.PieceTypePawn:
		return 100
	case board.PieceTypeKnight:
		return 320
	case board.PieceTypeBishop:
		return 330
	case board.PieceTypeRook:
		return 500
	case board.PieceTypeQueen:
		return 900
	}
	return 0
}

func computeLMR(depth int8, legal int, isPVNode bool, histScore int32, improving, isKiller, extended bool) int8 {
	r := int8(1)
	if depth >= 6 {
		r++
	}
	if legal >= 8 {
		r++
	}
	if !improving {
		r++
	}
	if isPVNode {
		r--
	}
	if isKiller {
		r--
	}
	if histScore > 500 {
		r--
	} else if histScore < -100 {
		r++
	}
	if extended {
		r--
	}
	if r < 0 {
		r = 0
	}
	if r > depth-1 {
		r = depth - 1
	}
	return r
}

func reduceDepth(base, reduction int8, extend bool) int8 {
	d := base - reduction
	if extend && reduction == 0 {
		d++
	}
	return d
}

func absScore(s Score) Score {
	if s < 0 {
		return -s
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

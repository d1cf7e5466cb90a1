// Package eval provides the default static evaluation function the search
// package calls at leaf nodes. Its internals are not part of the engine's
// externally observable contract (a different evaluator could be swapped in
// without changing search or root-selection behavior); it exists so search
// has something real to optimize against.
package eval

import (
	"math/bits"

	"humanchess/board"
	"humanchess/personality"
)

// Evaluate returns a centipawn score from the perspective of the side to
// move, tapered between midgame and endgame piece-square tables by the
// remaining material on the board, and scaled by params' SacrificeBias and
// TradeBias (nil params means the engine-neutral defaults).
func Evaluate(b *board.Board, params *personality.PersonalityParams) int32 {
	if params == nil {
		d := personality.Default()
		params = &d
	}

	mgScore, egScore, phase := taperedMaterialAndPSQT(b)

	mgMobility, egMobility := mobilityScore(b, board.White)
	mgMobilityB, egMobilityB := mobilityScore(b, board.Black)
	mgScore += mgMobility - mgMobilityB
	egScore += egMobility - egMobilityB

	mgScore += kingSafetyScore(b, board.White) - kingSafetyScore(b, board.Black)

	if phase > totalPhase {
		phase = totalPhase
	}
	tapered := (mgScore*phase + egScore*(totalPhase-phase)) / totalPhase

	tapered = applyTradeBias(b, tapered, params.TradeBias)
	tapered = applySacrificeBias(b, tapered, params.SacrificeBias)

	if b.SideToMove() == board.Black {
		tapered = -tapered
	}
	return int32(tapered)
}

// taperedMaterialAndPSQT walks every occupied square once, accumulating
// White-minus-Black midgame/endgame material+PSQT scores and the game-phase
// weight the caller tapers between them with.
func taperedMaterialAndPSQT(b *board.Board) (mgScore, egScore, phase int) {
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		pt := p.Type()
		sign := 1
		psqSq := sq
		if p.Color() == board.Black {
			sign = -1
			psqSq = flipSquare(sq)
		}

		mgScore += sign * (pieceValueMG[pt] + psqtMG[pt][psqSq])
		egScore += sign * (pieceValueEG[pt] + psqtEG[pt][psqSq])

		switch pt {
		case board.PieceTypeKnight:
			phase += knightPhase
		case board.PieceTypeBishop:
			phase += bishopPhase
		case board.PieceTypeRook:
			phase += rookPhase
		case board.PieceTypeQueen:
			phase += queenPhase
		}
	}
	return mgScore, egScore, phase
}

// GamePhase returns how much non-pawn material is left, from totalPhase
// (full material, opening) down to 0 (bare kings and pawns), for
// collaborators like the time manager that scale behavior by game stage
// without needing a full evaluation pass.
func GamePhase(b *board.Board) int {
	_, _, phase := taperedMaterialAndPSQT(b)
	if phase > totalPhase {
		phase = totalPhase
	}
	return phase
}

// TotalPhase is the maximum value GamePhase can return (full starting
// material of knights/bishops/rooks/queens).
const TotalPhase = totalPhase

// mobilityScore credits each side for the squares its minor/major pieces
// attack, a cheap proxy for piece activity.
func mobilityScore(b *board.Board, side board.Color) (mg, eg int) {
	occ := b.AllOccupancy()
	own := b.ColorOccupancy(side)
	bbs := b.Bitboards(side)

	knights := bbs.Knights
	for knights != 0 {
		sq := board.Square(bits.TrailingZeros64(knights))
		knights &= knights - 1
		count := bits.OnesCount64(board.KnightAttacks(sq) &^ own)
		mg += count * mobilityValueMG[board.PieceTypeKnight]
		eg += count * mobilityValueEG[board.PieceTypeKnight]
	}
	bishops := bbs.Bishops
	for bishops != 0 {
		sq := board.Square(bits.TrailingZeros64(bishops))
		bishops &= bishops - 1
		count := bits.OnesCount64(board.CalculateBishopMoveBitboard(sq, occ) &^ own)
		mg += count * mobilityValueMG[board.PieceTypeBishop]
		eg += count * mobilityValueEG[board.PieceTypeBishop]
	}
	rooks := bbs.Rooks
	for rooks != 0 {
		sq := board.Square(bits.TrailingZeros64(rooks))
		rooks &= rooks - 1
		count := bits.OnesCount64(board.CalculateRookMoveBitboard(sq, occ) &^ own)
		mg += count * mobilityValueMG[board.PieceTypeRook]
		eg += count * mobilityValueEG[board.PieceTypeRook]
	}
	queens := bbs.Queens
	for queens != 0 {
		sq := board.Square(bits.TrailingZeros64(queens))
		queens &= queens - 1
		count := bits.OnesCount64((board.CalculateRookMoveBitboard(sq, occ) | board.CalculateBishopMoveBitboard(sq, occ)) &^ own)
		mg += count * mobilityValueMG[board.PieceTypeQueen]
		eg += count * mobilityValueEG[board.PieceTypeQueen]
	}
	return mg, eg
}

// attackerWeightInner credits material near the enemy king, a coarse
// king-safety term.
var attackerWeightInner = [7]int{
	board.PieceTypePawn: 1, board.PieceTypeKnight: 2, board.PieceTypeBishop: 2,
	board.PieceTypeRook: 4, board.PieceTypeQueen: 6,
}

func kingSafetyScore(b *board.Board, side board.Color) int {
	enemy := side.Opponent()
	ksq := b.KingSquare(enemy)
	ring := board.KingAttacks(ksq) | board.KnightAttacks(ksq) | (uint64(1) << uint(ksq))

	bbs := b.Bitboards(side)
	var units int
	units += bits.OnesCount64(bbs.Knights&ring) * attackerWeightInner[board.PieceTypeKnight]
	units += bits.OnesCount64(bbs.Bishops&ring) * attackerWeightInner[board.PieceTypeBishop]
	units += bits.OnesCount64(bbs.Rooks&ring) * attackerWeightInner[board.PieceTypeRook]
	units += bits.OnesCount64(bbs.Queens&ring) * attackerWeightInner[board.PieceTypeQueen]
	return units * units / 2
}

// applyTradeBias nudges the score toward encouraging or avoiding
// simplification: a side ahead on material and above-neutral TradeBias
// (0..200, 100 = neutral) gets a small bonus for having fewer pieces left on
// the board, favoring simplification; below-neutral does the opposite.
func applyTradeBias(b *board.Board, score int, tradeBias int) int {
	offset := tradeBias - 100
	if offset == 0 {
		return score
	}
	pieceCount := bits.OnesCount64(b.AllOccupancy())
	fewerPieces := 32 - pieceCount
	return score + offset*fewerPieces*sign(score)/100
}

// applySacrificeBias softens the material penalty of a materially-losing
// position as SacrificeBias (0..200, 100 = neutral) rises above neutral,
// approximating a willingness to sacrifice for initiative.
func applySacrificeBias(b *board.Board, score int, sacrificeBias int) int {
	offset := sacrificeBias - 100
	if offset <= 0 || score >= 0 {
		return score
	}
	return score + offset*(-score)/400
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

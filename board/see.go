package board

// seeValue gives each piece type its static-exchange weight. Kings are
// given a large value so a king "capture" always terminates the exchange
// in the capturer's favor, matching the standard SEE convention.
var seeValue = [7]int{
	NoPieceType:     0,
	PieceTypePawn:   100,
	PieceTypeKnight: 320,
	PieceTypeBishop: 330,
	PieceTypeRook:   500,
	PieceTypeQueen:  900,
	PieceTypeKing:   20000,
}

// StaticExchangeEval estimates the material swing of playing m and letting
// both sides recapture on m.To() with their cheapest available attacker,
// without making the move on the board. Used to prune or order captures
// that lose material even after best recaptures.
func (b *Board) StaticExchangeEval(m Move) int {
	to := m.To()
	from := m.From()
	us := b.sideToMove
	them := us.Opponent()

	occ := b.AllOccupancy()

	var gain [32]int
	depth := 0

	attackerType := m.MovedPiece().Type()
	var targetType PieceType
	if m.IsEnPassant() {
		targetType = PieceTypePawn
	} else {
		targetType = m.CapturedPiece().Type()
	}

	gain[0] = seeValue[targetType]
	occ &^= bb(from)
	if m.IsEnPassant() {
		capSq := Square(int(to) - 8)
		if us == Black {
			capSq = Square(int(to) + 8)
		}
		occ &^= bb(capSq)
	}

	side := them
	lastAttackerValue := seeValue[attackerType]

	for {
		attackerSq, attackerPT, ok := b.closestAttacker(to, side, occ)
		if !ok {
			break
		}
		depth++
		gain[depth] = lastAttackerValue - gain[depth-1]
		occ &^= bb(Square(attackerSq))
		lastAttackerValue = seeValue[attackerPT]
		side = side.Opponent()
		if depth >= 31 {
			break
		}
	}

	for depth > 0 {
		if -gain[depth] < gain[depth-1] {
			gain[depth-1] = -gain[depth]
		}
		depth--
	}
	return gain[0]
}

// piecesAttackingSquare returns the bitboard of side's pieces currently
// attacking sq given occupancy occ (used with an occupancy that has already
// had earlier exchange participants removed, to expose newly revealed
// sliders behind them).
func (b *Board) piecesAttackingSquare(sq Square, side Color, occ uint64) uint64 {
	s := int(sq)
	var attackers uint64
	if side == White {
		attackers |= pawnAttacks[Black][s] & b.pawns[White] & occ
	} else {
		attackers |= pawnAttacks[White][s] & b.pawns[Black] & occ
	}
	attackers |= knightMoves[s] & b.knights[side] & occ
	attackers |= kingMoves[s] & b.kings[side] & occ
	attackers |= bishopAttacks(s, occ) & (b.bishops[side] | b.queens[side]) & occ
	attackers |= rookAttacks(s, occ) & (b.rooks[side] | b.queens[side]) & occ
	return attackers
}

// closestAttacker finds side's cheapest attacker of sq under occ, the
// standard SEE ordering (pawns first, king last).
func (b *Board) closestAttacker(sq Square, side Color, occ uint64) (int, PieceType, bool) {
	attackers := b.piecesAttackingSquare(sq, side, occ)
	if attackers == 0 {
		return 0, NoPieceType, false
	}
	bestSq := -1
	bestType := PieceTypeKing
	bestValue := seeValue[PieceTypeKing] + 1
	a := attackers
	for a != 0 {
		s := popLSB(&a)
		p := b.pieces[s]
		if seeValue[p.Type()] < bestValue {
			bestValue = seeValue[p.Type()]
			bestType = p.Type()
			bestSq = s
		}
	}
	return bestSq, bestType, true
}

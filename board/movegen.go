package board

// genMode selects which subset of legal moves generateMovesFilteredInto
// produces, letting quiescence search ask for captures only without paying
// for quiet-move generation.
type genMode int

const (
	genAll genMode = iota
	genCaptures
	genQuiets
)

// GenerateLegalMoves returns every legal move for the side to move. Moves
// are generated directly to legal (pins and checks are accounted for during
// generation) rather than pseudo-legal-then-filtered.
func (b *Board) GenerateLegalMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, 48))
}

// GenerateMovesInto appends legal moves to buf and returns it, letting
// callers reuse a buffer across plies (the search hot path) instead of
// allocating a fresh slice per node.
func (b *Board) GenerateMovesInto(buf []Move) []Move {
	return b.generateMovesFilteredInto(buf, genAll)
}

// GenerateCapturesInto appends legal captures and promotions only.
func (b *Board) GenerateCapturesInto(buf []Move) []Move {
	return b.generateMovesFilteredInto(buf, genCaptures)
}

// GenerateQuietsInto appends legal non-capturing moves only.
func (b *Board) GenerateQuietsInto(buf []Move) []Move {
	return b.generateMovesFilteredInto(buf, genQuiets)
}

func (b *Board) generateMovesFilteredInto(buf []Move, mode genMode) []Move {
	us := b.sideToMove
	them := us.Opponent()
	occ := b.AllOccupancy()
	ownOcc := b.occupancy[us]
	enemyOcc := b.occupancy[them]

	inCheck, doubleCheck, checkMask, pinLine := b.computeCheckAndPins(us, occ)

	ksq := b.KingSquare(us)

	if doubleCheck {
		buf = b.genKingMoves(buf, us, ksq, occ, ownOcc, mode)
		return buf
	}

	var targetMask uint64 = ^uint64(0)
	if inCheck {
		targetMask = checkMask
	}

	buf = b.genPawnMoves(buf, us, them, occ, enemyOcc, pinLine, targetMask, mode)
	buf = b.genKnightMoves(buf, us, ownOcc, enemyOcc, pinLine, targetMask, mode)
	buf = b.genSliderMoves(buf, us, PieceTypeBishop, occ, ownOcc, enemyOcc, pinLine, targetMask, mode)
	buf = b.genSliderMoves(buf, us, PieceTypeRook, occ, ownOcc, enemyOcc, pinLine, targetMask, mode)
	buf = b.genSliderMoves(buf, us, PieceTypeQueen, occ, ownOcc, enemyOcc, pinLine, targetMask, mode)
	buf = b.genKingMoves(buf, us, ksq, occ, ownOcc, mode)

	if !inCheck && mode != genCaptures {
		buf = b.genCastling(buf, us, occ)
	}

	return buf
}

func destOK(mode genMode, captured Piece) bool {
	switch mode {
	case genCaptures:
		return captured != NoPiece
	case genQuiets:
		return captured == NoPiece
	default:
		return true
	}
}

func (b *Board) genKnightMoves(buf []Move, us Color, ownOcc, enemyOcc uint64, pinLine [64]uint64, targetMask uint64, mode genMode) []Move {
	knights := b.knights[us]
	for knights != 0 {
		from := popLSB(&knights)
		if pinLine[from] != 0 {
			continue
		}
		moves := knightMoves[from] &^ ownOcc & targetMask
		for moves != 0 {
			to := popLSB(&moves)
			captured := b.pieces[to]
			if !destOK(mode, captured) {
				continue
			}
			buf = append(buf, NewMove(Square(from), Square(to), NewPiece(PieceTypeKnight, us), captured, NoPiece, FlagNone))
		}
	}
	return buf
}

func (b *Board) genSliderMoves(buf []Move, us Color, pt PieceType, occ, ownOcc, enemyOcc uint64, pinLine [64]uint64, targetMask uint64, mode genMode) []Move {
	var pieces uint64
	switch pt {
	case PieceTypeBishop:
		pieces = b.bishops[us]
	case PieceTypeRook:
		pieces = b.rooks[us]
	case PieceTypeQueen:
		pieces = b.queens[us]
	}
	for pieces != 0 {
		from := popLSB(&pieces)
		var attacks uint64
		switch pt {
		case PieceTypeBishop:
			attacks = bishopAttacksMagic(from, occ)
		case PieceTypeRook:
			attacks = rookAttacksMagic(from, occ)
		case PieceTypeQueen:
			attacks = rookAttacksMagic(from, occ) | bishopAttacksMagic(from, occ)
		}
		attacks &^= ownOcc
		attacks &= targetMask
		if pinLine[from] != 0 {
			attacks &= pinLine[from]
		}
		for attacks != 0 {
			to := popLSB(&attacks)
			captured := b.pieces[to]
			if !destOK(mode, captured) {
				continue
			}
			buf = append(buf, NewMove(Square(from), Square(to), NewPiece(pt, us), captured, NoPiece, FlagNone))
		}
	}
	return buf
}

func (b *Board) genKingMoves(buf []Move, us Color, ksq Square, occ, ownOcc uint64, mode genMode) []Move {
	them := us.Opponent()
	moves := kingMoves[int(ksq)] &^ ownOcc
	occWithoutKing := occ &^ bb(ksq)
	for moves != 0 {
		to := popLSB(&moves)
		captured := b.pieces[to]
		if !destOK(mode, captured) {
			continue
		}
		if b.isSquareAttackedWithOcc(to, them, occWithoutKing) {
			continue
		}
		buf = append(buf, NewMove(ksq, Square(to), NewPiece(PieceTypeKing, us), captured, NoPiece, FlagNone))
	}
	return buf
}

func (b *Board) genCastling(buf []Move, us Color, occ uint64) []Move {
	them := us.Opponent()
	if us == White {
		ksq := b.KingSquare(White)
		if ksq != 4 {
			return buf
		}
		if b.castlingRights.Has(WhiteKingside) &&
			occ&(bb(5)|bb(6)) == 0 &&
			b.pieces[7] == WhiteRook &&
			!b.isSquareAttackedWithOcc(4, them, occ) &&
			!b.isSquareAttackedWithOcc(5, them, occ) &&
			!b.isSquareAttackedWithOcc(6, them, occ) {
			buf = append(buf, NewMove(4, 6, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
		if b.castlingRights.Has(WhiteQueenside) &&
			occ&(bb(1)|bb(2)|bb(3)) == 0 &&
			b.pieces[0] == WhiteRook &&
			!b.isSquareAttackedWithOcc(4, them, occ) &&
			!b.isSquareAttackedWithOcc(3, them, occ) &&
			!b.isSquareAttackedWithOcc(2, them, occ) {
			buf = append(buf, NewMove(4, 2, WhiteKing, NoPiece, NoPiece, FlagCastle))
		}
	} else {
		ksq := b.KingSquare(Black)
		if ksq != 60 {
			return buf
		}
		if b.castlingRights.Has(BlackKingside) &&
			occ&(bb(61)|bb(62)) == 0 &&
			b.pieces[63] == BlackRook &&
			!b.isSquareAttackedWithOcc(60, them, occ) &&
			!b.isSquareAttackedWithOcc(61, them, occ) &&
			!b.isSquareAttackedWithOcc(62, them, occ) {
			buf = append(buf, NewMove(60, 62, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
		if b.castlingRights.Has(BlackQueenside) &&
			occ&(bb(57)|bb(58)|bb(59)) == 0 &&
			b.pieces[56] == BlackRook &&
			!b.isSquareAttackedWithOcc(60, them, occ) &&
			!b.isSquareAttackedWithOcc(59, them, occ) &&
			!b.isSquareAttackedWithOcc(58, them, occ) {
			buf = append(buf, NewMove(60, 58, BlackKing, NoPiece, NoPiece, FlagCastle))
		}
	}
	return buf
}

func (b *Board) genPawnMoves(buf []Move, us, them Color, occ, enemyOcc uint64, pinLine [64]uint64, targetMask uint64, mode genMode) []Move {
	pawns := b.pawns[us]
	var pushDir int
	var startRank, promoRank int
	if us == White {
		pushDir = 8
		startRank, promoRank = 1, 7
	} else {
		pushDir = -8
		startRank, promoRank = 6, 0
	}

	for pawns != 0 {
		from := popLSB(&pawns)
		fromSq := Square(from)
		rank := fromSq.Rank()
		pinned := pinLine[from]

		// Quiet pushes are skipped in genCaptures mode, except a push onto
		// the promotion rank, which quiescence search must still see.
		if mode != genCaptures || int(Square(from+pushDir).Rank()) == promoRank {
			to1 := from + pushDir
			if to1 >= 0 && to1 < 64 && b.pieces[to1] == NoPiece {
				if pinned == 0 || pinned&bb(Square(to1)) != 0 {
					if (targetMask&bb(Square(to1))) != 0 && (mode != genCaptures || int(Square(to1).Rank()) == promoRank) {
						buf = b.appendPawnMove(buf, fromSq, Square(to1), us, NoPiece, promoRank, FlagNone)
					}
					if rank == startRank && mode != genCaptures {
						to2 := from + 2*pushDir
						if b.pieces[to2] == NoPiece && (pinned == 0 || pinned&bb(Square(to2)) != 0) && (targetMask&bb(Square(to2))) != 0 {
							buf = append(buf, NewMove(fromSq, Square(to2), NewPiece(PieceTypePawn, us), NoPiece, NoPiece, FlagNone))
						}
					}
				}
			}
		}

		if mode != genQuiets {
			attacks := pawnAttacks[us][from] & enemyOcc
			if pinned != 0 {
				attacks &= pinned
			}
			attacks &= targetMask
			for attacks != 0 {
				to := popLSB(&attacks)
				captured := b.pieces[to]
				buf = b.appendPawnMove(buf, fromSq, Square(to), us, captured, promoRank, FlagNone)
			}

			if b.enPassantSquare != NoSquare {
				epAttacks := pawnAttacks[us][from] & bb(b.enPassantSquare)
				if epAttacks != 0 {
					if b.epIsLegal(fromSq, b.enPassantSquare, us, occ) {
						buf = append(buf, NewMove(fromSq, b.enPassantSquare, NewPiece(PieceTypePawn, us), NewPiece(PieceTypePawn, them), NoPiece, FlagEnPassant))
					}
				}
			}
		}
	}
	return buf
}

func (b *Board) appendPawnMove(buf []Move, from, to Square, us Color, captured Piece, promoRank int, flag uint8) []Move {
	if int(to.Rank()) == promoRank {
		for _, pt := range [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight} {
			buf = append(buf, NewMove(from, to, NewPiece(PieceTypePawn, us), captured, NewPiece(pt, us), flag))
		}
		return buf
	}
	return append(buf, NewMove(from, to, NewPiece(PieceTypePawn, us), captured, NoPiece, flag))
}

// epIsLegal handles the rare case where an en-passant capture exposes the
// king along the vacated rank (the classic pinned-pair-of-pawns case), which
// pinLine alone does not catch since it is the captured pawn's removal, not
// the capturing pawn's own move, that opens the line.
func (b *Board) epIsLegal(from, to Square, us Color, occ uint64) bool {
	them := us.Opponent()
	capturedSq := Square(int(to) - 8)
	if us == Black {
		capturedSq = Square(int(to) + 8)
	}
	newOcc := occ &^ bb(from) &^ bb(capturedSq) | bb(to)
	ksq := b.KingSquare(us)
	if ksq == from {
		ksq = to
	}
	return !b.isSquareAttackedWithOcc(int(ksq), them, newOcc)
}

// GivesCheck reports whether making m would place the opponent's king in
// check, computed without mutating b (castling-rook relocation and
// en-passant capture are both accounted for).
func (b *Board) GivesCheck(m Move) bool {
	us := b.sideToMove
	them := us.Opponent()
	from, to := m.From(), m.To()
	pt := m.MovedPiece().Type()
	if m.IsPromotion() {
		pt = m.PromotionPieceType()
	}

	occ := b.AllOccupancy()
	occ &^= bb(from)
	occ |= bb(to)
	if m.IsEnPassant() {
		capSq := Square(int(to) - 8)
		if us == Black {
			capSq = Square(int(to) + 8)
		}
		occ &^= bb(capSq)
	}
	if m.IsCastle() {
		var rookFrom, rookTo Square
		switch to {
		case 6:
			rookFrom, rookTo = 7, 5
		case 2:
			rookFrom, rookTo = 0, 3
		case 62:
			rookFrom, rookTo = 63, 61
		case 58:
			rookFrom, rookTo = 56, 59
		}
		occ &^= bb(rookFrom)
		occ |= bb(rookTo)
	}

	kingSq := b.KingSquare(them)

	switch pt {
	case PieceTypePawn:
		return pawnAttacks[us][to]&bb(kingSq) != 0
	case PieceTypeKnight:
		return knightMoves[to]&bb(kingSq) != 0
	case PieceTypeKing:
		return false
	case PieceTypeBishop:
		return bishopAttacks(int(to), occ)&bb(kingSq) != 0
	case PieceTypeRook:
		return rookAttacks(int(to), occ)&bb(kingSq) != 0
	case PieceTypeQueen:
		return (rookAttacks(int(to), occ)|bishopAttacks(int(to), occ))&bb(kingSq) != 0
	}

	if m.IsCastle() {
		var rookTo Square
		switch to {
		case 6:
			rookTo = 5
		case 2:
			rookTo = 3
		case 62:
			rookTo = 61
		case 58:
			rookTo = 59
		}
		return rookAttacks(int(rookTo), occ)&bb(kingSq) != 0
	}

	return false
}

// CalculateRookMoveBitboard and CalculateBishopMoveBitboard expose the
// slider attack tables directly, for evaluation mobility scoring.
func CalculateRookMoveBitboard(sq Square, occ uint64) uint64   { return rookAttacksMagic(int(sq), occ) }
func CalculateBishopMoveBitboard(sq Square, occ uint64) uint64 { return bishopAttacksMagic(int(sq), occ) }

// Perft counts leaf nodes at depth, the standard move-generator correctness
// benchmark. Each call allocates its own move buffer.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	buf := make([]Move, 0, 48)
	moves := b.GenerateMovesInto(buf)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.MakeMove(m)
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(m, undo)
	}
	return nodes
}

// PerftDivide reports the node count contributed by each legal move at the
// root, for diffing against a reference perft table move by move.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	moves := b.GenerateLegalMoves()
	for _, m := range moves {
		undo := b.MakeMove(m)
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = b.Perft(depth - 1)
		}
		b.UnmakeMove(m, undo)
		result[m.String()] = n
	}
	return result
}

package board

// UndoInfo captures everything MakeMove mutates beyond the moved/captured
// pieces themselves, so UnmakeMove can restore the position exactly without
// a full board copy.
type UndoInfo struct {
	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfmoveClock   int
	ZobristKey      uint64
	CapturedPiece   Piece
	CapturedSquare  Square
}

// MakeMove applies m to b, returning an UndoInfo that UnmakeMove needs to
// reverse it. m must be legal for b; illegal moves corrupt board state.
func (b *Board) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		CastlingRights:  b.castlingRights,
		EnPassantSquare: b.enPassantSquare,
		HalfmoveClock:   b.halfmoveClock,
		ZobristKey:      b.zobristKey,
		CapturedSquare:  NoSquare,
	}

	us := b.sideToMove
	them := us.Opponent()
	from, to := m.From(), m.To()
	moved := m.MovedPiece()

	b.zobristKey ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}

	b.enPassantSquare = NoSquare

	if m.IsEnPassant() {
		capSq := Square(int(to) - 8)
		if us == Black {
			capSq = Square(int(to) + 8)
		}
		undo.CapturedPiece = b.removePiece(capSq)
		undo.CapturedSquare = capSq
	} else if m.CapturedPiece() != NoPiece {
		undo.CapturedPiece = b.removePiece(to)
		undo.CapturedSquare = to
	}

	b.removePiece(from)
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.addPiece(to, promo)
	} else {
		b.addPiece(to, moved)
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
		rook := b.removePiece(rookFrom)
		b.addPiece(rookTo, rook)
	}

	if moved.Type() == PieceTypePawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		b.enPassantSquare = Square((int(from) + int(to)) / 2)
	}

	b.castlingRights &^= castlingLossMask(from) | castlingLossMask(to)

	// Castling also resets the clock, matching the source engine's
	// irreversible-move bookkeeping rather than the strict FIDE rule.
	if moved.Type() == PieceTypePawn || undo.CapturedPiece != NoPiece || m.IsCastle() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if us == Black {
		b.fullmoveNumber++
	}

	b.zobristKey ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.zobristKey ^= zobristSide

	b.sideToMove = them
	return undo
}

// UnmakeMove reverses m using the UndoInfo MakeMove returned for it. Must be
// called with the same m/undo pair in strict LIFO order relative to MakeMove.
func (b *Board) UnmakeMove(m Move, undo UndoInfo) {
	them := b.sideToMove
	us := them.Opponent()
	from, to := m.From(), m.To()

	if us == Black {
		b.fullmoveNumber--
	}

	b.removePiece(to)
	b.addPiece(from, m.MovedPiece())

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
		rook := b.removePiece(rookTo)
		b.addPiece(rookFrom, rook)
	}

	if undo.CapturedPiece != NoPiece {
		b.addPiece(undo.CapturedSquare, undo.CapturedPiece)
	}

	b.castlingRights = undo.CastlingRights
	b.enPassantSquare = undo.EnPassantSquare
	b.halfmoveClock = undo.HalfmoveClock
	b.zobristKey = undo.ZobristKey
	b.sideToMove = us
}

// MakeNullMove passes the turn without moving a piece, used by null-move
// pruning in search. The en-passant square is cleared, matching the rule
// that a null move forfeits any pending en-passant capture.
func (b *Board) MakeNullMove() UndoInfo {
	undo := UndoInfo{
		CastlingRights:  b.castlingRights,
		EnPassantSquare: b.enPassantSquare,
		HalfmoveClock:   b.halfmoveClock,
		ZobristKey:      b.zobristKey,
		CapturedSquare:  NoSquare,
	}
	if b.enPassantSquare != NoSquare {
		b.zobristKey ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	b.enPassantSquare = NoSquare
	b.zobristKey ^= zobristSide
	b.sideToMove = b.sideToMove.Opponent()
	return undo
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(undo UndoInfo) {
	b.sideToMove = b.sideToMove.Opponent()
	b.castlingRights = undo.CastlingRights
	b.enPassantSquare = undo.EnPassantSquare
	b.halfmoveClock = undo.HalfmoveClock
	b.zobristKey = undo.ZobristKey
}

// castlingLossMask returns the castling rights forfeited when a king or
// rook departs (or is captured on) sq: moving the a1 rook or the e1 king
// loses white queenside rights, and so on for the other three corners.
func castlingLossMask(sq Square) CastlingRights {
	switch sq {
	case 0:
		return WhiteQueenside
	case 4:
		return WhiteKingside | WhiteQueenside
	case 7:
		return WhiteKingside
	case 56:
		return BlackQueenside
	case 60:
		return BlackKingside | BlackQueenside
	case 63:
		return BlackKingside
	default:
		return 0
	}
}

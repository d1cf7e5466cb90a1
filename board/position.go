package board

import "math/bits"

// Board is the central position representation: piece placement as
// per-type/per-color bitboards plus a parallel piece-at-square array,
// side to move, castling rights, en-passant target, clocks, and a Zobrist
// hash kept incrementally in sync by addPiece/removePiece.
type Board struct {
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	occupancy [2]uint64

	pieces [64]Piece

	sideToMove Color

	castlingRights CastlingRights

	enPassantSquare Square

	halfmoveClock  int
	fullmoveNumber int

	zobristKey uint64
}

// Bitboards is a read-only snapshot of one side's per-piece-type boards.
type Bitboards struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, All uint64
}

func (b *Board) SideToMove() Color             { return b.sideToMove }
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }
func (b *Board) EnPassantSquare() Square        { return b.enPassantSquare }
func (b *Board) HalfmoveClock() int             { return b.halfmoveClock }
func (b *Board) FullmoveNumber() int            { return b.fullmoveNumber }
func (b *Board) Hash() uint64                   { return b.zobristKey }
func (b *Board) PieceAt(sq Square) Piece        { return b.pieces[sq] }
func (b *Board) AllOccupancy() uint64           { return b.occupancy[White] | b.occupancy[Black] }
func (b *Board) ColorOccupancy(c Color) uint64  { return b.occupancy[c] }

// Ply is the number of half-moves played since the start of the game,
// derived from fullmove number and side to move (used by opening-phase
// heuristics in evaluation and root selection).
func (b *Board) Ply() int {
	p := (b.fullmoveNumber - 1) * 2
	if b.sideToMove == Black {
		p++
	}
	if p < 0 {
		p = 0
	}
	return p
}

func (b *Board) Bitboards(c Color) Bitboards {
	return Bitboards{
		Pawns:   b.pawns[c],
		Knights: b.knights[c],
		Bishops: b.bishops[c],
		Rooks:   b.rooks[c],
		Queens:  b.queens[c],
		Kings:   b.kings[c],
		All:     b.occupancy[c],
	}
}

func (b *Board) KingSquare(c Color) Square {
	return Square(bits.TrailingZeros64(b.kings[c]))
}

// InCheck reports whether c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	return IsSquareAttacked(b, ksq, c.Opponent())
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(b.GenerateMovesInto(buf)) > 0
}

func (b *Board) InCheckmate() bool { return b.InCheck(b.sideToMove) && !b.HasLegalMoves() }
func (b *Board) InStalemate() bool { return !b.InCheck(b.sideToMove) && !b.HasLegalMoves() }

// IsDrawBy50 reports the fifty-move (100 half-move) rule.
func (b *Board) IsDrawBy50() bool { return b.halfmoveClock >= 100 }

func bb(sq Square) uint64 { return uint64(1) << uint(sq) }

func popLSB(mask *uint64) int {
	x := *mask & -*mask
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}

// addPiece places a piece on an empty square, updating bitboards, occupancy,
// and the Zobrist key incrementally.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	c := p.Color()
	b.pieces[sq] = p
	b.occupancy[c] |= bb(sq)
	switch p.Type() {
	case PieceTypePawn:
		b.pawns[c] |= bb(sq)
	case PieceTypeKnight:
		b.knights[c] |= bb(sq)
	case PieceTypeBishop:
		b.bishops[c] |= bb(sq)
	case PieceTypeRook:
		b.rooks[c] |= bb(sq)
	case PieceTypeQueen:
		b.queens[c] |= bb(sq)
	case PieceTypeKing:
		b.kings[c] |= bb(sq)
	}
	b.zobristKey ^= zobristPieceKey(p, sq)
}

// removePiece clears a square, returning whatever piece was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	mask := ^bb(sq)
	b.pieces[sq] = NoPiece
	b.occupancy[c] &= mask
	switch p.Type() {
	case PieceTypePawn:
		b.pawns[c] &= mask
	case PieceTypeKnight:
		b.knights[c] &= mask
	case PieceTypeBishop:
		b.bishops[c] &= mask
	case PieceTypeRook:
		b.rooks[c] &= mask
	case PieceTypeQueen:
		b.queens[c] &= mask
	case PieceTypeKing:
		b.kings[c] &= mask
	}
	b.zobristKey ^= zobristPieceKey(p, sq)
	return p
}

func (b *Board) setPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// SetPiece places p on sq, replacing whatever was there (including clearing
// the square when p is NoPiece). Exported for test setup that builds custom
// positions square by square rather than through FEN.
func (b *Board) SetPiece(sq Square, p Piece) { b.setPiece(sq, p) }

// Clone returns an independent copy of b; every field is a plain value (no
// shared pointers or slices), so a shallow copy is a full deep copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Validate cross-checks the pieces array, the per-type bitboards, the
// occupancy boards, and the Zobrist key for internal consistency. Intended
// for tests and debug assertions, not the hot path.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var pawns, knights, bishops, rooks, queens, kings [2]uint64
	for sq := Square(0); sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		c := p.Color()
		occ[c] |= bb(sq)
		switch p.Type() {
		case PieceTypePawn:
			pawns[c] |= bb(sq)
		case PieceTypeKnight:
			knights[c] |= bb(sq)
		case PieceTypeBishop:
			bishops[c] |= bb(sq)
		case PieceTypeRook:
			rooks[c] |= bb(sq)
		case PieceTypeQueen:
			queens[c] |= bb(sq)
		case PieceTypeKing:
			kings[c] |= bb(sq)
		}
	}
	if occ != b.occupancy || pawns != b.pawns || knights != b.knights ||
		bishops != b.bishops || rooks != b.rooks || queens != b.queens || kings != b.kings {
		return false
	}
	return b.zobristKey == b.ComputeZobrist()
}

// IsDrawByRepetition reports threefold repetition given a history of prior
// Zobrist keys (not including the current position). It is a convenience
// wrapper; the search package's repetition stack has its own, search-aware
// version that distinguishes persistent game history from in-tree
// repetitions (see search.RepetitionStack).
func (b *Board) IsDrawByRepetition(history []uint64) bool {
	target := b.zobristKey
	matches := 0
	for _, h := range history {
		if h == target {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

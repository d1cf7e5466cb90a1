package board

import "math/bits"

// Precomputed attack masks for knights and kings, and pawn attack masks
// per color, all built once in init().
var (
	knightMoves [64]uint64
	kingMoves   [64]uint64
	pawnAttacks [2][64]uint64
)

// rookRays[sq][d] / bishopRays[sq][d] hold the ray of squares (excluding
// the origin) in direction d, used both for attack generation and for
// computeCheckAndPins' pin-line detection. Rook directions: 0=N,1=S,2=E,3=W.
// Bishop directions: 0=NE,1=NW,2=SE,3=SW.
var (
	rookRays   [64][4]uint64
	bishopRays [64][4]uint64
)

// rookMask/bishopMask exclude the board edge (the classic magic-bitboard
// occupancy mask); rookAttTable/bishopAttTable are indexed by a software
// pext of the actual occupancy against that mask.
var (
	rookMask      [64]uint64
	bishopMask    [64]uint64
	rookAttTable   [64][]uint64
	bishopAttTable [64][]uint64
)

func init() {
	initAttackTables()
	initRays()
	initSliderTables()
}

func initAttackTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		var kn, ki uint64
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kn |= uint64(1) << uint(rf*8+ff)
			}
		}
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				ki |= uint64(1) << uint(rf*8+ff)
			}
		}
		knightMoves[sq] = kn
		kingMoves[sq] = ki

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << uint((rank+1)*8+file+1)
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file-1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << uint((rank-1)*8+file+1)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= uint64(1) << uint(r*8+file)
		}
		rookRays[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= uint64(1) << uint(r*8+file)
		}
		rookRays[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= uint64(1) << uint(rank*8+f)
		}
		rookRays[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= uint64(1) << uint(rank*8+f)
		}
		rookRays[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= uint64(1) << uint(r*8+f)
		}
		bishopRays[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= uint64(1) << uint(r*8+f)
		}
		bishopRays[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= uint64(1) << uint(r*8+f)
		}
		bishopRays[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= uint64(1) << uint(r*8+f)
		}
		bishopRays[sq][3] = ray
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var rm uint64
		for r := rank + 1; r < 7; r++ {
			rm |= uint64(1) << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= uint64(1) << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= uint64(1) << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= uint64(1) << uint(rank*8+f)
		}
		rookMask[sq] = rm

		var bm uint64
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= uint64(1) << uint(r*8+f)
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= uint64(1) << uint(r*8+f)
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= uint64(1) << uint(r*8+f)
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= uint64(1) << uint(r*8+f)
		}
		bishopMask[sq] = bm

		rBits := bits.OnesCount64(rm)
		bBits := bits.OnesCount64(bm)
		rookAttTable[sq] = make([]uint64, 1<<rBits)
		bishopAttTable[sq] = make([]uint64, 1<<bBits)
		for idx := 0; idx < (1 << rBits); idx++ {
			rookAttTable[sq][idx] = rookAttacks(sq, pdep(uint64(idx), rm))
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			bishopAttTable[sq][idx] = bishopAttacks(sq, pdep(uint64(idx), bm))
		}
	}
}

// pext extracts the bits of x selected by mask, packed into the low bits.
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>bit)&1 != 0 {
			res |= uint64(1) << idx
		}
		idx++
	}
	return res
}

// pdep deposits the low bits of x into the positions selected by mask.
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m & -m))
		if (x>>idx)&1 != 0 {
			res |= uint64(1) << bit
		}
		idx++
	}
	return res
}

func rookAttacksMagic(sq int, occ uint64) uint64 {
	return rookAttTable[sq][pext(occ, rookMask[sq])]
}

func bishopAttacksMagic(sq int, occ uint64) uint64 {
	return bishopAttTable[sq][pext(occ, bishopMask[sq])]
}

// rookAttacks computes rook attacks by ray-scan; it seeds the magic-style
// lookup tables at init time and is also called directly by the check/pin,
// gives-check and attacker-set code.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first int
		if d == 0 || d == 2 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		attacks |= ray &^ rookRays[first][d]
	}
	return attacks
}

// bishopAttacks computes bishop attacks by ray-scan; seeds the lookup tables.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		blockers := ray & occ
		if blockers == 0 {
			attacks |= ray
			continue
		}
		var first int
		if d == 0 || d == 1 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		attacks |= ray &^ bishopRays[first][d]
	}
	return attacks
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	return b.isSquareAttackedWithOcc(int(sq), by, b.AllOccupancy())
}

// KnightAttacks returns the set of squares a knight on sq attacks, exposed
// for the eval package's mobility and king-safety terms.
func KnightAttacks(sq Square) uint64 {
	return knightMoves[sq]
}

// KingAttacks returns the set of squares a king on sq attacks.
func KingAttacks(sq Square) uint64 {
	return kingMoves[sq]
}

func (b *Board) isSquareAttackedWithOcc(s int, by Color, occ uint64) bool {
	if by == White {
		if pawnAttacks[Black][s]&b.pawns[White] != 0 {
			return true
		}
	} else {
		if pawnAttacks[White][s]&b.pawns[Black] != 0 {
			return true
		}
	}
	if knightMoves[s]&b.knights[by] != 0 {
		return true
	}
	if kingMoves[s]&b.kings[by] != 0 {
		return true
	}
	rq := b.rooks[by] | b.queens[by]
	bq := b.bishops[by] | b.queens[by]

	for d := 0; d < 4; d++ {
		blockers := rookRays[s][d] & occ
		if blockers == 0 {
			continue
		}
		var first int
		if d == 0 || d == 2 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		if (uint64(1)<<uint(first))&rq != 0 {
			return true
		}
	}
	for d := 0; d < 4; d++ {
		blockers := bishopRays[s][d] & occ
		if blockers == 0 {
			continue
		}
		var first int
		if d == 0 || d == 1 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		if (uint64(1)<<uint(first))&bq != 0 {
			return true
		}
	}
	return false
}

// computeCheckAndPins computes the checking pieces and pin lines for side's
// king in one pass, the way the legal move generator consumes them directly
// rather than generating pseudo-legal moves and filtering afterward.
func (b *Board) computeCheckAndPins(side Color, occ uint64) (inCheck, doubleCheck bool, checkMask uint64, pinLine [64]uint64) {
	us := side
	them := side.Opponent()

	kingBB := b.kings[us]
	if kingBB == 0 {
		return false, false, 0, pinLine
	}
	ksq := bits.TrailingZeros64(kingBB)

	var checkers uint64
	if side == White {
		checkers |= pawnAttacks[White][ksq] & b.pawns[them]
	} else {
		checkers |= pawnAttacks[Black][ksq] & b.pawns[them]
	}
	checkers |= knightMoves[ksq] & b.knights[them]
	checkers |= bishopAttacks(ksq, occ) & (b.bishops[them] | b.queens[them])
	checkers |= rookAttacks(ksq, occ) & (b.rooks[them] | b.queens[them])

	inCheck = checkers != 0
	doubleCheck = inCheck && (checkers&(checkers-1)) != 0

	if inCheck && !doubleCheck {
		c := bits.TrailingZeros64(checkers)
		cp := b.pieces[c]
		cbb := uint64(1) << uint(c)

		switch cp.Type() {
		case PieceTypeRook:
			for d := 0; d < 4; d++ {
				if rookRays[ksq][d]&cbb != 0 {
					checkMask = rookRays[ksq][d] &^ rookRays[c][d]
					break
				}
			}
		case PieceTypeBishop:
			for d := 0; d < 4; d++ {
				if bishopRays[ksq][d]&cbb != 0 {
					checkMask = bishopRays[ksq][d] &^ bishopRays[c][d]
					break
				}
			}
		case PieceTypeQueen:
			for d := 0; d < 4; d++ {
				if rookRays[ksq][d]&cbb != 0 {
					checkMask = rookRays[ksq][d] &^ rookRays[c][d]
					break
				}
				if bishopRays[ksq][d]&cbb != 0 {
					checkMask = bishopRays[ksq][d] &^ bishopRays[c][d]
					break
				}
			}
		default:
			checkMask = cbb
		}
	}

	for d := 0; d < 4; d++ {
		ray := rookRays[ksq][d]
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		var first int
		if d == 0 || d == 2 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		firstBB := uint64(1) << uint(first)
		if firstBB&b.occupancy[us] == 0 {
			continue
		}
		beyond := rookRays[first][d] & occ
		if beyond == 0 {
			continue
		}
		var next int
		if d == 0 || d == 2 {
			next = bits.TrailingZeros64(beyond)
		} else {
			next = 63 - bits.LeadingZeros64(beyond)
		}
		p := b.pieces[next]
		if (p.Type() == PieceTypeRook || p.Type() == PieceTypeQueen) && p.Color() != side {
			pinLine[first] = rookRays[ksq][d] &^ rookRays[next][d]
		}
	}

	for d := 0; d < 4; d++ {
		ray := bishopRays[ksq][d]
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		var first int
		if d == 0 || d == 1 {
			first = bits.TrailingZeros64(blockers)
		} else {
			first = 63 - bits.LeadingZeros64(blockers)
		}
		firstBB := uint64(1) << uint(first)
		if firstBB&b.occupancy[us] == 0 {
			continue
		}
		beyond := bishopRays[first][d] & occ
		if beyond == 0 {
			continue
		}
		var next int
		if d == 0 || d == 1 {
			next = bits.TrailingZeros64(beyond)
		} else {
			next = 63 - bits.LeadingZeros64(beyond)
		}
		p := b.pieces[next]
		if (p.Type() == PieceTypeBishop || p.Type() == PieceTypeQueen) && p.Color() != side {
			pinLine[first] = bishopRays[ksq][d] &^ bishopRays[next][d]
		}
	}

	return inCheck, doubleCheck, checkMask, pinLine
}

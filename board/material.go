package board

import "math/bits"

// InsufficientMaterial reports draws by insufficient material: king vs king,
// king+knight vs king, king+bishop vs king, and king+bishop vs king+bishop
// with both bishops on the same color complex (opposite-colored bishops can
// still mate with help, so that case is excluded).
func (b *Board) InsufficientMaterial() bool {
	if b.pawns[White] != 0 || b.pawns[Black] != 0 {
		return false
	}
	if b.rooks[White] != 0 || b.rooks[Black] != 0 || b.queens[White] != 0 || b.queens[Black] != 0 {
		return false
	}

	wn, bn := bits.OnesCount64(b.knights[White]), bits.OnesCount64(b.knights[Black])
	wbish, bbish := bits.OnesCount64(b.bishops[White]), bits.OnesCount64(b.bishops[Black])

	wMinor := wn + wbish
	bMinor := bn + bbish

	if wMinor == 0 && bMinor == 0 {
		return true
	}
	if wMinor == 1 && bMinor == 0 {
		return true
	}
	if bMinor == 1 && wMinor == 0 {
		return true
	}
	if wn == 0 && bn == 0 && wbish == 1 && bbish == 1 {
		wsq := bits.TrailingZeros64(b.bishops[White])
		bsq := bits.TrailingZeros64(b.bishops[Black])
		return squareColor(wsq) == squareColor(bsq)
	}
	return false
}

// squareColor returns 0 for a dark square, 1 for a light square, the
// light/dark complex test used by the same-color-bishops draw case.
func squareColor(sq int) int {
	file, rank := sq%8, sq/8
	return (file + rank) % 2
}

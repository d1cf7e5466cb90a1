package board

import "math/rand"

// Zobrist key tables, one entry per (piece, square), per castling-rights
// state, per en-passant file, plus a side-to-move key. Seeded fixed so
// that hashes (and therefore TT contents across identical runs) are
// reproducible, matching the teacher's own convention.
var (
	zobristPiece    [16][64]uint64
	zobristCastle   [16]uint64
	zobristEnPassant [8]uint64
	zobristSide     uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func zobristPieceKey(p Piece, sq Square) uint64 {
	return zobristPiece[p][sq]
}

// ComputeZobrist recomputes the hash from scratch; used by Validate and by
// FEN loading, and as the ground truth that incremental updates must match.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zobristPieceKey(p, sq)
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}

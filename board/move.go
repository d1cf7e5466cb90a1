package board

import "strings"

// Move packs a chess move into a 32-bit value: 6 bits from, 6 bits to,
// 4 bits moved piece, 4 bits captured piece, 4 bits promotion piece,
// 2 bits flag. Carrying the moved/captured piece inline is a performance
// cache; From/To/Flag/PromotionPieceType alone are always sufficient to
// decode a move's meaning.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24
)

// Move flags. Promotion is indicated by a non-zero promotion piece field,
// not by a dedicated flag bit.
const (
	FlagNone      uint8 = 0
	FlagCastle    uint8 = 1
	FlagEnPassant uint8 = 2
)

// NoMove is the reserved zero value meaning "no move".
const NoMove Move = 0

// NewMove constructs a Move from its components.
func NewMove(from, to Square, piece, captured, promotion Piece, flag uint8) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift) |
		(uint32(flag&0x3) << moveFlagShift)
	return Move(m)
}

func (m Move) From() Square            { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square              { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) MovedPiece() Piece       { return Piece((uint32(m) >> movePieceShift) & 0xF) }
func (m Move) CapturedPiece() Piece    { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }
func (m Move) PromotionPiece() Piece   { return Piece((uint32(m) >> movePromoteShift) & 0xF) }
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }
func (m Move) Flags() uint8            { return uint8((uint32(m) >> moveFlagShift) & 0x3) }
func (m Move) IsCastle() bool          { return m.Flags() == FlagCastle }
func (m Move) IsEnPassant() bool       { return m.Flags() == FlagEnPassant }
func (m Move) IsCapture() bool         { return m.CapturedPiece() != NoPiece || m.IsEnPassant() }
func (m Move) IsPromotion() bool       { return m.PromotionPiece() != NoPiece }

// String renders the move as a UCI move string, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if promo := m.PromotionPieceType(); promo != NoPieceType {
		s += string(promotionLetter(promo))
	}
	return s
}

func promotionLetter(pt PieceType) byte {
	switch pt {
	case PieceTypeKnight:
		return 'n'
	case PieceTypeBishop:
		return 'b'
	case PieceTypeRook:
		return 'r'
	case PieceTypeQueen:
		return 'q'
	}
	return '?'
}

func promotionFromLetter(c byte) PieceType {
	switch c {
	case 'n':
		return PieceTypeKnight
	case 'b':
		return PieceTypeBishop
	case 'r':
		return PieceTypeRook
	case 'q':
		return PieceTypeQueen
	}
	return NoPieceType
}

// ParseUCIMove parses a UCI move string such as "e2e4" or "e7e8q" against
// the legal moves of b, returning the matching Move. An unrecognized or
// illegal string is reported as an error; callers on untrusted-input paths
// (apply_uci_move) must treat this as "leave the position unchanged", per
// the error-handling contract.
func ParseUCIMove(b *Board, s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "0000" {
		return NoMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return NoMove, errInvalidSquare(s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	var promo PieceType
	if len(s) == 5 {
		promo = promotionFromLetter(s[4])
	}
	for _, mv := range b.GenerateLegalMoves() {
		if mv.From() == from && mv.To() == to && mv.PromotionPieceType() == promo {
			return mv, nil
		}
	}
	return NoMove, errInvalidSquare(s)
}

package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN for the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch byte) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// ParseFEN parses a FEN string, rejecting input whose board field does not
// cover 64 squares or whose side-to-move token is not w/b, per the malformed
// FEN error-handling contract. It never panics.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errFEN(fen, "not enough fields")
	}

	b := &Board{enPassantSquare: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errFEN(fen, "incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errFEN(fen, "empty rank description")
		}
		rankIndex := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errFEN(fen, "unrecognized piece character")
			}
			if file >= 8 {
				return nil, errFEN(fen, "too many squares in rank")
			}
			sq := squareOf(file, rankIndex)
			b.addPiece(sq, piece)
			file++
		}
		if file != 8 {
			return nil, errFEN(fen, "rank does not have 8 columns")
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errFEN(fen, "side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castlingRights |= WhiteKingside
			case 'Q':
				b.castlingRights |= WhiteQueenside
			case 'k':
				b.castlingRights |= BlackKingside
			case 'q':
				b.castlingRights |= BlackQueenside
			default:
				return nil, errFEN(fen, "invalid castling rights character")
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errFEN(fen, "invalid en passant square")
		}
		b.enPassantSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errFEN(fen, "halfmove clock is not a number")
		}
		b.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errFEN(fen, "fullmove number is not a number")
		}
		b.fullmoveNumber = n
	} else {
		b.fullmoveNumber = 1
	}

	// addPiece above already folded piece-square keys into zobristKey, but
	// the side/castling/en-passant keys have not been folded in; a full
	// recompute makes the hash exact.
	b.zobristKey = b.ComputeZobrist()
	return b, nil
}

// ToFEN renders the board as a FEN string. parse_fen -> format_fen is the
// identity on valid FENs (modulo whitespace).
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := squareOf(file, rank)
			p := b.pieces[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights.Has(WhiteKingside) {
			sb.WriteByte('K')
		}
		if b.castlingRights.Has(WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if b.castlingRights.Has(BlackKingside) {
			sb.WriteByte('k')
		}
		if b.castlingRights.Has(BlackQueenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

// MustParseFEN parses fen, panicking on failure. Reserved for tests and
// internal call sites that pass already-validated constants (e.g.
// StartFEN); never used on a path that accepts untrusted input.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

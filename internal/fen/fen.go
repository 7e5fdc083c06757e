// Package fen converts positions to and from Forsyth-Edwards Notation.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/discochess/arbiter/chess"
)

// ErrInvalidFEN indicates the FEN string is malformed.
var ErrInvalidFEN = errors.New("fen: invalid notation")

// Encode renders the position as a six-field FEN string.
func Encode(pos chess.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.Board.At(chess.Sq(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingField(pos.Castling))

	sb.WriteByte(' ')
	if target, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)
	return sb.String()
}

func castlingField(cr chess.CastlingRights) string {
	var sb strings.Builder
	if cr.Can(chess.White, true) {
		sb.WriteByte('K')
	}
	if cr.Can(chess.White, false) {
		sb.WriteByte('Q')
	}
	if cr.Can(chess.Black, true) {
		sb.WriteByte('k')
	}
	if cr.Can(chess.Black, false) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Parse builds a position from FEN text. The halfmove clock and fullmove
// number fields are optional and default to 0 and 1.
func Parse(text string) (chess.Position, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 || len(fields) > 6 {
		return chess.Position{}, fmt.Errorf("%w: %d fields", ErrInvalidFEN, len(fields))
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return chess.Position{}, err
	}

	pos := chess.Position{Board: board, FullmoveNumber: 1}

	switch fields[1] {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return chess.Position{}, fmt.Errorf("%w: side %q", ErrInvalidFEN, fields[1])
	}

	pos.Castling, err = parseCastling(fields[2])
	if err != nil {
		return chess.Position{}, err
	}

	if fields[3] != "-" {
		target, err := chess.ParseSquare(fields[3])
		if err != nil {
			return chess.Position{}, fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		pos.EnPassant = target
		pos.HasEnPassant = true
	}

	if len(fields) > 4 {
		if pos.HalfmoveClock, err = strconv.Atoi(fields[4]); err != nil || pos.HalfmoveClock < 0 {
			return chess.Position{}, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
	}
	if len(fields) > 5 {
		if pos.FullmoveNumber, err = strconv.Atoi(fields[5]); err != nil || pos.FullmoveNumber < 1 {
			return chess.Position{}, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
	}

	pos.KeyHistory = []uint64{pos.Key()}
	return pos, nil
}

func parsePlacement(placement string) (chess.Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return chess.Board{}, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}

	board := chess.EmptyBoard()
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceFromLetter(c)
			if !ok || file > 7 {
				return chess.Board{}, fmt.Errorf("%w: rank %q", ErrInvalidFEN, row)
			}
			board = board.Put(chess.Sq(file, rank), piece)
			file++
		}
		if file != 8 {
			return chess.Board{}, fmt.Errorf("%w: rank %q covers %d files", ErrInvalidFEN, row, file)
		}
	}
	return board, nil
}

func pieceFromLetter(c byte) (chess.Piece, bool) {
	color := chess.White
	if c >= 'a' && c <= 'z' {
		color = chess.Black
		c -= 'a' - 'A'
	}
	kind, ok := chess.KindFromSAN(c)
	if !ok {
		if c != 'P' {
			return chess.NoPiece, false
		}
		kind = chess.Pawn
	}
	return chess.Piece{Kind: kind, Color: color}, true
}

func parseCastling(field string) (chess.CastlingRights, error) {
	var cr chess.CastlingRights
	if field == "-" {
		return cr, nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			cr.WhiteKingside = true
		case 'Q':
			cr.WhiteQueenside = true
		case 'k':
			cr.BlackKingside = true
		case 'q':
			cr.BlackQueenside = true
		default:
			return cr, fmt.Errorf("%w: castling %q", ErrInvalidFEN, field)
		}
	}
	return cr, nil
}

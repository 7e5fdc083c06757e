package chess

import "strings"

// Board holds the piece placement for all 64 squares. It is a value type:
// Put and Clear return modified copies, leaving the receiver untouched.
type Board struct {
	squares [64]Piece
}

// Placement pairs an occupied square with its piece.
type Placement struct {
	Square Square
	Piece  Piece
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() Board {
	return Board{}
}

// StartingBoard returns the standard initial placement.
func StartingBoard() Board {
	var b Board
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.squares[Sq(file, 0).Index()] = Piece{Kind: back[file], Color: White}
		b.squares[Sq(file, 1).Index()] = Piece{Kind: Pawn, Color: White}
		b.squares[Sq(file, 6).Index()] = Piece{Kind: Pawn, Color: Black}
		b.squares[Sq(file, 7).Index()] = Piece{Kind: back[file], Color: Black}
	}
	return b
}

// At returns the piece on the square, or NoPiece if empty.
func (b Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq.Index()]
}

// Put returns a copy of the board with p placed on sq.
func (b Board) Put(sq Square, p Piece) Board {
	b.squares[sq.Index()] = p
	return b
}

// Clear returns a copy of the board with sq emptied.
func (b Board) Clear(sq Square) Board {
	b.squares[sq.Index()] = NoPiece
	return b
}

// Find returns the squares holding the given kind and color, in index order.
func (b Board) Find(kind PieceKind, color Color) []Square {
	var out []Square
	for i, p := range b.squares {
		if p.Kind == kind && p.Color == color {
			out = append(out, Square{File: i % 8, Rank: i / 8})
		}
	}
	return out
}

// Pieces returns all placements of the given color, in index order.
func (b Board) Pieces(color Color) []Placement {
	var out []Placement
	for i, p := range b.squares {
		if !p.IsEmpty() && p.Color == color {
			out = append(out, Placement{
				Square: Square{File: i % 8, Rank: i / 8},
				Piece:  p,
			})
		}
	}
	return out
}

// King returns the square of the given color's king. The second return is
// false only for malformed positions with no such king.
func (b Board) King(color Color) (Square, bool) {
	for i, p := range b.squares {
		if p.Kind == King && p.Color == color {
			return Square{File: i % 8, Rank: i / 8}, true
		}
	}
	return Square{}, false
}

// String renders an ASCII diagram from White's point of view.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.At(Sq(file, rank)).Letter())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

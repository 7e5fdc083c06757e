package chess

import "strings"

// Move describes a single move relative to the position it was generated
// from. The flags record how the move must be applied; they carry no meaning
// against any other position.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind // NoKind unless a pawn reaches the last rank

	Capture         bool
	EnPassant       bool
	CastleKingside  bool
	CastleQueenside bool
}

// IsCastle reports whether the move is a castling move on either wing.
func (m Move) IsCastle() bool {
	return m.CastleKingside || m.CastleQueenside
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(m.Promotion.SANLetter())
	}
	return s
}

package chess

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is the closed set of chess piece types.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{
	NoKind: "none",
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

// String returns the lowercase English name of the kind.
func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "none"
}

var sanLetters = [...]string{
	NoKind: "",
	Pawn:   "",
	Knight: "N",
	Bishop: "B",
	Rook:   "R",
	Queen:  "Q",
	King:   "K",
}

// SANLetter returns the SAN letter for the kind. Pawns have no letter.
func (k PieceKind) SANLetter() string {
	if int(k) < len(sanLetters) {
		return sanLetters[k]
	}
	return ""
}

// KindFromSAN maps a SAN piece letter (K, Q, R, B, N) to its kind.
func KindFromSAN(letter byte) (PieceKind, bool) {
	switch letter {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	}
	return NoKind, false
}

// Piece is a kind plus a color. The zero value is the empty piece.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// NoPiece is the empty piece occupying no square.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

var whiteGlyphs = [...]string{
	Pawn: "♙", Knight: "♘", Bishop: "♗",
	Rook: "♖", Queen: "♕", King: "♔",
}

var blackGlyphs = [...]string{
	Pawn: "♟", Knight: "♞", Bishop: "♝",
	Rook: "♜", Queen: "♛", King: "♚",
}

// Glyph returns the Unicode chess symbol for the piece, or a space for the
// empty piece.
func (p Piece) Glyph() string {
	if p.IsEmpty() {
		return " "
	}
	if p.Color == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

var asciiLetters = [...]byte{
	Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
}

// Letter returns the ASCII piece letter: uppercase for white, lowercase for
// black, '.' for the empty piece.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := asciiLetters[p.Kind]
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

// Package chess defines the core value types for a chess game: squares,
// pieces, boards, moves, castling rights and immutable position snapshots.
//
// Every type in this package is a pure value. Mutating operations return a
// new value and never modify the receiver, so snapshots can be shared freely
// across history chains and goroutines.
package chess

import "fmt"

// Square identifies a board square by zero-based file and rank.
// File 0 is the a-file, rank 0 is rank 1.
type Square struct {
	File int
	Rank int
}

// Sq returns the square at the given zero-based file and rank.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic notation like "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("chess: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := Square{File: file, Rank: rank}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("chess: invalid square %q", s)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for known-good literals. It panics on error.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Index returns the square's index in 0..63, rank-major from a1.
func (s Square) Index() int {
	return s.Rank*8 + s.File
}

// IsLight reports whether the square is light-colored.
// a1 is dark, h1 is light.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

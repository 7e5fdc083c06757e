package chess

import (
	"strings"
	"testing"
)

func TestStartingBoard(t *testing.T) {
	b := StartingBoard()

	tests := []struct {
		sq   string
		want Piece
	}{
		{sq: "a1", want: Piece{Kind: Rook, Color: White}},
		{sq: "e1", want: Piece{Kind: King, Color: White}},
		{sq: "d8", want: Piece{Kind: Queen, Color: Black}},
		{sq: "g8", want: Piece{Kind: Knight, Color: Black}},
		{sq: "e2", want: Piece{Kind: Pawn, Color: White}},
		{sq: "h7", want: Piece{Kind: Pawn, Color: Black}},
		{sq: "e4", want: NoPiece},
	}
	for _, tt := range tests {
		if got := b.At(MustParseSquare(tt.sq)); got != tt.want {
			t.Errorf("At(%s) = %v, want %v", tt.sq, got, tt.want)
		}
	}
}

func TestBoard_PutClear_ValueSemantics(t *testing.T) {
	b := EmptyBoard()
	e4 := MustParseSquare("e4")

	b2 := b.Put(e4, Piece{Kind: Queen, Color: White})
	if !b.At(e4).IsEmpty() {
		t.Error("Put mutated the receiver")
	}
	if b2.At(e4).Kind != Queen {
		t.Errorf("At(e4) after Put = %v, want queen", b2.At(e4))
	}

	b3 := b2.Clear(e4)
	if b2.At(e4).Kind != Queen {
		t.Error("Clear mutated the receiver")
	}
	if !b3.At(e4).IsEmpty() {
		t.Errorf("At(e4) after Clear = %v, want empty", b3.At(e4))
	}
}

func TestBoard_Find(t *testing.T) {
	b := StartingBoard()

	rooks := b.Find(Rook, White)
	if len(rooks) != 2 || rooks[0] != MustParseSquare("a1") || rooks[1] != MustParseSquare("h1") {
		t.Errorf("Find(rook, white) = %v, want [a1 h1]", rooks)
	}
	if got := b.Find(Queen, Black); len(got) != 1 || got[0] != MustParseSquare("d8") {
		t.Errorf("Find(queen, black) = %v, want [d8]", got)
	}
}

func TestBoard_King(t *testing.T) {
	sq, ok := StartingBoard().King(Black)
	if !ok || sq != MustParseSquare("e8") {
		t.Errorf("King(black) = %v, %v, want e8, true", sq, ok)
	}
	if _, ok := EmptyBoard().King(White); ok {
		t.Error("King on empty board reported found")
	}
}

func TestBoard_Pieces(t *testing.T) {
	b := StartingBoard()
	if got := len(b.Pieces(White)); got != 16 {
		t.Errorf("len(Pieces(white)) = %d, want 16", got)
	}
	if got := len(EmptyBoard().Pieces(Black)); got != 0 {
		t.Errorf("len(Pieces) on empty board = %d, want 0", got)
	}
}

func TestBoard_String(t *testing.T) {
	got := StartingBoard().String()
	wantLines := []string{
		"8 r n b q k b n r",
		"2 P P P P P P P P",
		"  a b c d e f g h",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("String() missing line %q:\n%s", line, got)
		}
	}
}

package chess

import "testing"

func TestPosition_Key_Deterministic(t *testing.T) {
	a := StartingPosition()
	b := StartingPosition()
	if a.Key() != b.Key() {
		t.Error("equal positions have different keys")
	}
}

func TestPosition_Key_Components(t *testing.T) {
	base := StartingPosition()

	turn := base
	turn.Turn = Black
	if turn.Key() == base.Key() {
		t.Error("side to move not part of the key")
	}

	castling := base
	castling.Castling = base.Castling.Revoke(White, true)
	if castling.Key() == base.Key() {
		t.Error("castling rights not part of the key")
	}

	ep := base
	ep.EnPassant = MustParseSquare("e3")
	ep.HasEnPassant = true
	if ep.Key() == base.Key() {
		t.Error("en passant file not part of the key")
	}

	board := base
	board.Board = base.Board.Clear(MustParseSquare("e2")).
		Put(MustParseSquare("e4"), Piece{Kind: Pawn, Color: White})
	if board.Key() == base.Key() {
		t.Error("placement not part of the key")
	}
}

func TestPosition_Key_IgnoresClocks(t *testing.T) {
	a := StartingPosition()
	b := a
	b.HalfmoveClock = 42
	b.FullmoveNumber = 30
	if a.Key() != b.Key() {
		t.Error("move clocks leaked into the key")
	}
}

func TestPosition_WithMoveRecorded_CopiesHistory(t *testing.T) {
	p := StartingPosition()
	p1 := p.WithMoveRecorded("e4")
	p2 := p1.WithMoveRecorded("e5")
	p3 := p1.WithMoveRecorded("c5")

	if p.Ply() != 0 || p1.Ply() != 1 || p2.Ply() != 2 {
		t.Fatalf("plies = %d, %d, %d, want 0, 1, 2", p.Ply(), p1.Ply(), p2.Ply())
	}
	// Branching off p1 twice must not cross-contaminate histories.
	if p2.MoveHistory[1] != "e5" || p3.MoveHistory[1] != "c5" {
		t.Errorf("histories = %v and %v, want independent branches",
			p2.MoveHistory, p3.MoveHistory)
	}
}

func TestPosition_RepetitionCount(t *testing.T) {
	p := StartingPosition()
	if got := p.RepetitionCount(); got != 1 {
		t.Errorf("RepetitionCount at start = %d, want 1", got)
	}

	p.KeyHistory = append(p.KeyHistory, p.Key(), p.Key())
	if got := p.RepetitionCount(); got != 3 {
		t.Errorf("RepetitionCount = %d, want 3", got)
	}
}

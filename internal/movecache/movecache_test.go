package movecache

import (
	"testing"

	"github.com/discochess/arbiter/chess"
)

func moves(targets ...string) []chess.Move {
	out := make([]chess.Move, 0, len(targets))
	for _, sq := range targets {
		out = append(out, chess.Move{To: chess.MustParseSquare(sq)})
	}
	return out
}

func TestLRU_AddGet(t *testing.T) {
	c, err := NewLRU(4)
	if err != nil {
		t.Fatalf("NewLRU error = %v", err)
	}

	if _, ok := c.Get(1); ok {
		t.Error("Get on empty cache reported a hit")
	}

	want := moves("e4", "d4")
	c.Add(1, want)

	got, ok := c.Get(1)
	if !ok {
		t.Fatal("Get after Add missed")
	}
	if len(got) != 2 || got[0].To != chess.MustParseSquare("e4") {
		t.Errorf("Get = %v, want %v", got, want)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestLRU_CopiesIsolateCaller(t *testing.T) {
	c, err := NewLRU(4)
	if err != nil {
		t.Fatalf("NewLRU error = %v", err)
	}

	original := moves("e4", "d4")
	c.Add(1, original)

	// Mutating either the input or a returned copy must not leak into the
	// cached entry.
	original[0].To = chess.MustParseSquare("a1")
	first, _ := c.Get(1)
	first[1].To = chess.MustParseSquare("h8")

	got, _ := c.Get(1)
	if got[0].To != chess.MustParseSquare("e4") || got[1].To != chess.MustParseSquare("d4") {
		t.Errorf("cached entry mutated through aliasing: %v", got)
	}
}

func TestLRU_Eviction(t *testing.T) {
	c, err := NewLRU(2)
	if err != nil {
		t.Fatalf("NewLRU error = %v", err)
	}

	c.Add(1, moves("a3"))
	c.Add(2, moves("b3"))
	c.Add(3, moves("c3"))

	if _, ok := c.Get(1); ok {
		t.Error("oldest entry survived past capacity")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("newest entry evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestNewLRU_InvalidCapacity(t *testing.T) {
	if _, err := NewLRU(0); err == nil {
		t.Error("NewLRU(0) error = nil, want error")
	}
}

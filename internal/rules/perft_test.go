package rules

import (
	"testing"

	"github.com/discochess/arbiter/chess"
)

// perft counts the leaf nodes of the legal move tree.
func perft(pos chess.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range LegalMoves(pos) {
		nodes += perft(Apply(pos, m), depth-1)
	}
	return nodes
}

// Reference node counts from the standard initial position.
func TestPerft_InitialPosition(t *testing.T) {
	want := []int{1, 20, 400, 8902}
	if !testing.Short() {
		want = append(want, 197281)
	}

	pos := chess.StartingPosition()
	for depth, nodes := range want {
		if got := perft(pos, depth); got != nodes {
			t.Errorf("perft(%d) = %d, want %d", depth, got, nodes)
		}
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := chess.StartingPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		perft(pos, 3)
	}
}

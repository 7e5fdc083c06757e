package chess

import "math/rand"

// Zobrist tables for position keys: one random number per (color, kind,
// square), per castling-rights state, per en-passant file, plus one for the
// side to move.
var (
	zobristPiece     [2][7][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are stable across runs.
	rnd := rand.New(rand.NewSource(0x41524249))

	for color := 0; color < 2; color++ {
		for kind := 1; kind < 7; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[color][kind][sq] = rnd.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

package chess

// Position is an immutable snapshot of a game: placement, side to move,
// castling rights, en-passant target, move clocks and the recorded history.
//
// Positions are never mutated in place. Transitions produce a fresh Position
// whose history slices are copies, so earlier snapshots stay valid after any
// number of subsequent moves or undos.
type Position struct {
	Board    Board
	Turn     Color
	Castling CastlingRights

	// EnPassant is the capture target square set by the immediately
	// preceding double pawn push. It is meaningful only when HasEnPassant
	// is true.
	EnPassant    Square
	HasEnPassant bool

	// HalfmoveClock counts plies since the last capture or pawn move.
	HalfmoveClock int
	// FullmoveNumber starts at 1 and increments after Black's move.
	FullmoveNumber int

	// MoveHistory holds the SAN of every move played, in order.
	MoveHistory []string
	// KeyHistory holds the position key of every snapshot reached,
	// including this one. Used for threefold-repetition detection.
	KeyHistory []uint64
}

// StartingPosition returns the initial position with its key recorded.
func StartingPosition() Position {
	p := Position{
		Board:          StartingBoard(),
		Turn:           White,
		Castling:       AllCastlingRights(),
		FullmoveNumber: 1,
	}
	p.KeyHistory = []uint64{p.Key()}
	return p
}

// Key returns the canonical digest of placement, side to move, castling
// rights and en-passant file. Move clocks and history are excluded: two
// positions with equal keys are the same position for repetition purposes.
func (p Position) Key() uint64 {
	var key uint64
	for i, pc := range p.Board.squares {
		if !pc.IsEmpty() {
			key ^= zobristPiece[pc.Color][pc.Kind][i]
		}
	}
	if p.Turn == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.Castling.mask()]
	if p.HasEnPassant {
		key ^= zobristEnPassant[p.EnPassant.File]
	}
	return key
}

// EnPassantTarget returns the en-passant target square, if one is set.
func (p Position) EnPassantTarget() (Square, bool) {
	return p.EnPassant, p.HasEnPassant
}

// RepetitionCount returns how many times the current position has occurred,
// including this occurrence.
func (p Position) RepetitionCount() int {
	key := p.Key()
	n := 0
	for _, k := range p.KeyHistory {
		if k == key {
			n++
		}
	}
	return n
}

// WithMoveRecorded returns a copy of the position with the SAN text appended
// to its move history.
func (p Position) WithMoveRecorded(san string) Position {
	history := make([]string, len(p.MoveHistory), len(p.MoveHistory)+1)
	copy(history, p.MoveHistory)
	p.MoveHistory = append(history, san)
	return p
}

// Ply returns the number of half-moves played so far.
func (p Position) Ply() int {
	return len(p.MoveHistory)
}

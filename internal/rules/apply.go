// Package rules applies moves to positions, filters pseudo-legal moves down
// to legal ones, and classifies game-ending conditions.
package rules

import (
	"slices"

	"github.com/discochess/arbiter/chess"
)

// Apply plays the move on the position and returns the resulting snapshot.
// The move must be legal for pos; Apply performs no validation. The new
// position's key is appended to its key history; recording the SAN text is
// the caller's concern.
func Apply(pos chess.Position, m chess.Move) chess.Position {
	moving := pos.Board.At(m.From)
	captured := pos.Board.At(m.To)

	board := pos.Board.Clear(m.From)

	if m.EnPassant {
		// The captured pawn sits behind the target square, on the
		// mover's rank.
		board = board.Clear(chess.Sq(m.To.File, m.From.Rank))
	}

	if m.IsCastle() {
		board = moveCastlingRook(board, m)
	}

	placed := moving
	if m.Promotion != chess.NoKind {
		placed = chess.Piece{Kind: m.Promotion, Color: moving.Color}
	}
	board = board.Put(m.To, placed)

	next := chess.Position{
		Board:          board,
		Turn:           pos.Turn.Other(),
		Castling:       nextCastling(pos.Castling, m, moving, captured),
		FullmoveNumber: pos.FullmoveNumber,
	}

	if moving.Kind == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		next.EnPassant = chess.Sq(m.From.File, (m.From.Rank+m.To.Rank)/2)
		next.HasEnPassant = true
	}

	if moving.Kind == chess.Pawn || m.Capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = pos.HalfmoveClock + 1
	}

	if pos.Turn == chess.Black {
		next.FullmoveNumber++
	}

	next.MoveHistory = slices.Clone(pos.MoveHistory)
	next.KeyHistory = append(slices.Clone(pos.KeyHistory), next.Key())
	return next
}

func moveCastlingRook(board chess.Board, m chess.Move) chess.Board {
	rank := m.From.Rank
	var rookFrom, rookTo chess.Square
	if m.CastleKingside {
		rookFrom, rookTo = chess.Sq(7, rank), chess.Sq(5, rank)
	} else {
		rookFrom, rookTo = chess.Sq(0, rank), chess.Sq(3, rank)
	}
	rook := board.At(rookFrom)
	return board.Clear(rookFrom).Put(rookTo, rook)
}

// nextCastling revokes rights when a king or rook moves, and when a rook is
// captured on its home corner.
func nextCastling(cr chess.CastlingRights, m chess.Move, moving, captured chess.Piece) chess.CastlingRights {
	switch moving.Kind {
	case chess.King:
		cr = cr.RevokeAll(moving.Color)
	case chess.Rook:
		if wing, home := rookWing(m.From, moving.Color); home {
			cr = cr.Revoke(moving.Color, wing)
		}
	}
	if captured.Kind == chess.Rook {
		if wing, home := rookWing(m.To, captured.Color); home {
			cr = cr.Revoke(captured.Color, wing)
		}
	}
	return cr
}

// rookWing reports which wing a rook on sq belongs to, if sq is one of that
// color's home corners.
func rookWing(sq chess.Square, color chess.Color) (kingside bool, home bool) {
	rank := 0
	if color == chess.Black {
		rank = 7
	}
	if sq.Rank != rank {
		return false, false
	}
	switch sq.File {
	case 0:
		return false, true
	case 7:
		return true, true
	}
	return false, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Package movegen produces pseudo-legal moves from a position. Pseudo-legal
// moves respect piece geometry and occupancy but may leave the mover's own
// king in check; the rules package filters them down to legal moves.
package movegen

import "github.com/discochess/arbiter/chess"

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDirs = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PseudoLegal returns every pseudo-legal move for the side to move.
func PseudoLegal(pos chess.Position) []chess.Move {
	var moves []chess.Move
	for _, pl := range pos.Board.Pieces(pos.Turn) {
		moves = append(moves, forPiece(pos, pl.Square, pl.Piece)...)
	}
	return moves
}

// PseudoLegalFrom returns the pseudo-legal moves of the piece on sq, or nil
// if sq is empty or holds an opposing piece.
func PseudoLegalFrom(pos chess.Position, sq chess.Square) []chess.Move {
	p := pos.Board.At(sq)
	if p.IsEmpty() || p.Color != pos.Turn {
		return nil
	}
	return forPiece(pos, sq, p)
}

func forPiece(pos chess.Position, from chess.Square, p chess.Piece) []chess.Move {
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(pos, from, p.Color)
	case chess.Knight:
		return stepMoves(pos.Board, from, p.Color, knightOffsets[:])
	case chess.Bishop:
		return slideMoves(pos.Board, from, p.Color, diagonalDirs[:])
	case chess.Rook:
		return slideMoves(pos.Board, from, p.Color, orthogonalDirs[:])
	case chess.Queen:
		moves := slideMoves(pos.Board, from, p.Color, diagonalDirs[:])
		return append(moves, slideMoves(pos.Board, from, p.Color, orthogonalDirs[:])...)
	case chess.King:
		return kingMoves(pos, from, p.Color)
	}
	return nil
}

func pawnMoves(pos chess.Position, from chess.Square, color chess.Color) []chess.Move {
	var moves []chess.Move
	board := pos.Board

	dir := 1
	startRank, promoRank := 1, 7
	if color == chess.Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	// Single push, then double push from the starting rank.
	one := chess.Sq(from.File, from.Rank+dir)
	if one.Valid() && board.At(one).IsEmpty() {
		moves = append(moves, pawnAdvance(from, one, promoRank, false)...)
		if from.Rank == startRank {
			two := chess.Sq(from.File, from.Rank+2*dir)
			if board.At(two).IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		to := chess.Sq(from.File+df, from.Rank+dir)
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		if !target.IsEmpty() && target.Color != color {
			moves = append(moves, pawnAdvance(from, to, promoRank, true)...)
		}
		if ep, ok := pos.EnPassantTarget(); ok && to == ep {
			moves = append(moves, chess.Move{
				From: from, To: to,
				Capture: true, EnPassant: true,
			})
		}
	}

	return moves
}

// pawnAdvance expands a pawn move into four promotion variants when it
// reaches the last rank.
func pawnAdvance(from, to chess.Square, promoRank int, capture bool) []chess.Move {
	if to.Rank != promoRank {
		return []chess.Move{{From: from, To: to, Capture: capture}}
	}
	moves := make([]chess.Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Move{
			From: from, To: to,
			Promotion: kind, Capture: capture,
		})
	}
	return moves
}

func stepMoves(board chess.Board, from chess.Square, color chess.Color, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := chess.Sq(from.File+off[0], from.Rank+off[1])
		if !to.Valid() {
			continue
		}
		target := board.At(to)
		if target.IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: to})
		} else if target.Color != color {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true})
		}
	}
	return moves
}

func slideMoves(board chess.Board, from chess.Square, color chess.Color, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := chess.Sq(from.File+dir[0], from.Rank+dir[1])
		for to.Valid() {
			target := board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.Move{From: from, To: to})
			} else {
				if target.Color != color {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break
			}
			to = chess.Sq(to.File+dir[0], to.Rank+dir[1])
		}
	}
	return moves
}

func kingMoves(pos chess.Position, from chess.Square, color chess.Color) []chess.Move {
	moves := stepMoves(pos.Board, from, color, kingOffsets[:])

	// Castling candidates are emitted whenever the king stands on its home
	// square; rights, path occupancy and attacked squares are all resolved
	// by the legality validator.
	homeRank := 0
	if color == chess.Black {
		homeRank = 7
	}
	if from == chess.Sq(4, homeRank) {
		moves = append(moves,
			chess.Move{From: from, To: chess.Sq(6, homeRank), CastleKingside: true},
			chess.Move{From: from, To: chess.Sq(2, homeRank), CastleQueenside: true},
		)
	}

	return moves
}

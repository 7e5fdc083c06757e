package rules

import (
	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/movegen"
)

// LegalMoves returns every legal move for the side to move: the pseudo-legal
// moves whose application does not leave the mover's own king attacked.
// Pins and discovered checks fall out of the scratch-apply test without any
// dedicated pin detection.
func LegalMoves(pos chess.Position) []chess.Move {
	return filterLegal(pos, movegen.PseudoLegal(pos))
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(pos chess.Position, sq chess.Square) []chess.Move {
	return filterLegal(pos, movegen.PseudoLegalFrom(pos, sq))
}

// IsMoveLegal reports whether m, including its flags, is exactly one of the
// legal moves available in pos.
func IsMoveLegal(pos chess.Position, m chess.Move) bool {
	for _, legal := range LegalMovesFrom(pos, m.From) {
		if legal == m {
			return true
		}
	}
	return false
}

func filterLegal(pos chess.Position, candidates []chess.Move) []chess.Move {
	var legal []chess.Move
	for _, m := range candidates {
		if m.IsCastle() {
			if castlingLegal(pos, m) {
				legal = append(legal, m)
			}
			continue
		}
		scratch := Apply(pos, m)
		if !movegen.IsInCheck(scratch.Board, pos.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// castlingLegal checks the structural castling conditions: the right is
// still held, the rook is on its corner, the squares between king and rook
// are empty, and none of the squares the king occupies or traverses is
// attacked, the origin included.
func castlingLegal(pos chess.Position, m chess.Move) bool {
	color := pos.Turn
	if !pos.Castling.Can(color, m.CastleKingside) {
		return false
	}

	rank := m.From.Rank
	rookFile := 7
	emptyFiles := []int{5, 6}
	kingPath := []int{4, 5, 6}
	if m.CastleQueenside {
		rookFile = 0
		emptyFiles = []int{1, 2, 3}
		kingPath = []int{4, 3, 2}
	}

	rook := pos.Board.At(chess.Sq(rookFile, rank))
	if rook.Kind != chess.Rook || rook.Color != color {
		return false
	}
	for _, file := range emptyFiles {
		if !pos.Board.At(chess.Sq(file, rank)).IsEmpty() {
			return false
		}
	}
	for _, file := range kingPath {
		if movegen.IsSquareAttacked(pos.Board, chess.Sq(file, rank), color.Other()) {
			return false
		}
	}
	return true
}

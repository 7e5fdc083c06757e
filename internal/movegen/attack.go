package movegen

import "github.com/discochess/arbiter/chess"

// IsSquareAttacked reports whether any piece of byColor attacks sq on the
// given board. Attack geometry only: pins are ignored, and pawns attack
// diagonally regardless of whether a capture is available. This is
// deliberately independent of the legality validator so the two never
// recurse into each other.
func IsSquareAttacked(board chess.Board, sq chess.Square, byColor chess.Color) bool {
	// Pawn attacks come from one rank behind the target, relative to the
	// attacker's direction of travel.
	pawnDir := 1
	if byColor == chess.Black {
		pawnDir = -1
	}
	for _, df := range [2]int{-1, 1} {
		from := chess.Sq(sq.File+df, sq.Rank-pawnDir)
		if p := board.At(from); p.Kind == chess.Pawn && p.Color == byColor {
			return true
		}
	}

	for _, off := range knightOffsets {
		from := chess.Sq(sq.File+off[0], sq.Rank+off[1])
		if p := board.At(from); p.Kind == chess.Knight && p.Color == byColor {
			return true
		}
	}

	for _, off := range kingOffsets {
		from := chess.Sq(sq.File+off[0], sq.Rank+off[1])
		if p := board.At(from); p.Kind == chess.King && p.Color == byColor {
			return true
		}
	}

	if rayHits(board, sq, byColor, diagonalDirs[:], chess.Bishop) {
		return true
	}
	return rayHits(board, sq, byColor, orthogonalDirs[:], chess.Rook)
}

// rayHits walks each ray away from sq and reports whether the first piece
// found is an attacker sliding along that line (the given kind or a queen).
func rayHits(board chess.Board, sq chess.Square, byColor chess.Color, dirs [][2]int, kind chess.PieceKind) bool {
	for _, dir := range dirs {
		cur := chess.Sq(sq.File+dir[0], sq.Rank+dir[1])
		for cur.Valid() {
			p := board.At(cur)
			if !p.IsEmpty() {
				if p.Color == byColor && (p.Kind == kind || p.Kind == chess.Queen) {
					return true
				}
				break
			}
			cur = chess.Sq(cur.File+dir[0], cur.Rank+dir[1])
		}
	}
	return false
}

// IsInCheck reports whether the given color's king is attacked. Positions
// with no such king (only reachable by hand-built boards) are never in check.
func IsInCheck(board chess.Board, color chess.Color) bool {
	king, ok := board.King(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, color.Other())
}

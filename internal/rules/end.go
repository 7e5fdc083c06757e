package rules

import (
	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/movegen"
)

// Result strings in PGN form.
const (
	WhiteWins = "1-0"
	BlackWins = "0-1"
	Draw      = "1/2-1/2"
	Ongoing   = "*"
)

// Termination names the condition that ended (or would end) a game.
type Termination int

const (
	TerminationNone Termination = iota
	TerminationCheckmate
	TerminationStalemate
	TerminationFiftyMove
	TerminationThreefold
	TerminationInsufficientMaterial
)

var terminationNames = [...]string{
	TerminationNone:                 "none",
	TerminationCheckmate:            "checkmate",
	TerminationStalemate:            "stalemate",
	TerminationFiftyMove:            "fifty-move rule",
	TerminationThreefold:            "threefold repetition",
	TerminationInsufficientMaterial: "insufficient material",
}

func (t Termination) String() string {
	if int(t) < len(terminationNames) {
		return terminationNames[t]
	}
	return "none"
}

// InCheck reports whether the side to move is in check.
func InCheck(pos chess.Position) bool {
	return movegen.IsInCheck(pos.Board, pos.Turn)
}

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(pos chess.Position) bool {
	return movegen.IsInCheck(pos.Board, pos.Turn) && len(LegalMoves(pos)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is not
// in check.
func IsStalemate(pos chess.Position) bool {
	return !movegen.IsInCheck(pos.Board, pos.Turn) && len(LegalMoves(pos)) == 0
}

// IsFiftyMoveRule reports whether fifty full moves have passed without a
// capture or pawn move.
func IsFiftyMoveRule(pos chess.Position) bool {
	return pos.HalfmoveClock >= 100
}

// IsThreefoldRepetition reports whether the current position has occurred at
// least three times.
func IsThreefoldRepetition(pos chess.Position) bool {
	return pos.RepetitionCount() >= 3
}

// IsInsufficientMaterial reports whether neither side can deliver mate:
// K v K, K+B v K, K+N v K, or K+B v K+B with same-colored bishops. Any other
// material counts as sufficient.
func IsInsufficientMaterial(board chess.Board) bool {
	white := minorPieces(board, chess.White)
	black := minorPieces(board, chess.Black)
	if white == nil || black == nil {
		// A side has a pawn, rook or queen.
		return false
	}

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		wb, bb := white[0], black[0]
		return wb.Piece.Kind == chess.Bishop && bb.Piece.Kind == chess.Bishop &&
			wb.Square.IsLight() == bb.Square.IsLight()
	}
	return false
}

// minorPieces returns the non-king pieces of a color, or nil if any of them
// is not a bishop or knight (i.e. the side still has mating material).
func minorPieces(board chess.Board, color chess.Color) []chess.Placement {
	out := []chess.Placement{}
	for _, pl := range board.Pieces(color) {
		switch pl.Piece.Kind {
		case chess.King:
		case chess.Bishop, chess.Knight:
			out = append(out, pl)
		default:
			return nil
		}
	}
	return out
}

// Classify returns the condition ending the game in pos, or TerminationNone
// if the game can continue. Draw conditions beyond checkmate and stalemate
// are claimable rather than forced; callers decide enforcement.
func Classify(pos chess.Position) Termination {
	noMoves := len(LegalMoves(pos)) == 0
	switch {
	case noMoves && movegen.IsInCheck(pos.Board, pos.Turn):
		return TerminationCheckmate
	case noMoves:
		return TerminationStalemate
	case IsFiftyMoveRule(pos):
		return TerminationFiftyMove
	case IsThreefoldRepetition(pos):
		return TerminationThreefold
	case IsInsufficientMaterial(pos.Board):
		return TerminationInsufficientMaterial
	}
	return TerminationNone
}

// GameResult returns "1-0", "0-1" or "1/2-1/2" for an ended game, and "*"
// while the game is ongoing.
func GameResult(pos chess.Position) string {
	switch Classify(pos) {
	case TerminationCheckmate:
		if pos.Turn == chess.White {
			return BlackWins
		}
		return WhiteWins
	case TerminationNone:
		return Ongoing
	default:
		return Draw
	}
}

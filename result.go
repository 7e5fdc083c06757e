package arbiter

import "github.com/discochess/arbiter/internal/rules"

// Result strings in PGN form.
const (
	WhiteWins = rules.WhiteWins
	BlackWins = rules.BlackWins
	Draw      = rules.Draw
	Ongoing   = rules.Ongoing
)

// Termination names the condition that ended a game.
type Termination = rules.Termination

const (
	TerminationNone                 = rules.TerminationNone
	TerminationCheckmate            = rules.TerminationCheckmate
	TerminationStalemate            = rules.TerminationStalemate
	TerminationFiftyMove            = rules.TerminationFiftyMove
	TerminationThreefold            = rules.TerminationThreefold
	TerminationInsufficientMaterial = rules.TerminationInsufficientMaterial
)

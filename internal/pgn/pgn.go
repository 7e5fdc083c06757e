// Package pgn serializes games to Portable Game Notation and reconstructs
// them by replaying the movetext through the rules engine. Replay is the
// sole reconstruction mechanism: no tag or side channel can override the
// board state reached by the recorded moves.
package pgn

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/discochess/arbiter/chess"
)

// Well-known tag names. The first seven are mandatory in every game;
// TotalTimeSeconds is this library's custom integer tag for elapsed time.
const (
	TagEvent            = "Event"
	TagSite             = "Site"
	TagDate             = "Date"
	TagWhite            = "White"
	TagBlack            = "Black"
	TagResult           = "Result"
	TagTimeControl      = "TimeControl"
	TagTotalTimeSeconds = "TotalTimeSeconds"
	TagGameMode         = "GameMode"
)

// MandatoryTags lists the tags every encoded game carries and every decoded
// game must supply, in output order.
var MandatoryTags = []string{
	TagEvent, TagSite, TagDate, TagWhite, TagBlack, TagResult, TagTimeControl,
}

// ErrMalformed indicates text that violates the PGN grammar: a bad tag line,
// a missing mandatory header, or a bad terminator.
var ErrMalformed = errors.New("pgn: malformed input")

// ReplayError reports a movetext token that is illegal against the position
// reached by replaying the prior tokens. It is fatal for the whole game.
type ReplayError struct {
	Ply   int    // 1-indexed half-move
	Token string // offending SAN token
	Err   error  // underlying SAN error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("pgn: replay failed at ply %d on %q: %v", e.Ply, e.Token, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }

// Game is a decoded or to-be-encoded PGN game: its tag pairs, the final
// position with full move history, and per-ply comments.
type Game struct {
	// Tags maps tag names to values. Mandatory tags are filled with
	// defaults on encode when absent.
	Tags map[string]string

	// Position is the final position; its MoveHistory supplies the
	// movetext.
	Position chess.Position

	// Positions holds every snapshot a decode passed through, from the
	// initial position to Position. Empty for games built by hand.
	Positions []chess.Position

	// Comments maps a 1-indexed ply to the comment following that move.
	Comments map[int]string
}

var defaultTags = map[string]string{
	TagEvent:            "Casual Game",
	TagSite:             "?",
	TagWhite:            "White",
	TagBlack:            "Black",
	TagResult:           "*",
	TagTimeControl:      "-",
	TagTotalTimeSeconds: "0",
}

// Encode renders the game as PGN text: the seven mandatory tags plus
// TotalTimeSeconds, any extra tags in sorted order, a blank line, and the
// movetext terminated by the result token.
func Encode(g *Game) string {
	var sb strings.Builder

	tag := func(name string) string {
		if v, ok := g.Tags[name]; ok {
			return v
		}
		if name == TagDate {
			return time.Now().Format("2006.01.02")
		}
		return defaultTags[name]
	}

	written := make(map[string]bool)
	for _, name := range append(append([]string{}, MandatoryTags...), TagTotalTimeSeconds) {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, escapeTag(tag(name)))
		written[name] = true
	}

	var extras []string
	for name := range g.Tags {
		if !written[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, escapeTag(g.Tags[name]))
	}

	sb.WriteByte('\n')
	sb.WriteString(g.movetext(tag(TagResult)))
	sb.WriteByte('\n')
	return sb.String()
}

func (g *Game) movetext(result string) string {
	var parts []string
	for i, sanText := range g.Position.MoveHistory {
		if i%2 == 0 {
			parts = append(parts, strconv.Itoa(i/2+1)+".")
		}
		parts = append(parts, sanText)
		if comment, ok := g.Comments[i+1]; ok {
			parts = append(parts, "{"+comment+"}")
		}
	}
	parts = append(parts, result)
	return strings.Join(parts, " ")
}

// escapeTag escapes backslashes and quotes per the PGN tag-pair grammar.
func escapeTag(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

// TotalTimeSeconds returns the custom elapsed-time tag as an integer, or 0
// when absent.
func (g *Game) TotalTimeSeconds() int {
	n, _ := strconv.Atoi(g.Tags[TagTotalTimeSeconds])
	return n
}

// Result returns the game's result tag, defaulting to "*".
func (g *Game) Result() string {
	if r, ok := g.Tags[TagResult]; ok {
		return r
	}
	return "*"
}

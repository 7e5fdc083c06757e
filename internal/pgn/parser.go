package pgn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/rules"
	"github.com/discochess/arbiter/internal/san"
)

var tagPattern = regexp.MustCompile(`^\[(\w+)\s+"((?:[^"\\]|\\.)*)"\]$`)

var resultTokens = map[string]bool{
	rules.WhiteWins: true,
	rules.BlackWins: true,
	rules.Draw:      true,
	rules.Ongoing:   true,
}

// Decode parses a single PGN game and reconstructs its position by replaying
// every SAN token from the initial position. Any unparseable or illegal
// token aborts the whole decode: no partial game is ever returned.
func Decode(text string) (*Game, error) {
	tags, movetext, err := splitSections(text)
	if err != nil {
		return nil, err
	}
	if err := validateTags(tags); err != nil {
		return nil, err
	}

	game := &Game{Tags: tags, Comments: make(map[int]string)}

	pos := chess.StartingPosition()
	game.Positions = []chess.Position{pos}
	terminator := ""
	ply := 0

	emit := func(token string) error {
		if terminator != "" {
			return fmt.Errorf("%w: token %q after game terminator", ErrMalformed, token)
		}
		if resultTokens[token] {
			terminator = token
			return nil
		}
		move, err := san.Decode(pos, token)
		if err != nil {
			return &ReplayError{Ply: ply + 1, Token: token, Err: err}
		}
		pos = rules.Apply(pos, move).WithMoveRecorded(token)
		game.Positions = append(game.Positions, pos)
		ply++
		return nil
	}

	for i := 0; i < len(movetext); {
		c := movetext[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '{':
			end := strings.IndexByte(movetext[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated comment", ErrMalformed)
			}
			if ply > 0 {
				game.Comments[ply] = appendComment(game.Comments[ply], movetext[i+1:i+1+end])
			}
			i += end + 2

		case c == '(':
			// Recursive variations are skipped; only the main line is
			// replayed.
			depth := 1
			j := i + 1
			for j < len(movetext) && depth > 0 {
				switch movetext[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			if depth != 0 {
				return nil, fmt.Errorf("%w: unterminated variation", ErrMalformed)
			}
			i = j

		case c == '$':
			j := i + 1
			for j < len(movetext) && movetext[j] >= '0' && movetext[j] <= '9' {
				j++
			}
			i = j

		default:
			j := i
			for j < len(movetext) && !strings.ContainsRune(" \t\n\r{($", rune(movetext[j])) {
				j++
			}
			token := stripMoveNumber(movetext[i:j])
			if token != "" {
				if err := emit(token); err != nil {
					return nil, err
				}
			}
			i = j
		}
	}

	if terminator == "" {
		return nil, fmt.Errorf("%w: missing result token", ErrMalformed)
	}
	if terminator != tags[TagResult] {
		return nil, fmt.Errorf("%w: terminator %q does not match Result tag %q",
			ErrMalformed, terminator, tags[TagResult])
	}

	game.Position = pos
	return game, nil
}

// splitSections separates the tag section from the movetext.
func splitSections(text string) (map[string]string, string, error) {
	tags := make(map[string]string)
	lines := strings.Split(text, "\n")

	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "[") {
			break
		}
		groups := tagPattern.FindStringSubmatch(line)
		if groups == nil {
			return nil, "", fmt.Errorf("%w: bad tag line %q", ErrMalformed, line)
		}
		tags[groups[1]] = unescapeTag(groups[2])
	}

	return tags, strings.Join(lines[i:], "\n"), nil
}

// unescapeTag reverses escapeTag: a backslash makes the next byte literal.
func unescapeTag(value string) string {
	if !strings.ContainsRune(value, '\\') {
		return value
	}
	var sb strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			i++
		}
		sb.WriteByte(value[i])
	}
	return sb.String()
}

func validateTags(tags map[string]string) error {
	for _, name := range MandatoryTags {
		if _, ok := tags[name]; !ok {
			return fmt.Errorf("%w: missing mandatory tag %q", ErrMalformed, name)
		}
	}
	if !resultTokens[tags[TagResult]] {
		return fmt.Errorf("%w: invalid Result %q", ErrMalformed, tags[TagResult])
	}
	if v, ok := tags[TagTotalTimeSeconds]; ok {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q",
				ErrMalformed, TagTotalTimeSeconds, v)
		}
	}
	return nil
}

// stripMoveNumber drops a leading move number like "1." or "3...", keeping
// any move glued to it ("1.e4" yields "e4").
func stripMoveNumber(token string) string {
	i := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == 0 {
		return strings.TrimLeft(token, ".")
	}
	j := i
	for j < len(token) && token[j] == '.' {
		j++
	}
	if j == i {
		// Digits with no dots: a result fragment or malformed move;
		// pass through for the SAN decoder to reject.
		return token
	}
	return token[j:]
}

func appendComment(existing, comment string) string {
	comment = strings.TrimSpace(comment)
	if existing == "" {
		return comment
	}
	return existing + " " + comment
}

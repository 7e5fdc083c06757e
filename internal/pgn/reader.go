package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader decodes consecutive games from a PGN stream. Game boundaries are
// detected on "[Event " lines, so multi-game files need no separator beyond
// the standard tag sections.
type Reader struct {
	scanner *bufio.Scanner
	pending string // boundary line carried over from the previous game
	done    bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	// Long movetext lines are common in machine-generated PGN.
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	return &Reader{scanner: scanner}
}

// ReadGame decodes the next game. It returns io.EOF once the stream is
// exhausted. Attaching the game's ordinal position in the stream to a decode
// error is the caller's concern.
func (r *Reader) ReadGame() (*Game, error) {
	text, err := r.nextGameText()
	if err != nil {
		return nil, err
	}
	return Decode(text)
}

func (r *Reader) nextGameText() (string, error) {
	var sb strings.Builder
	started := false

	if r.pending != "" {
		sb.WriteString(r.pending)
		sb.WriteByte('\n')
		r.pending = ""
		started = true
	}

	for !r.done && r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, "[Event ") && started {
			// Start of the next game; keep the line for the
			// following call.
			r.pending = line
			return sb.String(), nil
		}
		if started || strings.TrimSpace(line) != "" {
			started = true
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	r.done = true

	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("pgn: reading stream: %w", err)
	}
	if !started {
		return "", io.EOF
	}
	return sb.String(), nil
}

// Package san converts moves to and from Standard Algebraic Notation.
// The legality validator is the ground truth on both sides: encoding
// disambiguates against the legal-move set, and decoding selects the single
// legal move matching the parsed constraints.
package san

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/movegen"
	"github.com/discochess/arbiter/internal/rules"
)

// Sentinel errors for well-defined parse failures.
var (
	// ErrIllegalMove indicates the notation names no legal move in the
	// position.
	ErrIllegalMove = errors.New("san: no matching legal move")

	// ErrAmbiguous indicates the notation matches more than one legal
	// move; well-formed SAN never does.
	ErrAmbiguous = errors.New("san: ambiguous move")

	// ErrMalformed indicates the text violates the SAN grammar.
	ErrMalformed = errors.New("san: malformed notation")
)

// movePattern captures piece letter, disambiguation file/rank, capture
// marker, destination, and promotion.
var movePattern = regexp.MustCompile(`^([KQRBN])?([a-h])?([1-8])?(x)?([a-h][1-8])(=([QRBN]))?$`)

// Encode renders m as SAN, including check (+) and mate (#) suffixes.
// The move must be legal for pos.
func Encode(pos chess.Position, m chess.Move) (string, error) {
	if m.IsCastle() {
		text := "O-O"
		if m.CastleQueenside {
			text = "O-O-O"
		}
		return text + checkSuffix(pos, m), nil
	}

	piece := pos.Board.At(m.From)
	if piece.IsEmpty() {
		return "", fmt.Errorf("%w: no piece on %s", ErrIllegalMove, m.From)
	}

	var sb strings.Builder
	if piece.Kind == chess.Pawn {
		if m.Capture {
			// Pawn captures carry the origin file instead of a
			// piece letter.
			sb.WriteByte(byte('a' + m.From.File))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != chess.NoKind {
			sb.WriteByte('=')
			sb.WriteString(m.Promotion.SANLetter())
		}
	} else {
		sb.WriteString(piece.Kind.SANLetter())
		sb.WriteString(disambiguation(pos, m, piece.Kind))
		if m.Capture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	return sb.String() + checkSuffix(pos, m), nil
}

// disambiguation returns the minimal origin qualifier needed to tell m apart
// from other legal moves of the same piece kind to the same destination:
// nothing, the file, the rank, or both.
func disambiguation(pos chess.Position, m chess.Move, kind chess.PieceKind) string {
	var rivals []chess.Square
	for _, legal := range rules.LegalMoves(pos) {
		if legal.To != m.To || legal.From == m.From {
			continue
		}
		if pos.Board.At(legal.From).Kind == kind {
			rivals = append(rivals, legal.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.File == m.From.File {
			sameFile = true
		}
		if sq.Rank == m.From.Rank {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string([]byte{byte('a' + m.From.File)})
	case !sameRank:
		return string([]byte{byte('1' + m.From.Rank)})
	default:
		return m.From.String()
	}
}

func checkSuffix(pos chess.Position, m chess.Move) string {
	next := rules.Apply(pos, m)
	if !movegen.IsInCheck(next.Board, next.Turn) {
		return ""
	}
	if rules.IsCheckmate(next) {
		return "#"
	}
	return "+"
}

// Decode parses SAN text against pos and returns the single legal move it
// names. Check and mate decorations are ignored.
func Decode(pos chess.Position, text string) (chess.Move, error) {
	stripped := strings.TrimRight(text, "+#")

	switch stripped {
	case "O-O", "0-0":
		return findCastle(pos, true, text)
	case "O-O-O", "0-0-0":
		return findCastle(pos, false, text)
	}

	groups := movePattern.FindStringSubmatch(stripped)
	if groups == nil {
		return chess.Move{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}

	kind := chess.Pawn
	if groups[1] != "" {
		kind, _ = chess.KindFromSAN(groups[1][0])
	}
	to, err := chess.ParseSquare(groups[5])
	if err != nil {
		return chess.Move{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	promotion := chess.NoKind
	if groups[7] != "" {
		promotion, _ = chess.KindFromSAN(groups[7][0])
	}

	var matches []chess.Move
	for _, legal := range rules.LegalMoves(pos) {
		if legal.To != to || legal.Promotion != promotion || legal.IsCastle() {
			continue
		}
		if pos.Board.At(legal.From).Kind != kind {
			continue
		}
		if groups[2] != "" && legal.From.File != int(groups[2][0]-'a') {
			continue
		}
		if groups[3] != "" && legal.From.Rank != int(groups[3][0]-'1') {
			continue
		}
		matches = append(matches, legal)
	}

	switch len(matches) {
	case 0:
		return chess.Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, text)
	case 1:
		return matches[0], nil
	default:
		return chess.Move{}, fmt.Errorf("%w: %q", ErrAmbiguous, text)
	}
}

func findCastle(pos chess.Position, kingside bool, text string) (chess.Move, error) {
	for _, legal := range rules.LegalMoves(pos) {
		if kingside && legal.CastleKingside || !kingside && legal.CastleQueenside {
			return legal, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, text)
}

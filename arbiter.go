// Package arbiter maintains chess games against the full FIDE rule set:
// it generates and validates moves, classifies game-ending conditions, and
// converts games between the internal move representation, Standard
// Algebraic Notation and Portable Game Notation.
//
// Example usage:
//
//	game, err := arbiter.New(
//	    arbiter.WithPlayers("Kasparov", "Topalov"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	san, err := game.PlaySAN("e4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("played %s, %d replies\n", san.String(), len(game.LegalMoves()))
//
// A Game is an explicit value owned by its session: the package holds no
// process-wide state and does no internal locking. Hosts running games
// concurrently must serialize access to each Game at the session boundary;
// distinct Games share nothing.
package arbiter

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/discochess/arbiter/chess"
	"github.com/discochess/arbiter/internal/fen"
	"github.com/discochess/arbiter/internal/movecache"
	"github.com/discochess/arbiter/internal/pgn"
	"github.com/discochess/arbiter/internal/rules"
	"github.com/discochess/arbiter/internal/san"
	"github.com/discochess/arbiter/internal/stats"
)

// Sentinel errors for well-defined error conditions. The notation errors are
// shared with the SAN and PGN codecs, so errors.Is works on anything
// returned from this package.
var (
	// ErrIllegalMove indicates a move or SAN token that names no legal
	// move in the current position. The game is left unchanged.
	ErrIllegalMove = san.ErrIllegalMove

	// ErrAmbiguousNotation indicates SAN text matching more than one
	// legal move after disambiguation.
	ErrAmbiguousNotation = san.ErrAmbiguous

	// ErrMalformedNotation indicates text violating the SAN grammar.
	ErrMalformedNotation = san.ErrMalformed

	// ErrMalformedPGN indicates text violating the PGN grammar.
	ErrMalformedPGN = pgn.ErrMalformed

	// ErrNothingToUndo indicates an undo request on a game with fewer
	// plies played than requested.
	ErrNothingToUndo = errors.New("arbiter: nothing to undo")

	// ErrInvalidFEN indicates malformed Forsyth-Edwards notation.
	ErrInvalidFEN = fen.ErrInvalidFEN
)

// ReplayError reports the movetext token that made a PGN load fail.
type ReplayError = pgn.ReplayError

// Game tracks a single chess game as a chain of immutable position
// snapshots. All transitions are pure: playing a move appends a snapshot,
// undo pops snapshots, and no snapshot is ever mutated in place.
//
// A Game must be owned by one logical session at a time; see the package
// comment for the concurrency contract.
type Game struct {
	history  []chess.Position
	tags     map[string]string
	comments map[int]string

	cache  movecache.Cache
	stats  stats.Collector
	logger *zap.Logger
}

// New creates a game at the standard initial position.
func New(opts ...Option) (*Game, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	g := &Game{
		history:  []chess.Position{chess.StartingPosition()},
		tags:     cfg.tags,
		comments: make(map[int]string),
		stats:    cfg.stats,
		logger:   cfg.logger,
	}

	if cfg.cacheSize > 0 {
		cache, err := movecache.NewLRU(cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating move cache: %w", err)
		}
		g.cache = cache
	}

	g.logger.Debug("game initialized",
		zap.Int("moveCacheSize", cfg.cacheSize),
	)
	return g, nil
}

// NewFromFEN creates a game starting at an arbitrary position given in
// Forsyth-Edwards notation. The game's history begins at that position, so
// Undo cannot rewind past it.
func NewFromFEN(notation string, opts ...Option) (*Game, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	pos, err := fen.Parse(notation)
	if err != nil {
		return nil, err
	}
	g.history = []chess.Position{pos}
	return g, nil
}

// Position returns the current snapshot.
func (g *Game) Position() chess.Position {
	return g.history[len(g.history)-1]
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Color {
	return g.Position().Turn
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.history) - 1
}

// Moves returns a copy of the SAN history of the game.
func (g *Game) Moves() []string {
	return slices.Clone(g.Position().MoveHistory)
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []chess.Move {
	pos := g.Position()
	g.stats.IncCounter(stats.MetricLegalMoveGens, 1)

	if g.cache == nil {
		return rules.LegalMoves(pos)
	}

	key := pos.Key()
	if moves, ok := g.cache.Get(key); ok {
		g.stats.IncCounter(stats.MetricCacheHits, 1)
		return moves
	}
	g.stats.IncCounter(stats.MetricCacheMisses, 1)

	moves := rules.LegalMoves(pos)
	g.cache.Add(key, moves)
	g.stats.SetGauge(stats.MetricCacheSize, int64(g.cache.Len()))
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq, or nil if sq is
// empty or holds an opposing piece.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	return rules.LegalMovesFrom(g.Position(), sq)
}

// IsMoveLegal reports whether m, including its flags, is legal right now.
func (g *Game) IsMoveLegal(m chess.Move) bool {
	return rules.IsMoveLegal(g.Position(), m)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return rules.InCheck(g.Position())
}

// Play applies a legal move and returns its SAN text. An illegal move
// returns ErrIllegalMove and leaves the game unchanged.
func (g *Game) Play(m chess.Move) (string, error) {
	pos := g.Position()
	if !rules.IsMoveLegal(pos, m) {
		g.stats.IncCounter(stats.MetricIllegalAttempts, 1)
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	sanText, err := san.Encode(pos, m)
	if err != nil {
		return "", fmt.Errorf("encoding move %s: %w", m, err)
	}

	g.push(rules.Apply(pos, m).WithMoveRecorded(sanText))
	g.logger.Debug("move played",
		zap.String("san", sanText),
		zap.String("move", m.String()),
		zap.Int("ply", g.Ply()),
	)
	return sanText, nil
}

// PlaySAN parses SAN text against the current position and plays the move it
// names. The recorded history uses the canonical encoding, so a token
// missing its check or mate suffix is stored with the suffix restored.
func (g *Game) PlaySAN(text string) (chess.Move, error) {
	m, err := san.Decode(g.Position(), text)
	if err != nil {
		g.stats.IncCounter(stats.MetricIllegalAttempts, 1)
		return chess.Move{}, err
	}
	if _, err := g.Play(m); err != nil {
		return chess.Move{}, err
	}
	return m, nil
}

func (g *Game) push(pos chess.Position) {
	g.history = append(g.history, pos)
	g.stats.IncCounter(stats.MetricMovesPlayed, 1)
}

// Undo reverts the most recent plies half-moves. Sessions reverting a
// human+engine pair pass 2. The comments attached to undone plies are
// dropped.
func (g *Game) Undo(plies int) error {
	if plies < 1 || plies > g.Ply() {
		return fmt.Errorf("%w: %d plies requested, %d played", ErrNothingToUndo, plies, g.Ply())
	}
	g.history = g.history[:len(g.history)-plies]
	for ply := range g.comments {
		if ply > g.Ply() {
			delete(g.comments, ply)
		}
	}
	g.stats.IncCounter(stats.MetricMovesUndone, int64(plies))
	g.logger.Debug("moves undone", zap.Int("plies", plies), zap.Int("ply", g.Ply()))
	return nil
}

// Result returns "1-0", "0-1" or "1/2-1/2" once the game has ended, and "*"
// while it is ongoing. Claimable draws (fifty-move, repetition, insufficient
// material) count as ended here; callers that only offer such draws should
// consult the individual predicates instead.
func (g *Game) Result() string {
	return rules.GameResult(g.Position())
}

// Termination names the condition that ended the game, or TerminationNone.
func (g *Game) Termination() Termination {
	return rules.Classify(g.Position())
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return rules.IsCheckmate(g.Position())
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return rules.IsStalemate(g.Position())
}

// CanClaimFiftyMoveRule reports whether a fifty-move draw claim is available.
func (g *Game) CanClaimFiftyMoveRule() bool {
	return rules.IsFiftyMoveRule(g.Position())
}

// CanClaimThreefoldRepetition reports whether a repetition claim is
// available.
func (g *Game) CanClaimThreefoldRepetition() bool {
	return rules.IsThreefoldRepetition(g.Position())
}

// HasInsufficientMaterial reports whether neither side can deliver mate.
func (g *Game) HasInsufficientMaterial() bool {
	return rules.IsInsufficientMaterial(g.Position().Board)
}

// FEN returns the current position in Forsyth-Edwards notation.
func (g *Game) FEN() string {
	return fen.Encode(g.Position())
}

// SetTag sets a PGN tag on the game.
func (g *Game) SetTag(name, value string) {
	g.tags[name] = value
}

// Tag returns the value of a PGN tag, if set.
func (g *Game) Tag(name string) (string, bool) {
	v, ok := g.tags[name]
	return v, ok
}

// Annotate attaches a comment to an already-played ply (1-indexed). The
// comment is emitted in braces after that move in the PGN output.
func (g *Game) Annotate(ply int, comment string) error {
	if ply < 1 || ply > g.Ply() {
		return fmt.Errorf("arbiter: no move at ply %d", ply)
	}
	g.comments[ply] = comment
	return nil
}

// Comment returns the comment attached to a ply, if any.
func (g *Game) Comment(ply int) (string, bool) {
	c, ok := g.comments[ply]
	return c, ok
}

// EncodePGN serializes the game: the seven mandatory tags plus
// TotalTimeSeconds, any extra tags, and the movetext terminated by the
// result token. Once the game has ended on the board the rules engine's
// result wins, even over a Result tag carried in from an earlier encoding;
// while it is ongoing an explicit Result tag (e.g. an accepted draw offer
// or a loaded resignation) is kept.
func (g *Game) EncodePGN() string {
	tags := maps.Clone(g.tags)
	if result := g.Result(); result != Ongoing {
		tags[pgn.TagResult] = result
	} else if _, ok := tags[pgn.TagResult]; !ok {
		tags[pgn.TagResult] = Ongoing
	}
	g.stats.IncCounter(stats.MetricGamesEncoded, 1)
	return pgn.Encode(&pgn.Game{
		Tags:     tags,
		Position: g.Position(),
		Comments: g.comments,
	})
}

// WritePGN writes the PGN encoding to w.
func (g *Game) WritePGN(w io.Writer) error {
	_, err := io.WriteString(w, g.EncodePGN())
	return err
}

// LoadPGN reconstructs a game by replaying the movetext of a single PGN
// game read from r. A malformed header or an illegal token fails the whole
// load; no partial game is returned.
func LoadPGN(r io.Reader, opts ...Option) (*Game, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pgn: %w", err)
	}

	decoded, err := pgn.Decode(string(text))
	if err != nil {
		g.stats.IncCounter(stats.MetricParseErrors, 1)
		return nil, err
	}

	g.adopt(decoded)
	return g, nil
}

// adopt replaces the game's state with a decoded PGN game. Tags set through
// options survive unless the decoded game carries the same tag.
func (g *Game) adopt(decoded *pgn.Game) {
	g.history = decoded.Positions
	g.comments = decoded.Comments
	for name, value := range decoded.Tags {
		g.tags[name] = value
	}
	g.stats.IncCounter(stats.MetricGamesDecoded, 1)
	g.logger.Debug("game loaded",
		zap.Int("plies", g.Ply()),
		zap.String("result", decoded.Result()),
	)
}

// PGNReader reads consecutive games from a multi-game PGN stream, such as a
// tournament export or an opening database.
type PGNReader struct {
	reader *pgn.Reader
	opts   []Option
}

// NewPGNReader returns a reader over r. The options are applied to every
// game it produces.
func NewPGNReader(r io.Reader, opts ...Option) *PGNReader {
	return &PGNReader{reader: pgn.NewReader(r), opts: opts}
}

// ReadGame decodes and replays the next game in the stream. It returns
// io.EOF once the stream is exhausted. A malformed game fails only that
// call; the reader stays positioned on the game after it.
func (r *PGNReader) ReadGame() (*Game, error) {
	decoded, err := r.reader.ReadGame()
	if err != nil {
		return nil, err
	}

	g, err := New(r.opts...)
	if err != nil {
		return nil, err
	}
	g.adopt(decoded)
	return g, nil
}

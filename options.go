package arbiter

import (
	"go.uber.org/zap"

	"github.com/discochess/arbiter/internal/pgn"
	"github.com/discochess/arbiter/internal/stats"
)

// Option configures a Game.
type Option interface {
	apply(*options)
}

// options holds the game configuration.
type options struct {
	logger    *zap.Logger
	stats     stats.Collector
	cacheSize int
	tags      map[string]string
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		stats:  stats.NewNoop(),
		tags:   make(map[string]string),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithMoveCache enables LRU memoization of legal-move sets for up to
// capacity positions. Useful for sessions that repeatedly query the same
// position. Disabled by default.
func WithMoveCache(capacity int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = capacity
	})
}

// WithTag sets a PGN tag on the game.
func WithTag(name, value string) Option {
	return optionFunc(func(o *options) {
		o.tags[name] = value
	})
}

// WithPlayers sets the White and Black PGN tags.
func WithPlayers(white, black string) Option {
	return optionFunc(func(o *options) {
		o.tags[pgn.TagWhite] = white
		o.tags[pgn.TagBlack] = black
	})
}

// WithGameMode sets the GameMode PGN tag describing how the game is being
// played, e.g. "blitz" or "correspondence".
func WithGameMode(mode string) Option {
	return optionFunc(func(o *options) {
		o.tags[pgn.TagGameMode] = mode
	})
}

// WithEvent sets the Event and Site PGN tags.
func WithEvent(event, site string) Option {
	return optionFunc(func(o *options) {
		o.tags[pgn.TagEvent] = event
		o.tags[pgn.TagSite] = site
	})
}

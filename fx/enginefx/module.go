// Package enginefx provides an fx module wiring a game factory with
// logger-backed stats. Hosts running many concurrent games inject the
// factory and create one Game per session.
package enginefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/arbiter"
	"github.com/discochess/arbiter/internal/stats"
	"github.com/discochess/arbiter/internal/stats/logger"
)

// Config holds configuration for the game factory.
type Config struct {
	// MoveCacheSize is the number of positions whose legal-move sets each
	// game memoizes. Zero disables the cache.
	MoveCacheSize int
}

// Module provides a game factory.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("arbiter",
	fx.Provide(
		newStatsCollector,
		newFactory,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("arbiter.stats"))
}

// Factory creates games sharing a logger and stats collector.
type Factory struct {
	config    Config
	logger    *zap.Logger
	collector stats.Collector
}

// NewGame creates a game at the initial position. Per-game options like
// WithPlayers are layered on top of the factory's shared configuration.
func (f *Factory) NewGame(opts ...arbiter.Option) (*arbiter.Game, error) {
	base := []arbiter.Option{
		arbiter.WithLogger(f.logger.Named("arbiter")),
		arbiter.WithStats(f.collector),
	}
	if f.config.MoveCacheSize > 0 {
		base = append(base, arbiter.WithMoveCache(f.config.MoveCacheSize))
	}
	return arbiter.New(append(base, opts...)...)
}

// Params holds dependencies for creating the factory.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided factory.
type Result struct {
	fx.Out

	Factory *Factory
}

func newFactory(p Params) (Result, error) {
	return Result{Factory: &Factory{
		config:    p.Config,
		logger:    p.Logger,
		collector: p.Collector,
	}}, nil
}

// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Game metrics.
	MetricMovesPlayed     = "arbiter_moves_played_total"
	MetricMovesUndone     = "arbiter_moves_undone_total"
	MetricIllegalAttempts = "arbiter_illegal_moves_total"
	MetricLegalMoveGens   = "arbiter_legal_move_generations_total"

	// Notation metrics.
	MetricGamesEncoded = "arbiter_pgn_games_encoded_total"
	MetricGamesDecoded = "arbiter_pgn_games_decoded_total"
	MetricParseErrors  = "arbiter_pgn_parse_errors_total"

	// Move-cache metrics.
	MetricCacheHits   = "arbiter_movecache_hits_total"
	MetricCacheMisses = "arbiter_movecache_misses_total"
	MetricCacheSize   = "arbiter_movecache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}

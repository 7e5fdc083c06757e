// Package movecache memoizes legal-move sets keyed by position key.
// Legality filtering simulates every pseudo-legal move, so sessions that
// repeatedly query the same position (rendering, input validation, opponent
// selection) benefit from a small cache.
package movecache

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/discochess/arbiter/chess"
)

// Cache stores legal-move sets by position key.
type Cache interface {
	Get(key uint64) ([]chess.Move, bool)
	Add(key uint64, moves []chess.Move)
	Len() int
}

// Compile-time check that LRU implements Cache.
var _ Cache = (*LRU)(nil)

// LRU is a fixed-capacity cache with least-recently-used eviction.
type LRU struct {
	cache *lru.Cache[uint64, []chess.Move]
}

// NewLRU creates an LRU cache holding up to capacity positions.
func NewLRU(capacity int) (*LRU, error) {
	c, err := lru.New[uint64, []chess.Move](capacity)
	if err != nil {
		return nil, err
	}
	return &LRU{cache: c}, nil
}

// Get returns a copy of the cached move set for key, if present. Copies keep
// cached entries immutable even if callers sort or filter the result.
func (l *LRU) Get(key uint64) ([]chess.Move, bool) {
	moves, ok := l.cache.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(moves), true
}

// Add stores a copy of the move set under key.
func (l *LRU) Add(key uint64, moves []chess.Move) {
	l.cache.Add(key, slices.Clone(moves))
}

// Len returns the number of cached positions.
func (l *LRU) Len() int {
	return l.cache.Len()
}

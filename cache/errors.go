package cache

import "errors"

// Sentinel errors surfaced by the cache package.
var (
	// ErrEmptyGraphRejected indicates an attempt to persist an envelope
	// whose node or edge count is zero.
	ErrEmptyGraphRejected = errors.New("cache: refusing to persist an empty graph")

	// ErrCacheUnreadable indicates a cache I/O failure distinct from a
	// plain miss (e.g. the directory itself is unreadable). Callers treat
	// this the same as a miss: it is logged, never fatal.
	ErrCacheUnreadable = errors.New("cache: unreadable")
)

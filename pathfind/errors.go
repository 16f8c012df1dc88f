package pathfind

import "errors"

// Sentinel errors returned by the pathfind package. Topology failures (no
// path exists, target unreachable) are never represented as errors; the
// algorithms report them as found = false. These cover only malformed
// calls.
var (
	// ErrSourceNotFound indicates the requested source node id is absent
	// from the graph.
	ErrSourceNotFound = errors.New("pathfind: source node not found")

	// ErrTargetNotFound indicates a requested target node id is absent
	// from the graph.
	ErrTargetNotFound = errors.New("pathfind: target node not found")

	// ErrNilGraph indicates a nil *graph.Graph was passed to a search.
	ErrNilGraph = errors.New("pathfind: graph is nil")
)

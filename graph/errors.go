package graph

import "errors"

// Sentinel errors surfaced by the graph package. Callers branch with
// errors.Is, never string comparison.
var (
	// ErrInvalidCoordinates indicates a centre latitude/longitude outside
	// valid geodetic range was supplied to Build.
	ErrInvalidCoordinates = errors.New("graph: invalid coordinates")

	// ErrEmptyGraph indicates a build produced zero nodes or zero edges —
	// "no data for this area", not a valid-looking empty graph.
	ErrEmptyGraph = errors.New("graph: no walkable ways produced a graph for this area")

	// ErrNodeNotFound indicates a lookup referenced a node id absent from
	// the graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a lookup referenced an edge id absent from
	// the graph.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

package loop

import "errors"

// Sentinel errors returned by the loop generator.
var (
	// ErrNoAccessibleStart indicates Phase 1 found no graph node near the
	// requested coordinates (an empty graph, in practice — NearestNode
	// only fails that way).
	ErrNoAccessibleStart = errors.New("loop: no accessible start node")

	// ErrNoViableLoops indicates that no exploration reached a turn-back
	// node, or that every candidate was discarded in Phases 4-6 (no return
	// path, excess overlap, failed provenance validation, or a total
	// distance outside the tolerance band).
	ErrNoViableLoops = errors.New("loop: no viable loops found")

	// ErrInvalidTargetDistance indicates a non-positive target distance
	// was requested.
	ErrInvalidTargetDistance = errors.New("loop: target distance must be positive")

	// ErrInvalidCoordinates indicates a start latitude/longitude outside
	// valid geodetic range.
	ErrInvalidCoordinates = errors.New("loop: start coordinates out of range")

	// ErrTimeout indicates the wall-clock budget drained before any loop
	// was validated. When the drain happens after at least one loop
	// survived, Generate returns those loops with DebugRecord.TimedOut
	// set instead of this error.
	ErrTimeout = errors.New("loop: time budget exhausted before any loop was validated")
)

// Package geo provides pure, total geodetic primitives used throughout the
// route-loop engine: great-circle distance and bearing between coordinates,
// bounding boxes over point sets, point-to-segment distance, and the scalar
// scoring helpers shared by the classifier and the loop generator.
//
// Every function in this package is stateless and side-effect free; it
// imports no other package of this module. Coordinates
// are represented with github.com/paulmach/orb's Point type ([lon, lat], in
// that order — orb's convention, not this package's) so that graph and cache
// code can share one coordinate representation and compute bounding boxes
// with orb.MultiPoint.Bound() instead of a hand-rolled min/max scan.
//
// Distances are always in metres, bearings always in degrees normalised to
// [0, 360), and every scalar scorer clamps its result to [0, 1] rather than
// returning an out-of-range value.
package geo

import "errors"

// ErrEmptyInput indicates that a function requiring at least one coordinate
// was given an empty set.
var ErrEmptyInput = errors.New("geo: empty input")

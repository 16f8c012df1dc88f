package geo

import "github.com/paulmach/orb"

// BoundingBox returns the smallest axis-aligned bound enclosing every point
// in pts. A single-point set returns a degenerate bound whose min and max
// coincide at that point. An empty set fails with ErrEmptyInput rather than
// silently returning a zero-value bound.
//
// Complexity: O(n).
func BoundingBox(pts []orb.Point) (orb.Bound, error) {
	if len(pts) == 0 {
		return orb.Bound{}, ErrEmptyInput
	}

	return orb.MultiPoint(pts).Bound(), nil
}

// North, South, East and West read the named edge of a bound using the
// engine's lat/lon naming (orb.Bound stores Min/Max as [lon, lat] pairs).
func North(b orb.Bound) float64 { return b.Max[1] }
func South(b orb.Bound) float64 { return b.Min[1] }
func East(b orb.Bound) float64  { return b.Max[0] }
func West(b orb.Bound) float64  { return b.Min[0] }

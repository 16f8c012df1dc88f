package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// PolygonArea returns the approximate geodesic area, in square metres,
// enclosed by the given ring of points. The ring need not be explicitly
// closed; fewer than three distinct points enclose nothing and return 0.
//
// Complexity: O(n).
func PolygonArea(ring []orb.Point) float64 {
	if len(ring) < 3 {
		return 0
	}

	r := make(orb.Ring, 0, len(ring)+1)
	r = append(r, ring...)
	if !r.Closed() {
		r = append(r, r[0])
	}

	return math.Abs(orbgeo.Area(r))
}

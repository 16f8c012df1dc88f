package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// PointToSegmentDistance returns the shortest great-circle distance in
// metres from p to the segment [a, b].
//
// It returns exactly zero when p lies on the segment. A degenerate
// zero-length segment (a == b) is treated as a single point, so the result
// is simply the point-to-endpoint distance.
//
// The segment is treated as locally flat (an equirectangular projection
// about its own midpoint) before projecting p onto it; this is an
// approximation that is accurate to well under a metre for the short,
// city-scale way segments this engine operates on, and is the same
// flattening approach the graph builder already relies on implicitly when
// treating OSM way segments as straight lines between consecutive nodes.
//
// Complexity: O(1).
func PointToSegmentDistance(p, a, b orb.Point) float64 {
	if a == b {
		return Haversine(p, a)
	}

	// Project onto a local planar frame centred at the segment midpoint,
	// scaling longitude by cos(latitude) so that one unit of x and one unit
	// of y are both approximately one metre of great-circle distance.
	origin := Midpoint(a, b)
	cosLat := math.Cos(degToRad(Lat(origin)))

	toXY := func(pt orb.Point) (float64, float64) {
		x := (Lon(pt) - Lon(origin)) * cosLat * (math.Pi / 180) * EarthRadiusMeters
		y := (Lat(pt) - Lat(origin)) * (math.Pi / 180) * EarthRadiusMeters

		return x, y
	}

	px, py := toXY(p)
	ax, ay := toXY(a)
	bx, by := toXY(b)

	abx, aby := bx-ax, by-ay
	apx, apy := px-ax, py-ay

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return Haversine(p, a)
	}

	t := (apx*abx + apy*aby) / lenSq
	t = Clamp01(t)

	closestX := ax + t*abx
	closestY := ay + t*aby

	dx := px - closestX
	dy := py - closestY

	return math.Hypot(dx, dy)
}

// SegmentsIntersect reports whether the closed segments [p1,p2] and [p3,p4]
// cross or touch, using a standard orientation test on their planar projection
// (adequate at the short scales this engine's ways operate on — see
// PointToSegmentDistance for the same flattening rationale). Collinear
// overlapping segments are reported as intersecting.
//
// Complexity: O(1).
func SegmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}

	return false
}

// orientation returns 0 for collinear, 1 for clockwise, 2 for
// counter-clockwise, using raw lon/lat as planar coordinates (sign of the
// cross product is scale-invariant, so no projection is needed here).
func orientation(p, q, r orb.Point) int {
	val := (Lat(q)-Lat(p))*(Lon(r)-Lon(q)) - (Lon(q)-Lon(p))*(Lat(r)-Lat(q))
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies on segment [p, r], given that p, q, r
// are already known to be collinear.
func onSegment(p, q, r orb.Point) bool {
	return Lon(q) <= math.Max(Lon(p), Lon(r)) && Lon(q) >= math.Min(Lon(p), Lon(r)) &&
		Lat(q) <= math.Max(Lat(p), Lat(r)) && Lat(q) >= math.Min(Lat(p), Lat(r))
}

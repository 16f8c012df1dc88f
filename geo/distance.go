package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean radius of the Earth used by every
// great-circle computation in this package.
const EarthRadiusMeters = 6371008.8

// Haversine returns the great-circle distance between a and b in metres.
// Identical points return exactly zero.
//
// Complexity: O(1).
func Haversine(a, b orb.Point) float64 {
	if a == b {
		return 0
	}

	lat1, lon1 := degToRad(Lat(a)), degToRad(Lon(a))
	lat2, lon2 := degToRad(Lat(b)), degToRad(Lon(b))

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	// Clamp for float rounding near antipodes, where h can drift slightly
	// above 1 and make Asin return NaN.
	h = Clamp(h, 0, 1)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Bearing returns the initial bearing in degrees, normalised to [0, 360),
// for the great-circle path from a to b. Bearing is undefined for
// coincident points and returns 0 in that case.
//
// Complexity: O(1).
func Bearing(a, b orb.Point) float64 {
	if a == b {
		return 0
	}

	lat1, lon1 := degToRad(Lat(a)), degToRad(Lon(a))
	lat2, lon2 := degToRad(Lat(b)), degToRad(Lon(b))
	dLon := lon2 - lon1

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	theta := math.Atan2(y, x)
	deg := radToDeg(theta)

	return math.Mod(deg+360, 360)
}

// Midpoint returns the geographic midpoint of the great-circle path between
// a and b.
//
// Complexity: O(1).
func Midpoint(a, b orb.Point) orb.Point {
	lat1, lon1 := degToRad(Lat(a)), degToRad(Lon(a))
	lat2, lon2 := degToRad(Lat(b)), degToRad(Lon(b))
	dLon := lon2 - lon1

	bx := math.Cos(lat2) * math.Cos(dLon)
	by := math.Cos(lat2) * math.Sin(dLon)

	latM := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lonM := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Coordinate(radToDeg(latM), radToDeg(lonM))
}

// AngularDiversity returns the smaller of the two signed differences between
// two bearings (each assumed already normalised to [0, 360)), i.e. the
// interior angle between them. The result is always in [0, 180].
//
// Complexity: O(1).
func AngularDiversity(bearingA, bearingB float64) float64 {
	diff := math.Mod(math.Abs(bearingA-bearingB), 360)
	if diff > 180 {
		diff = 360 - diff
	}

	return diff
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

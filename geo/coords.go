package geo

import "github.com/paulmach/orb"

// Coordinate builds an orb.Point from latitude/longitude in the natural
// (lat, lon) argument order; orb itself stores points as [lon, lat].
func Coordinate(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// Lat returns the latitude component of an orb.Point.
func Lat(p orb.Point) float64 { return p[1] }

// Lon returns the longitude component of an orb.Point.
func Lon(p orb.Point) float64 { return p[0] }

// InRange reports whether lat/lon fall within valid geodetic bounds.
func InRange(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Clamp01 restricts x to the closed interval [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

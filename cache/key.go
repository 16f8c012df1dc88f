package cache

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// latLonPrecision and radiusPrecision fix the key derivation:
// centre lat/lon rounded to six decimals, radius rounded to two.
const (
	latLonPrecision = 1e6
	radiusPrecision = 1e2
)

// Key derives the deterministic cache key for an Area: round each field to
// its contract precision, format them into one canonical string, and hash
// that string with xxhash for a short, collision-resistant file-name-safe
// token.
//
// Complexity: O(1).
func Key(a Area) string {
	lat := round(a.CenterLat, latLonPrecision)
	lon := round(a.CenterLon, latLonPrecision)
	radius := round(a.RadiusKM, radiusPrecision)

	canonical := fmt.Sprintf("%.6f,%.6f,%.2f", lat, lon, radius)
	sum := xxhash.Sum64String(canonical)

	return fmt.Sprintf("%016x", sum)
}

func round(v, precision float64) float64 {
	return math.Round(v*precision) / precision
}

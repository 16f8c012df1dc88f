package graph

import "fmt"

// sixDecimalPrecision is the rounding precision node ids are derived at.
const sixDecimalPrecision = 1e6

// CanonicalNodeID derives a stable node id from a coordinate rounded to
// six decimal places (roughly 0.11m at the equator), so that two OSM nodes
// resolving to the same rounded coordinate collapse onto one graph node.
//
// Complexity: O(1).
func CanonicalNodeID(lat, lon float64) string {
	return fmt.Sprintf("%.6f,%.6f", round6(lat), round6(lon))
}

func round6(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*sixDecimalPrecision+0.5)) / sixDecimalPrecision
	}

	return float64(int64(v*sixDecimalPrecision-0.5)) / sixDecimalPrecision
}

// CanonicalEdgeID derives a stable edge id from two node ids by ordering
// them lexicographically, so the same pair of endpoints always produces
// the same id regardless of traversal direction; both endpoint ids appear
// in the edge identifier exactly once.
//
// Complexity: O(n) in the length of the ids (string comparison).
func CanonicalEdgeID(a, b string) string {
	if a <= b {
		return a + "|" + b
	}

	return b + "|" + a
}

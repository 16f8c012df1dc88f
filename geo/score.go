package geo

import "math"

// DistanceAccuracy scores how close an actual distance is to a target
// distance, 1 meaning exact and 0 meaning off by the full target distance
// or more. Result is clamped to [0, 1].
//
// Complexity: O(1).
func DistanceAccuracy(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}

	return Clamp01(1 - math.Abs(actual-target)/target)
}

// PathUniqueness scores the fraction of distinct edges in a path, 1 meaning
// every edge id appears once. Result is clamped to [0, 1].
//
// Complexity: O(n).
func PathUniqueness(edgeIDs []string) float64 {
	if len(edgeIDs) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(edgeIDs))
	for _, id := range edgeIDs {
		seen[id] = struct{}{}
	}

	return Clamp01(float64(len(seen)) / float64(len(edgeIDs)))
}

// SurfaceQuality scores a mix of surface classes as paved share plus half
// the mixed share, rewarding paved ways and partially crediting mixed ones.
// Result is clamped to [0, 1].
//
// Complexity: O(1).
func SurfaceQuality(pavedFraction, mixedFraction float64) float64 {
	return Clamp01(pavedFraction + 0.5*mixedFraction)
}

// SceneryVariety scores how many distinct "scenery" categories (e.g.
// surface classes, highway classes) a path passes through relative to a
// configured maximum worth crediting. Result is clamped to [0, 1].
//
// Complexity: O(1).
func SceneryVariety(distinctCategories, maxCredited int) float64 {
	if maxCredited <= 0 {
		return 0
	}

	return Clamp01(float64(distinctCategories) / float64(maxCredited))
}

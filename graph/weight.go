package graph

import "github.com/routeloop/engine/classify"

// MinEdgeWeight is the floor every computed edge weight is clamped to:
// one metre, so no edge is ever free to traverse.
const MinEdgeWeight = 1.0

// EdgeWeight computes the scalar pathfinding weight of an edge: weight
// begins at metric distance; paved multiplies by (1 - surface_weight),
// unpaved by (1 + surface_weight), mixed is unchanged; dangerous highway
// multiplies by (1 + safety_weight); popular path multiplies by
// (1 - popularity_weight); final weight is clamped to >= MinEdgeWeight.
func EdgeWeight(distance float64, surface classify.Surface, dangerous, popular bool, c *classify.Classifier) float64 {
	weights := classify.DefaultScoringWeights()
	if c != nil {
		weights = c.Weights()
	}

	w := distance

	switch surface {
	case classify.SurfacePaved:
		w *= 1 - weights.Surface
	case classify.SurfaceUnpaved:
		w *= 1 + weights.Surface
	}

	if dangerous {
		w *= 1 + weights.Safety
	}

	if popular {
		w *= 1 - weights.Popularity
	}

	if w < MinEdgeWeight {
		w = MinEdgeWeight
	}

	return w
}

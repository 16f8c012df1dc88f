package pathfind

import "github.com/routeloop/engine/graph"

// Avoid composes base with a penalty on members of edges: edge.weight *
// penalty on members, otherwise edge.weight. The conventional penalty is
// 1000. Used directly, or layered under Config via WithAvoidSet.
func Avoid(base WeightFunc, edges map[string]bool, penalty float64) WeightFunc {
	if base == nil {
		base = DefaultWeightFunc
	}

	return func(e *graph.Edge) float64 {
		w := base(e)
		if edges[e.ID] {
			return w * penalty
		}

		return w
	}
}

// Prefer composes base with a discount on members of edges: edge.weight *
// bonus on members. The conventional bonus is 0.5.
func Prefer(base WeightFunc, edges map[string]bool, bonus float64) WeightFunc {
	if base == nil {
		base = DefaultWeightFunc
	}

	return func(e *graph.Edge) float64 {
		w := base(e)
		if edges[e.ID] {
			return w * bonus
		}

		return w
	}
}

// Used composes base with a penalty on edges already traversed elsewhere
// in a loop: edge.weight * penalty on already-traversed edges, with 5 the
// conventional penalty. Distinct from Avoid only in its intent:
// discouraging re-use, not forbidding it.
func Used(base WeightFunc, edges map[string]bool, penalty float64) WeightFunc {
	return Avoid(base, edges, penalty)
}

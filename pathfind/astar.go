package pathfind

import "github.com/routeloop/engine/graph"

// AStar computes the shortest path from source to target in g using an
// admissible heuristic to order the open set: f-score =
// g-score (accumulated weight) + h (cfg.Heuristic, default great-circle
// distance to target). The default heuristic is admissible when weight is
// distance; a custom heuristic must stay admissible for the result to
// remain optimal.
//
// Complexity: O((V + E) log V).
func AStar(g *graph.Graph, source, target string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Result{}, ErrSourceNotFound
	}

	targetNode, ok := g.Node(target)
	if !ok {
		return Result{}, ErrTargetNotFound
	}

	cfg := newConfig(opts...)
	heuristic := cfg.Heuristic
	if heuristic == nil {
		heuristic = DefaultHeuristic
	}

	h := func(currentID string) float64 {
		cur, ok := g.Node(currentID)
		if !ok {
			return 0
		}

		return heuristic(cur, targetNode)
	}

	r := newRunner(g, cfg, source, target, nil, h)
	r.run(source)

	return r.resultTo(source, target), nil
}

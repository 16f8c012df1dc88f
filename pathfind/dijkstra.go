package pathfind

import "github.com/routeloop/engine/graph"

// Dijkstra computes the shortest path from source to target in g using
// non-negative edge weights. Termination: target reached,
// frontier exhausted, or the exploration cap reached. A path that does not
// exist is reported as Result{Found: false}, never as an error.
//
// Complexity: O((V + E) log V).
func Dijkstra(g *graph.Graph, source, target string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Result{}, ErrSourceNotFound
	}
	if !g.HasNode(target) {
		return Result{}, ErrTargetNotFound
	}

	cfg := newConfig(opts...)
	r := newRunner(g, cfg, source, target, nil, nil)
	r.run(source)

	return r.resultTo(source, target), nil
}

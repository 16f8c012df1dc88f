package pathfind

import "github.com/routeloop/engine/graph"

// MultiTarget runs a single Dijkstra exploration from source that
// terminates once every id in targets has been found or the exploration
// cap is reached — one exploration, many targets. Returns a mapping
// from each found target to its Result; targets never reached are absent
// from the map.
//
// Complexity: O((V + E) log V).
func MultiTarget(g *graph.Graph, source string, targets []string, opts ...Option) (map[string]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	pending := make(map[string]bool, len(targets))
	for _, id := range targets {
		if !g.HasNode(id) {
			return nil, ErrTargetNotFound
		}
		if id != source {
			pending[id] = true
		}
	}

	cfg := newConfig(opts...)
	r := newRunner(g, cfg, source, "", pending, nil)
	r.run(source)

	results := make(map[string]Result, len(targets))
	for _, id := range targets {
		res := r.resultTo(source, id)
		if res.Found {
			results[id] = res
		}
	}

	return results, nil
}

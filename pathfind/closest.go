package pathfind

import (
	"container/heap"
	"math"

	"github.com/routeloop/engine/graph"
)

// ClosestToDistance explores from source and returns the path to whichever
// reached node's metric distance lands closest to targetDistance, among
// those within the tolerance band. If no
// node within the tolerance is ever reached, Result.Found is false.
//
// Complexity: O((V + E) log V).
func ClosestToDistance(g *graph.Graph, source string, targetDistance, tolerance float64, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasNode(source) {
		return Result{}, ErrSourceNotFound
	}

	cfg := newConfig(opts...)
	r := newRunner(g, cfg, source, "", nil, nil)

	best := ""
	bestDiff := math.MaxFloat64

	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchItem{id: source})

	for r.pq.Len() > 0 {
		if cfg.ExplorationCap > 0 && r.explored >= cfg.ExplorationCap {
			break
		}

		item := heap.Pop(&r.pq).(*searchItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.explored++

		diff := math.Abs(r.metric[u] - targetDistance)
		if diff <= tolerance && diff < bestDiff {
			bestDiff = diff
			best = u
		}

		r.relax(u)
	}

	if best == "" {
		return Result{Found: false, Explored: r.explored}, nil
	}

	return r.resultTo(source, best), nil
}

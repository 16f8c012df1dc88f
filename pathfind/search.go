// search.go holds the runner shared by Dijkstra and AStar: a
// lazy-decrease-key binary heap over (node, priority) pairs, a cost map,
// and a predecessor map. The only difference between the two callers is
// the priority key pushed onto the heap — plain accumulated weight for
// Dijkstra, weight plus heuristic for AStar — and an optional per-node
// heuristic lookup, so one runner serves both.
package pathfind

import (
	"container/heap"

	"github.com/routeloop/engine/graph"
)

type searchItem struct {
	id       string
	priority float64 // heap order key
	cost     float64 // accumulated weight (g-score)
	metric   float64 // accumulated metric distance
}

type searchPQ []*searchItem

func (pq searchPQ) Len() int            { return len(pq) }
func (pq searchPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq searchPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *searchPQ) Push(x interface{}) { *pq = append(*pq, x.(*searchItem)) }
func (pq *searchPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *graph.Graph
	cfg     Config
	target  string // empty for multi-target / open-ended searches
	targets map[string]bool

	heuristic func(currentID string) float64 // nil for plain Dijkstra

	cost     map[string]float64
	metric   map[string]float64
	visited  map[string]bool
	prevNode map[string]string
	prevEdge map[string]string
	pq       searchPQ
	explored int
}

func newRunner(g *graph.Graph, cfg Config, source, target string, targets map[string]bool, heuristic func(string) float64) *runner {
	return &runner{
		g:         g,
		cfg:       cfg,
		target:    target,
		targets:   targets,
		heuristic: heuristic,
		cost:      map[string]float64{source: 0},
		metric:    map[string]float64{source: 0},
		visited:   make(map[string]bool),
		prevNode:  make(map[string]string),
		prevEdge:  make(map[string]string),
	}
}

func (r *runner) run(source string) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &searchItem{id: source, priority: r.priorityFor(source, 0)})

	for r.pq.Len() > 0 {
		if r.cfg.ExplorationCap > 0 && r.explored >= r.cfg.ExplorationCap {
			return
		}

		item := heap.Pop(&r.pq).(*searchItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.explored++

		if r.target != "" && u == r.target {
			return
		}
		if r.targets != nil {
			delete(r.targets, u)
			if len(r.targets) == 0 {
				return
			}
		}

		r.relax(u)
	}
}

func (r *runner) priorityFor(nodeID string, cost float64) float64 {
	if r.heuristic == nil {
		return cost
	}

	return cost + r.heuristic(nodeID)
}

func (r *runner) relax(u string) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return
	}

	for _, e := range neighbors {
		v := e.OtherEnd(u)
		if r.visited[v] {
			continue
		}

		w := r.cfg.effectiveWeight(e)
		newCost := r.cost[u] + w
		newMetric := r.metric[u] + e.Distance

		if r.cfg.MaxDistance > 0 && newMetric > r.cfg.MaxDistance {
			continue
		}

		if existing, ok := r.cost[v]; ok && newCost >= existing {
			continue
		}

		r.cost[v] = newCost
		r.metric[v] = newMetric
		r.prevNode[v] = u
		r.prevEdge[v] = e.ID

		heap.Push(&r.pq, &searchItem{id: v, priority: r.priorityFor(v, newCost)})
	}
}

func (r *runner) resultTo(source, target string) Result {
	cost, ok := r.cost[target]
	if !ok {
		return Result{Found: false, Explored: r.explored}
	}

	nodes, edges := reconstructPath(r.prevNode, r.prevEdge, source, target)

	return Result{
		Path:     nodes,
		Edges:    edges,
		Distance: r.metric[target],
		Weight:   cost,
		Found:    true,
		Explored: r.explored,
	}
}

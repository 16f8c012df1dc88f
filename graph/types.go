package graph

import (
	"sort"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/routeloop/engine/classify"
)

// Node is a graph vertex identified by a stable id derived from its
// rounded (lat, lon) at six-decimal precision. Created by Build,
// never mutated after the graph is returned.
type Node struct {
	ID        string
	Lat       float64
	Lon       float64
	Elevation *float64 // nil when the source data carried no elevation tag
	Neighbors []string  // deduplicated neighbouring node ids
}

// Point returns the node's coordinate as an orb.Point for use with the geo
// package.
func (n *Node) Point() orb.Point {
	return orb.Point{n.Lon, n.Lat}
}

// Edge is an undirected weighted link between two nodes. Its id
// is a canonical ordering of its two endpoints so that the same pair of
// nodes always produces the same edge id regardless of traversal
// direction.
type Edge struct {
	ID           string
	From         string
	To           string
	Distance     float64 // metres
	Surface      classify.Surface
	HighwayClass string
	WayID        string // originating OSM way id; never empty on a valid edge
	Quality      float64 // in [0, 100]
	Weight       float64 // scalar used by pathfinding
	Tags         map[string]string
}

// OtherEnd returns the endpoint of e that is not nodeID. If nodeID is
// neither endpoint it returns e.From; it does not check or panic.
func (e *Edge) OtherEnd(nodeID string) string {
	if e.From == nodeID {
		return e.To
	}

	return e.From
}

// Meta carries summary statistics about a built graph.
type Meta struct {
	TotalNodes         int
	TotalEdges         int
	BuildTime          time.Duration
	SourceElementCount int
}

// Graph is the aggregate route-loop data model: a mapping from node id to
// Node, a mapping from edge id to Edge, the bounding box covering every
// node, and build metadata.
//
// Once returned by Build, a Graph is treated as immutable and is safe for
// concurrent reads by many callers. Every accessor takes a read lock on
// mu; Build and FromSnapshot fill the maps before the graph is returned
// and do not lock.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	edges map[string]*Edge
	bbox  orb.Bound
	meta  Meta
}

// newGraph returns an empty Graph ready for Build to populate.
func newGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]

	return e, ok
}

// HasNode reports whether id names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Node(id)

	return ok
}

// HasEdge reports whether id names an edge in the graph.
func (g *Graph) HasEdge(id string) bool {
	_, ok := g.Edge(id)

	return ok
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NodeIDs returns every node id in the graph, sorted ascending for
// deterministic iteration.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// EdgeIDs returns every edge id in the graph, sorted ascending for
// deterministic iteration.
func (g *Graph) EdgeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns every edge incident to nodeID, sorted by edge id
// ascending.
func (g *Graph) Neighbors(nodeID string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[nodeID]
	if !ok {
		return nil, ErrNodeNotFound
	}

	edges := make([]*Edge, 0, len(n.Neighbors))
	for _, neighborID := range n.Neighbors {
		id := CanonicalEdgeID(nodeID, neighborID)
		if e, ok := g.edges[id]; ok {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	return edges, nil
}

// BoundingBox returns the bound covering every node in the graph.
func (g *Graph) BoundingBox() orb.Bound {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.bbox
}

// Meta returns a copy of the graph's build metadata.
func (g *Graph) Meta() Meta {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.meta
}

// NearestNode returns the id of the node closest to (lat, lon) by
// great-circle distance, used to anchor loop generation at the requested
// start point — always the genuinely closest node, never whichever id
// happens to iterate first. Returns ErrEmptyGraph if the graph has no
// nodes.
func (g *Graph) NearestNode(lat, lon float64, distanceFn func(a, b orb.Point) float64) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) == 0 {
		return "", ErrEmptyGraph
	}

	target := orb.Point{lon, lat}

	best := ""
	bestDist := -1.0
	// Iterate sorted ids so ties break deterministically.
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		n := g.nodes[id]
		d := distanceFn(target, n.Point())
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = id
		}
	}

	return best, nil
}

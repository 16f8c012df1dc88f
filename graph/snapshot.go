package graph

import (
	"sort"

	"github.com/paulmach/orb"
)

// Snapshot is a flat, serializable view of a Graph: slices instead of maps,
// suitable for encoding to JSON or any other on-disk or wire format without
// reaching into the Graph's private fields. Used by the cache package to
// persist and reconstitute graphs.
type Snapshot struct {
	Nodes []Node    `json:"nodes"`
	Edges []Edge    `json:"edges"`
	BBox  orb.Bound `json:"bbox"`
	Meta  Meta      `json:"meta"`
}

// Snapshot returns a flat copy of g suitable for serialization.
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodes))
	for _, id := range sortedKeys(g.nodes) {
		nodes = append(nodes, *g.nodes[id])
	}

	edges := make([]Edge, 0, len(g.edges))
	for _, id := range sortedEdgeKeys(g.edges) {
		edges = append(edges, *g.edges[id])
	}

	return Snapshot{Nodes: nodes, Edges: edges, BBox: g.bbox, Meta: g.meta}
}

// FromSnapshot reconstructs a Graph from a Snapshot, without re-deriving
// weights or re-running the classifier — the snapshot already carries
// every computed attribute. Fails with ErrEmptyGraph if the snapshot has
// no nodes or no edges, the same invariant Build enforces.
func FromSnapshot(s Snapshot) (*Graph, error) {
	if len(s.Nodes) == 0 || len(s.Edges) == 0 {
		return nil, ErrEmptyGraph
	}

	g := newGraph()
	for i := range s.Nodes {
		n := s.Nodes[i]
		g.nodes[n.ID] = &n
	}
	for i := range s.Edges {
		e := s.Edges[i]
		g.edges[e.ID] = &e
	}
	g.bbox = s.BBox
	g.meta = s.Meta

	return g, nil
}

func sortedKeys(m map[string]*Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func sortedEdgeKeys(m map[string]*Edge) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// assemble.go implements the assembly phase: stitch outbound and return
// paths into one closed walk, compute aggregate metrics, and validate
// strict OSM provenance before a candidate is allowed to survive.
package loop

import (
	"time"

	"github.com/routeloop/engine/classify"
	"github.com/routeloop/engine/graph"
)

// walkingSpeed is the average pace used to estimate a loop's duration.
const walkingSpeed = 1.4 // m/s, roughly 5 km/h

func assemble(g *graph.Graph, c candidate, targetDistance float64) (Loop, bool) {
	if len(c.ReturnNodes) == 0 {
		return Loop{}, false
	}

	nodes := make([]string, 0, len(c.OutboundNodes)+len(c.ReturnNodes)-1)
	nodes = append(nodes, c.OutboundNodes...)
	nodes = append(nodes, c.ReturnNodes[1:]...) // skip duplicated turn-back node

	edges := make([]string, 0, len(c.OutboundEdges)+len(c.ReturnEdges))
	edges = append(edges, c.OutboundEdges...)
	edges = append(edges, c.ReturnEdges...)

	if len(nodes) == 0 || nodes[0] != nodes[len(nodes)-1] {
		return Loop{}, false
	}

	var totalDistance, totalQuality float64
	surfaceDist := make(map[string]float64, 3)
	difficultyDist := make(map[classify.Difficulty]float64, 3)
	for _, id := range edges {
		e, ok := g.Edge(id)
		if !ok || e.WayID == "" {
			return Loop{}, false // strict OSM provenance: unknown edge or no way id
		}
		totalDistance += e.Distance
		totalQuality += e.Quality
		surfaceDist[e.Surface.String()] += e.Distance
		difficultyDist[edgeDifficulty(e)] += e.Distance
	}

	avgQuality := 0.0
	if len(edges) > 0 {
		avgQuality = totalQuality / float64(len(edges))
	}

	mix := make(map[string]float64, len(surfaceDist))
	if totalDistance > 0 {
		for surface, d := range surfaceDist {
			mix[surface] = d / totalDistance
		}
	}

	return Loop{
		Nodes:          nodes,
		Edges:          edges,
		TotalDistance:  totalDistance,
		Duration:       time.Duration(totalDistance / walkingSpeed * float64(time.Second)),
		AvgQuality:     avgQuality,
		AscentMeters:   ascent(g, nodes),
		Bearing:        c.Bearing,
		DirectionIndex: c.DirectionIndex,
		TurnBack:       c.TurnBack,
		Meta: Meta{
			TargetDistance: targetDistance,
			SurfaceMix:     mix,
			Difficulty:     dominantDifficulty(difficultyDist),
		},
	}, true
}

// dominantDifficulty picks the difficulty class covering the most distance,
// tie-broken toward the harder class so a loop is never presented as easier
// than half of it actually is.
func dominantDifficulty(byDistance map[classify.Difficulty]float64) string {
	best := classify.DifficultyMedium
	bestDist := -1.0
	for _, d := range []classify.Difficulty{classify.DifficultyHard, classify.DifficultyMedium, classify.DifficultyEasy} {
		if dist, ok := byDistance[d]; ok && dist > bestDist {
			best = d
			bestDist = dist
		}
	}

	return best.String()
}

// ascent sums max(0, next.Elevation - prev.Elevation) over consecutive path
// nodes, returning zero whenever any node on the path lacks elevation
// data.
func ascent(g *graph.Graph, nodes []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		a, ok1 := g.Node(nodes[i])
		b, ok2 := g.Node(nodes[i+1])
		if !ok1 || !ok2 || a.Elevation == nil || b.Elevation == nil {
			return 0
		}
		if diff := *b.Elevation - *a.Elevation; diff > 0 {
			total += diff
		}
	}

	return total
}

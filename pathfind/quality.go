package pathfind

import (
	"github.com/routeloop/engine/classify"
	"github.com/routeloop/engine/geo"
	"github.com/routeloop/engine/graph"
)

// Quality is a path-quality metric composed of distance accuracy, edge
// uniqueness and surface quality: total score 0.4·accuracy +
// 0.3·uniqueness + 0.3·surface.
type Quality struct {
	DistanceAccuracy float64
	PathUniqueness   float64
	SurfaceQuality   float64
	Score            float64
}

// ScorePath computes the Quality of a path given its edge ids, the source
// graph, and a target distance. Any edge id absent from the graph is
// skipped when computing the surface mix but still counts towards
// PathUniqueness's denominator.
func ScorePath(g *graph.Graph, edgeIDs []string, actualDistance, targetDistance float64) Quality {
	var paved, mixed, total float64

	for _, id := range edgeIDs {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}

		total++
		switch e.Surface {
		case classify.SurfacePaved:
			paved++
		case classify.SurfaceMixed:
			mixed++
		}
	}

	var pavedFrac, mixedFrac float64
	if total > 0 {
		pavedFrac = paved / total
		mixedFrac = mixed / total
	}

	accuracy := geo.DistanceAccuracy(actualDistance, targetDistance)
	uniqueness := geo.PathUniqueness(edgeIDs)
	surface := geo.SurfaceQuality(pavedFrac, mixedFrac)

	return Quality{
		DistanceAccuracy: accuracy,
		PathUniqueness:   uniqueness,
		SurfaceQuality:   surface,
		Score:            0.4*accuracy + 0.3*uniqueness + 0.3*surface,
	}
}

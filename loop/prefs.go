// prefs.go applies the request's surface/difficulty allow-lists and the
// include-secondary flag to the prebuilt graph. Disallowed edges are
// collected into an avoid set consumed by exploration and return-path
// search, penalised rather than excluded so a loop through them remains
// possible when nothing else connects — the same contract the pathfind
// avoid set already carries.
package loop

import (
	"github.com/routeloop/engine/classify"
	"github.com/routeloop/engine/graph"
)

var defaultClassifier = classify.New(classify.DefaultConfig())

// edgeDifficulty recomputes the difficulty class of an edge from its raw
// tag bag. Difficulty is not stored on the edge itself; only the packages
// that present loops to callers need it.
func edgeDifficulty(e *graph.Edge) classify.Difficulty {
	return defaultClassifier.DifficultyClass(classify.Parse(e.Tags), e.Surface)
}

// disallowedEdges scans the graph once and returns the set of edge ids the
// request's preferences rule out. Returns nil when the request carries no
// preferences, so callers can pass the result straight to an avoid-set
// option.
func disallowedEdges(g *graph.Graph, req Request) map[string]bool {
	surfaceFilter := len(req.SurfaceTypes) > 0
	difficultyFilter := len(req.Difficulty) > 0
	secondaryFilter := !req.IncludeSecondary

	if !surfaceFilter && !difficultyFilter && !secondaryFilter {
		return nil
	}

	allowedSurface := make(map[classify.Surface]bool, len(req.SurfaceTypes))
	for _, s := range req.SurfaceTypes {
		allowedSurface[s] = true
	}
	allowedDifficulty := make(map[classify.Difficulty]bool, len(req.Difficulty))
	for _, d := range req.Difficulty {
		allowedDifficulty[d] = true
	}
	secondary := classify.DefaultHighwaySets().Secondary

	disallowed := make(map[string]bool)
	for _, id := range g.EdgeIDs() {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}

		switch {
		case surfaceFilter && !allowedSurface[e.Surface]:
			disallowed[id] = true
		case difficultyFilter && !allowedDifficulty[edgeDifficulty(e)]:
			disallowed[id] = true
		case secondaryFilter && secondary[e.HighwayClass]:
			disallowed[id] = true
		}
	}

	if len(disallowed) == 0 {
		return nil
	}

	return disallowed
}

// returnpath.go implements the return-path phase: for each top-scoring
// candidate, search a return path from the turn-back node back to the
// start, avoiding every edge already used outbound.
package loop

import (
	"context"
	"sort"

	"github.com/routeloop/engine/graph"
	"github.com/routeloop/engine/pathfind"
)

// topCandidates sorts by score descending and keeps the top max(3, k).
func topCandidates(candidates []candidate, k int) []candidate {
	sorted := make([]candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	keep := k
	if keep < 3 {
		keep = 3
	}
	if keep > len(sorted) {
		keep = len(sorted)
	}

	return sorted[:keep]
}

// attachReturnPaths runs Phase 4 over the given candidates, dropping any
// for which no return path exists. The budget is checked between
// searches; when it drains, candidates already attached are kept and the
// rest are abandoned, reported through the timedOut flag.
func attachReturnPaths(ctx context.Context, g *graph.Graph, anchorID string, candidates []candidate, disallowed map[string]bool) (viable []candidate, timedOut bool) {
	viable = make([]candidate, 0, len(candidates))

	for _, c := range candidates {
		select {
		case <-ctx.Done():
			return viable, true
		default:
		}

		avoid := make(map[string]bool, len(c.OutboundEdges)+len(disallowed))
		for id := range disallowed {
			avoid[id] = true
		}
		for _, id := range c.OutboundEdges {
			avoid[id] = true
		}

		res, err := pathfind.AStar(g, c.TurnBack, anchorID, pathfind.WithAvoidSet(avoid))
		if err != nil || !res.Found {
			continue
		}

		c.ReturnNodes = res.Path
		c.ReturnEdges = res.Edges
		viable = append(viable, c)
	}

	return viable, false
}

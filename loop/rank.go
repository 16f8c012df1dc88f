// rank.go implements the final ranking: sort survivors by quality score
// descending and return up to K, alongside the debug record.
package loop

import (
	"sort"

	"github.com/routeloop/engine/graph"
	"github.com/routeloop/engine/pathfind"
)

func rankLoops(g *graph.Graph, loops []Loop, targetDistance float64, k int) []Loop {
	for i := range loops {
		q := pathfind.ScorePath(g, loops[i].Edges, loops[i].TotalDistance, targetDistance)
		loops[i].QualityScore = q.Score
	}

	// Stable sort, tie-broken by direction index ascending then, for an
	// exact tie there, by the lexicographically smallest turn-back node
	// id, so equal scores always come back in the same order.
	sort.SliceStable(loops, func(i, j int) bool {
		if loops[i].QualityScore != loops[j].QualityScore {
			return loops[i].QualityScore > loops[j].QualityScore
		}
		if loops[i].DirectionIndex != loops[j].DirectionIndex {
			return loops[i].DirectionIndex < loops[j].DirectionIndex
		}

		return loops[i].TurnBack < loops[j].TurnBack
	})

	if k < len(loops) {
		loops = loops[:k]
	}

	return loops
}

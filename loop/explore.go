// explore.go implements radial exploration along eight compass
// directions. The explorations share the graph read-only, so they fan out
// concurrently via errgroup.
package loop

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/routeloop/engine/geo"
	"github.com/routeloop/engine/graph"
	"github.com/routeloop/engine/pathfind"
)

// directionalWeight constrains a search to progress along targetBearing:
// edges with neither endpoint inside the compass window around
// targetBearing (± halfAngle) are heavily penalized rather than excluded
// outright, so exploration still makes progress if the window is narrow
// relative to the local street grid.
func directionalWeight(g *graph.Graph, anchor *graph.Node, targetBearing, halfAngle, penalty float64) pathfind.WeightFunc {
	return func(e *graph.Edge) float64 {
		base := e.Weight

		from, ok1 := g.Node(e.From)
		to, ok2 := g.Node(e.To)
		if !ok1 || !ok2 {
			return base
		}

		bFrom := geo.Bearing(anchor.Point(), from.Point())
		bTo := geo.Bearing(anchor.Point(), to.Point())

		withinFrom := geo.AngularDiversity(bFrom, targetBearing) <= halfAngle
		withinTo := geo.AngularDiversity(bTo, targetBearing) <= halfAngle

		if withinFrom || withinTo {
			return base
		}

		return base * penalty
	}
}

// exploreDirection runs one bounded, direction-constrained Dijkstra from
// anchor, capped at 1.5 times half the target distance, and returns as the
// candidate turn-back the reached node whose path distance is closest to
// half the target, at most a quarter of the target away. The frontier of an
// exploration can yield several turn-back candidates; this keeps the
// single best-matching node per direction, the simplest frontier summary
// that still gives every direction a shot.
func exploreDirection(g *graph.Graph, anchorID string, dirIdx int, req Request, disallowed map[string]bool) (candidate, int, error) {
	anchor, ok := g.Node(anchorID)
	if !ok {
		return candidate{}, 0, ErrNoAccessibleStart
	}

	dir := compassDirections[dirIdx]
	halfDistance := req.TargetDistance / 2

	weightFn := directionalWeight(g, anchor, dir.Bearing, req.DirectionHalfAngle, 1000)

	res, err := pathfind.ClosestToDistance(g, anchorID, halfDistance, halfDistance*0.5,
		pathfind.WithWeightFunc(weightFn),
		pathfind.WithMaxDistance(halfDistance*1.5),
		pathfind.WithAvoidSet(disallowed),
	)
	if err != nil {
		return candidate{}, 0, err
	}
	if !res.Found {
		return candidate{}, res.Explored, nil
	}

	turnBack := res.Path[len(res.Path)-1]
	turnBackNode, _ := g.Node(turnBack)

	bearing := geo.Bearing(anchor.Point(), turnBackNode.Point())

	avgQuality := 0.0
	for _, id := range res.Edges {
		if e, ok := g.Edge(id); ok {
			avgQuality += e.Quality
		}
	}
	if len(res.Edges) > 0 {
		avgQuality /= float64(len(res.Edges))
	}

	c := candidate{
		DirectionIndex: dirIdx,
		Direction:      dir.Name,
		TurnBack:       turnBack,
		OutboundNodes:  res.Path,
		OutboundEdges:  res.Edges,
		OutboundDist:   res.Distance,
		Bearing:        bearing,
		AvgQuality:     avgQuality,
	}

	return c, res.Explored, nil
}

// exploreAllDirections fans out exploreDirection over all eight compass
// directions concurrently, returning every candidate that actually reached
// a turn-back node.
func exploreAllDirections(ctx context.Context, g *graph.Graph, anchorID string, req Request, disallowed map[string]bool) ([]candidate, int, error) {
	candidates := make([]candidate, len(compassDirections))
	explored := make([]int, len(compassDirections))
	found := make([]bool, len(compassDirections))

	grp, ctx := errgroup.WithContext(ctx)
	for i := range compassDirections {
		i := i
		grp.Go(func() error {
			// Budget and cancellation are checked between explorations;
			// an exploration that has not started when the budget drains
			// never does.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			c, n, err := exploreDirection(g, anchorID, i, req, disallowed)
			explored[i] = n
			if err != nil {
				return err
			}
			if c.TurnBack != "" {
				candidates[i] = c
				found[i] = true
			}

			return nil
		})
	}

	// A drained budget cancels explorations that have not started, but
	// in-flight ones complete and still count, so candidates are collected
	// even when Wait reports the cancellation.
	err := grp.Wait()

	total := 0
	result := make([]candidate, 0, len(compassDirections))
	for i, ok := range found {
		total += explored[i]
		if ok {
			result = append(result, candidates[i])
		}
	}

	return result, total, err
}

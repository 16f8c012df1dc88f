// generate.go orchestrates the seven-phase pipeline — anchor, radial
// exploration, scoring, return-path search, overlap filter, assembly,
// ranking — under a soft wall-clock budget.
package loop

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/routeloop/engine/geo"
	"github.com/routeloop/engine/graph"
)

// Generate runs the full pipeline against g for req, returning up to
// req.MaxVariants loops ordered by quality score descending, plus a debug
// record of the run.
func Generate(ctx context.Context, g *graph.Graph, req Request) ([]Loop, DebugRecord, error) {
	if req.TargetDistance <= 0 {
		return nil, DebugRecord{}, ErrInvalidTargetDistance
	}
	if !geo.InRange(req.StartLat, req.StartLon) {
		return nil, DebugRecord{}, ErrInvalidCoordinates
	}
	req = normalize(req)

	ctx, cancel := context.WithTimeout(ctx, req.Budget)
	defer cancel()

	timings := make(Timings)
	debug := DebugRecord{CandidateScores: make(map[string]float64)}

	// Phase 1: anchor.
	phaseStart := time.Now()
	anchorID, err := g.NearestNode(req.StartLat, req.StartLon, geo.Haversine)
	timings["anchor"] = time.Since(phaseStart)
	if err != nil {
		return nil, debug, ErrNoAccessibleStart
	}

	disallowed := disallowedEdges(g, req)

	// Phase 2: radial exploration.
	phaseStart = time.Now()
	candidates, explored, err := exploreAllDirections(ctx, g, anchorID, req, disallowed)
	timings["explore"] = time.Since(phaseStart)
	debug.ExploredNodes = explored
	if err != nil {
		debug.Warnings = append(debug.Warnings, "radial exploration error: "+err.Error())
		if ctx.Err() != nil {
			debug.TimedOut = true
		}
	}
	if len(candidates) == 0 {
		debug.Timings = timings
		return nil, debug, emptyResultErr(debug)
	}

	// Phase 3: candidate scoring.
	phaseStart = time.Now()
	candidates = scoreCandidates(candidates, req)
	for _, c := range candidates {
		debug.CandidateScores[c.TurnBack] = c.Score
	}
	timings["score"] = time.Since(phaseStart)

	select {
	case <-ctx.Done():
		debug.TimedOut = true
		debug.Warnings = append(debug.Warnings, "time budget exceeded before return-path search")
		debug.Timings = timings

		return nil, debug, ErrTimeout
	default:
	}

	// Phase 4: return-path search over the top candidates.
	phaseStart = time.Now()
	top := topCandidates(candidates, req.MaxVariants)
	withReturns, timedOut := attachReturnPaths(ctx, g, anchorID, top, disallowed)
	timings["return"] = time.Since(phaseStart)
	if timedOut {
		debug.TimedOut = true
		debug.Warnings = append(debug.Warnings, "time budget drained during return-path search")
	}
	if len(withReturns) == 0 {
		debug.Timings = timings
		return nil, debug, emptyResultErr(debug)
	}

	// Phase 5: overlap filter.
	phaseStart = time.Now()
	withReturns = filterOverlap(withReturns, req.OverlapThreshold)
	timings["overlap"] = time.Since(phaseStart)
	if len(withReturns) == 0 {
		debug.Timings = timings
		return nil, debug, emptyResultErr(debug)
	}

	// Budget check after the overlap filter: the survivors are
	// already validated enough to finish — assembly and ranking are cheap
	// local work — so a drained budget here only marks the record.
	select {
	case <-ctx.Done():
		debug.TimedOut = true
	default:
	}

	// Phase 6: assemble and validate.
	phaseStart = time.Now()
	loops := make([]Loop, 0, len(withReturns))
	outOfBand := 0
	for _, c := range withReturns {
		l, ok := assemble(g, c, req.TargetDistance)
		if !ok {
			continue
		}
		if math.Abs(l.TotalDistance-req.TargetDistance) > req.TargetDistance*req.Tolerance {
			outOfBand++
			continue
		}
		loops = append(loops, l)
	}
	timings["assemble"] = time.Since(phaseStart)
	if outOfBand > 0 {
		debug.Warnings = append(debug.Warnings,
			fmt.Sprintf("%d candidate(s) discarded outside the ±%.0f%% distance band", outOfBand, req.Tolerance*100))
	}
	if len(loops) == 0 {
		debug.Timings = timings
		return nil, debug, emptyResultErr(debug)
	}

	// Phase 7: rank and return.
	phaseStart = time.Now()
	loops = rankLoops(g, loops, req.TargetDistance, req.MaxVariants)
	timings["rank"] = time.Since(phaseStart)

	for _, l := range loops {
		debug.TopBearings = append(debug.TopBearings, l.Bearing)
	}
	debug.Timings = timings

	return loops, debug, nil
}

// emptyResultErr distinguishes "nothing viable" from "the budget drained
// before anything became viable".
func emptyResultErr(debug DebugRecord) error {
	if debug.TimedOut {
		return ErrTimeout
	}

	return ErrNoViableLoops
}

// normalize fills contract-level defaults for zero-valued tunables and
// clamps MaxVariants to its documented [1, 10] range.
func normalize(req Request) Request {
	def := DefaultRequest(0, 0, 0)

	if req.MaxVariants == 0 {
		req.MaxVariants = def.MaxVariants
	}
	if req.MaxVariants < 1 {
		req.MaxVariants = 1
	}
	if req.MaxVariants > 10 {
		req.MaxVariants = 10
	}

	if req.Tolerance <= 0 || req.Tolerance > 1 {
		req.Tolerance = def.Tolerance
	}
	if req.OverlapThreshold <= 0 {
		req.OverlapThreshold = def.OverlapThreshold
	}
	if req.MinReturnAngle <= 0 {
		req.MinReturnAngle = def.MinReturnAngle
	}
	if req.DirectionHalfAngle <= 0 {
		req.DirectionHalfAngle = def.DirectionHalfAngle
	}
	if req.Budget <= 0 {
		req.Budget = def.Budget
	}
	if req.Weights == (ScoringWeights{}) {
		req.Weights = def.Weights
	}

	return req
}

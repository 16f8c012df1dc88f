// score.go implements candidate scoring: each outbound candidate is rated
// on distance-to-half-target, bearing-from-135, average edge quality, and
// a diversity slot reserved for future extension.
package loop

import (
	"math"

	"github.com/routeloop/engine/geo"
)

const idealReturnBearing = 135

func scoreCandidate(c candidate, req Request) float64 {
	halfDistance := req.TargetDistance / 2

	distTerm := 100 - math.Abs(c.OutboundDist-halfDistance)
	angleDeviation := geo.AngularDiversity(c.Bearing, idealReturnBearing)
	angleTerm := 100 - angleDeviation

	score := req.Weights.Distance*distTerm +
		req.Weights.Angle*angleTerm +
		req.Weights.Quality*c.AvgQuality +
		req.Weights.Diversity*1

	if c.Bearing < req.MinReturnAngle {
		score *= 0.5
	}

	return score
}

func scoreCandidates(candidates []candidate, req Request) []candidate {
	scored := make([]candidate, len(candidates))
	for i, c := range candidates {
		c.Score = scoreCandidate(c, req)
		scored[i] = c
	}

	return scored
}

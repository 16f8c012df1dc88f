package classify

// ScoringWeights controls the relative influence of each quality-score
// factor. Every field has a documented default and is exposed
// so a generation request can override it.
type ScoringWeights struct {
	// Surface controls the bonus (paved) or malus (unpaved) applied on top
	// of the base distance cost.
	Surface float64
	// Safety controls the malus applied when the highway class is in the
	// dangerous set.
	Safety float64
	// Popularity controls the bonus applied when the way carries a name,
	// ref, or excellent trail-visibility tag.
	Popularity float64
}

// DefaultScoringWeights returns the contract-level default weights, shared
// with the graph builder's edge-weight formula.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Surface:    0.2,
		Safety:     0.5,
		Popularity: 0.1,
	}
}

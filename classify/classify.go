// classify.go holds the classifier entry point: Walkable, SurfaceClass,
// Difficulty and QualityScore composed into one Result per way.
package classify

// Config bundles the (possibly request-scoped) tag sets and weights a
// Classifier applies. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Highways         HighwaySets
	Surfaces         SurfaceSets
	Weights          ScoringWeights
	IncludeSecondary bool
	BaseDistanceCost float64 // metres of "distance" contributed per way, before multipliers
}

// DefaultConfig returns the contract-level default classifier
// configuration: default highway/surface sets, default weights, secondary
// ways excluded.
func DefaultConfig() Config {
	return Config{
		Highways:         DefaultHighwaySets(),
		Surfaces:         DefaultSurfaceSets(),
		Weights:          DefaultScoringWeights(),
		IncludeSecondary: false,
		BaseDistanceCost: 100,
	}
}

// Classifier applies a Config to classify ways. It holds no mutable state;
// every call is independent and safe to run concurrently.
type Classifier struct {
	cfg Config
}

// New builds a Classifier from cfg.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Weights returns the scoring weights this classifier was configured
// with, so callers that need the same weights for a related computation
// (e.g. the graph builder's edge-weight formula) don't have to duplicate
// the defaults.
func (c *Classifier) Weights() ScoringWeights {
	return c.cfg.Weights
}

// Classify decides walkability, surface, difficulty and quality for a way's
// parsed tags. A way without a highway class is never walkable.
//
// Complexity: O(1).
func (c *Classifier) Classify(t Tags) Result {
	walkable := c.Walkable(t)
	surface := c.SurfaceClass(t)
	difficulty := c.DifficultyClass(t, surface)
	quality := c.QualityScore(t, surface)

	return Result{
		Walkable:   walkable,
		Surface:    surface,
		Difficulty: difficulty,
		Quality:    quality,
	}
}

// Walkable decides whether a way is walkable: the primary set
// is always included, the secondary set only when the classifier was
// configured with IncludeSecondary, the excluded set always rejects, and a
// way with no highway tag is never walkable.
func (c *Classifier) Walkable(t Tags) bool {
	if t.Highway == "" {
		return false
	}

	if c.cfg.Highways.Excluded[t.Highway] {
		return false
	}

	if c.cfg.Highways.Primary[t.Highway] {
		return true
	}

	if c.cfg.IncludeSecondary && c.cfg.Highways.Secondary[t.Highway] {
		return true
	}

	return false
}

// SurfaceClass maps the raw surface tag onto the closed Surface
// enumeration; an unrecognised or missing tag classifies as mixed.
func (c *Classifier) SurfaceClass(t Tags) Surface {
	switch {
	case c.cfg.Surfaces.Paved[t.Surface]:
		return SurfacePaved
	case c.cfg.Surfaces.Unpaved[t.Surface]:
		return SurfaceUnpaved
	default:
		return SurfaceMixed
	}
}

// DifficultyClass derives a difficulty class from surface, track grade and
// smoothness, defaulting explicitly to DifficultyMedium when nothing
// matches.
func (c *Classifier) DifficultyClass(t Tags, surface Surface) Difficulty {
	switch t.Smoothness {
	case "excellent", "good":
		return DifficultyEasy
	case "bad", "very_bad", "horrible", "very_horrible", "impassable":
		return DifficultyHard
	}

	switch t.TrackType {
	case "grade1":
		return DifficultyEasy
	case "grade4", "grade5":
		return DifficultyHard
	}

	if surface == SurfacePaved {
		return DifficultyEasy
	}
	if surface == SurfaceUnpaved {
		return DifficultyMedium
	}

	return DifficultyMedium
}

// popular reports whether a way carries a signal this engine treats as a
// popularity bonus: a name, a ref, or excellent trail visibility.
func popular(t Tags) bool {
	return t.Name != "" || t.Ref != "" || t.TrailVisibility == "excellent"
}

// dangerous reports whether a way's highway class belongs to the dangerous
// set (shared with HighwaySets.Dangerous, which is a superset of Excluded
// so a classifier configured to permit a normally-excluded class via a
// custom HighwaySets override can still be penalised for it).
func (c *Classifier) dangerous(t Tags) bool {
	return c.cfg.Highways.Dangerous[t.Highway]
}

// QualityScore computes the weighted quality score of a way:
// base distance cost, a surface bonus/malus, a safety malus, and a
// popularity bonus, clamped to [0, 100].
func (c *Classifier) QualityScore(t Tags, surface Surface) float64 {
	score := c.cfg.BaseDistanceCost

	switch surface {
	case SurfacePaved:
		score *= 1 + c.cfg.Weights.Surface
	case SurfaceUnpaved:
		score *= 1 - c.cfg.Weights.Surface
	}

	if c.dangerous(t) {
		score *= 1 - c.cfg.Weights.Safety
	}

	if popular(t) {
		score *= 1 + c.cfg.Weights.Popularity
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

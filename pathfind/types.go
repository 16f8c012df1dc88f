package pathfind

import (
	"math"

	"github.com/routeloop/engine/geo"
	"github.com/routeloop/engine/graph"
)

// WeightFunc returns the scalar cost of traversing e. Defaults to e.Weight
// but can be swapped or composed (see Avoid/Prefer/Used) to bias a search
// without mutating the graph.
type WeightFunc func(e *graph.Edge) float64

// DefaultWeightFunc returns an edge's own precomputed Weight field.
func DefaultWeightFunc(e *graph.Edge) float64 {
	return e.Weight
}

// Heuristic estimates the remaining cost from current to target. Used only
// by AStar; the default is admissible for weight=distance searches.
type Heuristic func(current, target *graph.Node) float64

// DefaultHeuristic is the great-circle distance from current to target.
func DefaultHeuristic(current, target *graph.Node) float64 {
	return geo.Haversine(current.Point(), target.Point())
}

// Config configures a single search call: maximum distance cutoff,
// maximum node-exploration cap, avoid set, prefer set, optional custom
// weight function, optional heuristic.
type Config struct {
	// MaxDistance caps the metric (not weighted) distance explored.
	// Vertices beyond this are never relaxed. Zero value means no cap.
	MaxDistance float64

	// ExplorationCap caps the number of nodes popped from the frontier.
	// Zero value means no cap.
	ExplorationCap int

	// AvoidSet and PreferSet hold edge ids penalized or favored during
	// the search, applied on top of
	// WeightFunc rather than in place of it.
	AvoidSet  map[string]bool
	PreferSet map[string]bool

	AvoidPenalty float64
	PreferBonus  float64

	WeightFunc WeightFunc
	Heuristic  Heuristic
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns contract-level defaults: no distance cap, no
// exploration cap, no avoid/prefer sets, default weight function and
// heuristic.
func DefaultConfig() Config {
	return Config{
		MaxDistance:    math.MaxFloat64,
		ExplorationCap: math.MaxInt64,
		AvoidPenalty:   1000,
		PreferBonus:    0.5,
		WeightFunc:     DefaultWeightFunc,
		Heuristic:      DefaultHeuristic,
	}
}

// WithMaxDistance caps the metric distance a search will explore.
func WithMaxDistance(d float64) Option {
	return func(c *Config) { c.MaxDistance = d }
}

// WithExplorationCap caps the number of nodes a search will pop from its
// frontier before giving up.
func WithExplorationCap(n int) Option {
	return func(c *Config) { c.ExplorationCap = n }
}

// WithAvoidSet penalizes the given edge ids by AvoidPenalty (default 1000x)
// rather than excluding them outright, so a path through them is still
// found when it is the only option.
func WithAvoidSet(edges map[string]bool) Option {
	return func(c *Config) { c.AvoidSet = edges }
}

// WithPreferSet discounts the given edge ids by PreferBonus (default 0.5x).
func WithPreferSet(edges map[string]bool) Option {
	return func(c *Config) { c.PreferSet = edges }
}

// WithWeightFunc overrides the base weight function consulted before
// avoid/prefer adjustment.
func WithWeightFunc(fn WeightFunc) Option {
	return func(c *Config) { c.WeightFunc = fn }
}

// WithHeuristic overrides AStar's heuristic. Ignored by Dijkstra.
func WithHeuristic(fn Heuristic) Option {
	return func(c *Config) { c.Heuristic = fn }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// effectiveWeight applies avoid/prefer adjustment on top of cfg's base
// weight function.
func (c Config) effectiveWeight(e *graph.Edge) float64 {
	base := c.WeightFunc
	if base == nil {
		base = DefaultWeightFunc
	}

	w := base(e)
	if c.AvoidSet[e.ID] {
		w *= c.AvoidPenalty
	}
	if c.PreferSet[e.ID] {
		w *= c.PreferBonus
	}

	return w
}

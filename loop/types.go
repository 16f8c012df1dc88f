package loop

import (
	"time"

	"github.com/routeloop/engine/classify"
)

// ScoringWeights controls the relative influence of each candidate-scoring
// factor. Defaults: distance 0.4, angle 0.3, quality 0.2, diversity 0.1.
type ScoringWeights struct {
	Distance  float64
	Angle     float64
	Quality   float64
	Diversity float64
}

// DefaultScoringWeights returns the default candidate-scoring weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Distance:  0.4,
		Angle:     0.3,
		Quality:   0.2,
		Diversity: 0.1,
	}
}

// Request configures a single Generate call.
type Request struct {
	StartLat, StartLon float64
	TargetDistance     float64 // metres
	MaxVariants        int     // K, the maximum number of loops to return
	IncludeSecondary   bool

	// Tolerance is the fractional distance slack: a loop survives assembly
	// only if its total distance lies within TargetDistance*(1±Tolerance).
	Tolerance float64

	// SurfaceTypes, when non-empty, is an allow-list of surface classes.
	// Edges outside it are penalised during exploration rather than
	// excluded, matching the avoid-set contract, so a loop through them
	// is still possible when nothing else connects.
	SurfaceTypes []classify.Surface

	// Difficulty, when non-empty, is an allow-list of difficulty classes
	// applied the same way as SurfaceTypes.
	Difficulty []classify.Difficulty

	Weights ScoringWeights
	// MinReturnAngle is the bearing threshold below which scoring applies
	// a 0.5 penalty factor to a candidate. Default 90°.
	MinReturnAngle float64
	// OverlapThreshold rejects a candidate whose outbound/return overlap
	// exceeds this fraction. Default 0.3.
	OverlapThreshold float64
	// DirectionHalfAngle is the half-width of the compass window used to
	// constrain radial exploration. Default 50°.
	DirectionHalfAngle float64
	// Budget is the soft wall-clock budget for the whole pipeline.
	// Default 3s.
	Budget time.Duration
}

// Option configures a Request.
type Option func(*Request)

// DefaultRequest returns contract-level defaults for every tunable not
// supplied by the caller.
func DefaultRequest(startLat, startLon, targetDistance float64) Request {
	return Request{
		StartLat:           startLat,
		StartLon:           startLon,
		TargetDistance:     targetDistance,
		MaxVariants:        5,
		IncludeSecondary:   true,
		Tolerance:          0.05,
		Weights:            DefaultScoringWeights(),
		MinReturnAngle:     90,
		OverlapThreshold:   0.3,
		DirectionHalfAngle: 50,
		Budget:             3 * time.Second,
	}
}

// WithMaxVariants sets K, the maximum number of loops returned.
func WithMaxVariants(k int) Option {
	return func(r *Request) { r.MaxVariants = k }
}

// WithIncludeSecondary enables secondary-highway-class ways in exploration.
func WithIncludeSecondary(include bool) Option {
	return func(r *Request) { r.IncludeSecondary = include }
}

// WithScoringWeights overrides the candidate-scoring weights.
func WithScoringWeights(w ScoringWeights) Option {
	return func(r *Request) { r.Weights = w }
}

// WithBudget overrides the soft wall-clock budget for the whole pipeline.
func WithBudget(d time.Duration) Option {
	return func(r *Request) { r.Budget = d }
}

// WithOverlapThreshold overrides the maximum allowed outbound/return overlap.
func WithOverlapThreshold(t float64) Option {
	return func(r *Request) { r.OverlapThreshold = t }
}

// WithTolerance overrides the fractional distance slack applied at assembly.
func WithTolerance(t float64) Option {
	return func(r *Request) { r.Tolerance = t }
}

// WithSurfaceTypes sets the surface-class allow-list.
func WithSurfaceTypes(surfaces ...classify.Surface) Option {
	return func(r *Request) { r.SurfaceTypes = surfaces }
}

// WithDifficulty sets the difficulty-class allow-list.
func WithDifficulty(levels ...classify.Difficulty) Option {
	return func(r *Request) { r.Difficulty = levels }
}

// WithMinReturnAngle overrides the bearing threshold below which Phase 3
// halves a candidate's score.
func WithMinReturnAngle(deg float64) Option {
	return func(r *Request) { r.MinReturnAngle = deg }
}

// compassDirection names one of the eight radial exploration axes.
type compassDirection struct {
	Name    string
	Bearing float64 // degrees clockwise from north
}

var compassDirections = []compassDirection{
	{"N", 0}, {"NE", 45}, {"E", 90}, {"SE", 135},
	{"S", 180}, {"SW", 225}, {"W", 270}, {"NW", 315},
}

// candidate is an outbound exploration result carried between phases,
// before a return path has been attached.
type candidate struct {
	DirectionIndex int
	Direction      string
	TurnBack       string // node id
	OutboundNodes  []string
	OutboundEdges  []string
	OutboundDist   float64
	Bearing        float64
	AvgQuality     float64
	Score          float64

	ReturnNodes []string
	ReturnEdges []string
}

// Meta summarises a loop for the caller: the distance it was generated
// against, its surface composition by distance share, and its dominant
// difficulty class.
type Meta struct {
	TargetDistance float64
	SurfaceMix     map[string]float64
	Difficulty     string
}

// Loop is one generated closed walk, ready to present to a caller.
type Loop struct {
	Nodes          []string
	Edges          []string
	TotalDistance  float64
	Duration       time.Duration // estimated at average walking pace
	AvgQuality     float64
	QualityScore   float64
	AscentMeters   float64
	Bearing        float64
	DirectionIndex int
	TurnBack       string // node id where the outbound leg ends
	Meta           Meta
}

// Timings maps a phase name to the wall-clock time it consumed.
type Timings map[string]time.Duration

// DebugRecord carries the diagnostic output of one Generate call:
// per-candidate scores, per-phase timings, warnings, the explored-node
// count, and the bearings of the top candidates.
type DebugRecord struct {
	CandidateScores map[string]float64 // turn-back node id -> score
	Timings         Timings
	Warnings        []string
	ExploredNodes   int
	TopBearings     []float64
	// TimedOut is set when the wall-clock budget forced the pipeline into
	// its drain state and the result list may be shorter than it would
	// otherwise have been.
	TimedOut bool
}

package classify

// Surface is a closed enumeration of the surface classes a way can belong
// to. Expressed as a tagged int rather than a bare string so that
// classification cannot silently fall through to an unhandled case.
type Surface int

const (
	// SurfacePaved covers asphalt, concrete, paving stones and similar
	// hard, even surfaces.
	SurfacePaved Surface = iota
	// SurfaceUnpaved covers gravel, dirt, grass, sand and similar loose or
	// uneven surfaces.
	SurfaceUnpaved
	// SurfaceMixed is used whenever the surface tag is absent or does not
	// match a known paved/unpaved value.
	SurfaceMixed
)

// String renders the Surface as the lower-case name used in output and
// cache payloads.
func (s Surface) String() string {
	switch s {
	case SurfacePaved:
		return "paved"
	case SurfaceUnpaved:
		return "unpaved"
	case SurfaceMixed:
		return "mixed"
	default:
		return "mixed"
	}
}

// Difficulty is a closed enumeration of the difficulty classes a way can be
// assigned, derived from surface, track grade and smoothness.
type Difficulty int

const (
	// DifficultyEasy indicates a smooth, well-graded, typically paved way.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium is the explicit default when nothing matches an
	// easy or hard signal.
	DifficultyMedium
	// DifficultyHard indicates a rough, poorly graded or unmaintained way.
	DifficultyHard
)

// String renders the Difficulty as the lower-case name used in output.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

// Tags is a typed parse of the fields this engine actually consumes from an
// OSM way's raw tag bag. Kept once per way rather than re-querying the raw
// map[string]string on every access.
type Tags struct {
	Highway         string
	Surface         string
	Smoothness      string
	TrackType       string
	Access          string
	Foot            string
	Bicycle         string
	TrailVisibility string
	Name            string
	Ref             string
}

// Parse extracts the fields classify cares about from a raw OSM tag bag.
// Missing keys yield empty strings; no error is possible since every field
// is optional at the OSM level.
//
// Complexity: O(1) (a fixed number of map lookups).
func Parse(raw map[string]string) Tags {
	return Tags{
		Highway:         raw["highway"],
		Surface:         raw["surface"],
		Smoothness:      raw["smoothness"],
		TrackType:       raw["tracktype"],
		Access:          raw["access"],
		Foot:            raw["foot"],
		Bicycle:         raw["bicycle"],
		TrailVisibility: raw["trail_visibility"],
		Name:            raw["name"],
		Ref:             raw["ref"],
	}
}

// Result is the full classification outcome for a way.
type Result struct {
	Walkable   bool
	Surface    Surface
	Difficulty Difficulty
	Quality    float64 // in [0, 100]
}

package classify

// HighwaySets partitions highway tag values into the three buckets the
// classifier's walkability decision is built from.
type HighwaySets struct {
	Primary   map[string]bool
	Secondary map[string]bool
	Excluded  map[string]bool
	Dangerous map[string]bool
}

// DefaultHighwaySets returns the contract-level default partition.
func DefaultHighwaySets() HighwaySets {
	return HighwaySets{
		Primary:   set("footway", "path", "track", "bridleway", "cycleway", "steps", "pedestrian"),
		Secondary: set("residential", "unclassified", "service", "living_street"),
		Excluded:  set("motorway", "trunk", "primary", "secondary", "tertiary"),
		Dangerous: set("motorway", "trunk", "primary", "secondary", "tertiary", "motorway_link", "trunk_link"),
	}
}

// SurfaceSets partitions the raw `surface` tag value into paved/unpaved
// buckets; anything else (including an empty tag) classifies as mixed.
type SurfaceSets struct {
	Paved   map[string]bool
	Unpaved map[string]bool
}

// DefaultSurfaceSets returns the contract-level default partition.
func DefaultSurfaceSets() SurfaceSets {
	return SurfaceSets{
		Paved: set("paved", "asphalt", "concrete", "paving_stones", "sett",
			"concrete:plates", "concrete:lanes", "metal", "wood"),
		Unpaved: set("unpaved", "gravel", "dirt", "ground", "grass", "sand",
			"compacted", "fine_gravel", "pebblestone", "mud", "earth"),
	}
}

func set(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}

	return m
}

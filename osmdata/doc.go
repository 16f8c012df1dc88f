// Package osmdata adapts real OSM extracts into the engine's raw
// map-element stream (graph.RawNode / graph.RawWay), so the engine can run
// against an actual .osm.pbf or .osm XML extract and not only synthetic
// element slices built by hand in tests.
//
// PBF extracts are read in a two-pass scan, ways first (to
// collect which node ids are actually referenced), then nodes (keeping
// only the referenced ones), avoiding the memory cost of holding every
// node in a large extract when most will never end up in a walkable way.
package osmdata

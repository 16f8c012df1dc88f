// Package classify implements the map-element filter & classifier:
// given an OSM way's tag bag, it decides whether the way is
// walkable, what surface class and difficulty it belongs to, and what
// quality score it earns.
//
// The classifier is stateless; its entire configuration is the (possibly
// request-scoped) tag sets and scoring weights passed to it explicitly;
// there is no ambient or global classifier state.
//
// Tag bags arrive as map[string]string at the wire boundary (OSM's native
// shape); Parse turns a bag into a typed Tags record once, so downstream
// code never re-queries the raw map. Unknown tags are dropped rather than
// round-tripped, since nothing in this engine's output needs them.
package classify

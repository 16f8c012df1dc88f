// Package engine generates closed-loop walking and running routes from OSM
// map data.
//
// Given a start point and a target distance, it explores outward from an
// anchor node along several compass bearings, scores the resulting
// candidates by outbound distance, bearing and edge quality, finds a return
// path back to the anchor for each, and ranks the surviving loops that stay
// under the out-and-back overlap threshold by distance accuracy, path
// uniqueness and surface quality.
//
// The work is organized under subpackages:
//
//	geo/       — bearing, distance and bounding-box primitives
//	classify/  — OSM tag filtering (walkable ways, surface, difficulty)
//	graph/     — the Node/Edge/Graph model and the ingest builder
//	cache/     — on-disk, tile-keyed graph cache with TTL expiry
//	pathfind/  — Dijkstra, A*, multi-target and closest-to-distance search
//	loop/      — radial exploration, scoring, return-path search and ranking
//	osmdata/   — PBF and XML stream adapters feeding graph.Build
//
// A typical caller ingests an extract once with osmdata.FromPBF or
// osmdata.FromXML, builds a graph.Graph with graph.Build, optionally
// persists it through cache.Cache, and then calls loop.Generate for each
// route request.
package engine

// Package graph defines the route-loop engine's core data model — Node,
// Edge and Graph — and Build, which consumes a stream of raw
// OSM-shaped map elements and produces a weighted, walkability-filtered,
// undirected Graph.
//
// Nodes carry the domain-specific attributes a walking/running route
// needs — coordinates and optional elevation — and edges carry
// distance, surface, highway class, quality, originating way id and the
// precomputed pathfinding weight. The Graph is always undirected (a
// walking path can always be walked in either direction) and, once
// returned by Build, is treated as immutable and safe for many concurrent
// readers — no further locking is needed after construction, since nothing
// in this engine mutates a graph after it is built.
package graph

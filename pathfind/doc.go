// Package pathfind implements single-source shortest-path search over a
// graph.Graph: classical Dijkstra, A* with an admissible heuristic, and two
// auxiliary modes built on the same runner — multi-target search and
// closest-to-a-target-distance search. Weight helpers let a caller bias the
// search away from (or towards, or away from already-used) specific edges
// without mutating the graph itself.
//
// Both algorithms share one runner: a struct holding the mutable search
// state, a lazy-decrease-key binary heap, and a functional-option
// configuration surface, with a pluggable weight function and an optional
// heuristic for A*.
package pathfind

// Package loop implements the route-loop generator: the subsystem that,
// given a requested start point and a target distance, produces K distinct
// closed walks that start and end near that point and whose total length
// is close to the target.
//
// The pipeline runs in seven phases — anchor, radial exploration,
// candidate scoring, return-path search, overlap filtering,
// assembly/validation, and ranking — all reading one shared immutable
// graph.Graph and never mutating it.
package loop

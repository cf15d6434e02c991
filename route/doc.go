// Package route builds all-pairs distance tables over a set of grid targets
// and sequences them into collection tours.
//
// Two layers:
//
//   - BuildDistanceMatrix runs the search engine to full completion once per
//     unordered pair of the point list, producing a symmetric distance matrix
//     and a parallel table of concrete shortest paths. If any pair is
//     mutually unreachable the whole build fails with ErrUnreachable: a
//     complete tour is impossible in that configuration, so a partial matrix
//     would be useless to the caller.
//
//   - OrderTour sequences all non-home points by greedy
//     nearest-unvisited-neighbor selection from the current position, then
//     returns to home. Ties break toward the lowest index, so the result is
//     deterministic. This is an approximation of the travelling salesman
//     problem — fast, but with no optimality guarantee on the ordering.
//
// BuildPlan combines both into a single planning pass and resolves the tour
// into waypoints and concrete per-leg paths, ready for segment-by-segment
// execution by a driver. Plans are rebuilt wholesale on every replan; nothing
// in this package mutates incrementally or persists between calls.
package route

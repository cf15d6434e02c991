// Package collector plans collection routes for an agent moving on a
// uniform-cost, 4-connected grid.
//
// The library is organized as small, focused subpackages:
//
//	grid/      — the spatial model: bounds, obstacles, neighbor enumeration
//	heuristic/ — interchangeable distance estimators (Manhattan, Euclidean, Chebyshev)
//	search/    — a resumable best-first engine, usable as Uniform-Cost Search or A*
//	route/     — all-pairs distance matrices and greedy nearest-neighbor tours
//	server/    — a JSON/HTTP planning service for external drivers
//
// A typical planning pass runs bottom-up: build a grid, compute the full
// pairwise distance matrix over the current target set with route.BuildDistanceMatrix,
// sequence the targets with route.OrderTour, then walk each leg with search.Search,
// pumping one expansion at a time for animated exploration.
//
// The tour construction is a deliberate greedy approximation of the travelling
// salesman problem: it is fast and deterministic, but carries no optimality
// guarantee for the inter-target ordering.
//
//	go get github.com/MarioAouad/Robot-Collector
package collector

// Package search implements a resumable best-first search over a grid,
// usable as Uniform-Cost Search or A* depending on the priority rule.
//
// The engine is a single generalized best-first search: the frontier is a
// min-heap keyed by a caller-supplied PriorityRule. With UniformCost() the
// priority is the accumulated cost alone (UCS); with AStarRule(h) it is the
// accumulated cost plus the heuristic estimate to the goal (A*).
//
// # Externally pumped stepping
//
// A Search advances only when the caller asks it to. Each call to Step
// performs exactly one settle-and-relax cycle — pop the best frontier entry,
// discard stale entries, mark the position settled, emit an Event, relax its
// neighbors — and returns control. The caller decides whether to continue,
// pause, or abandon; abandonment needs no cleanup because a Search holds no
// external resources. Run pumps a search to completion when no stepping is
// needed.
//
// # Lazy deletion
//
// The frontier may hold several entries for the same position. When a
// position's best known cost improves, a fresh entry is pushed instead of
// re-keying the old one; stale entries are recognized on pop by comparing
// their recorded cost against the authoritative best-cost map, and are
// silently discarded. A strictly increasing insertion counter breaks
// priority ties, so expansion order is fully deterministic for identical
// inputs.
//
// Complexity for a grid of N reachable cells:
//
//   - Time:  O(N log N) — each cell settles once, each relaxation may push.
//   - Space: O(N) for the cost/predecessor maps plus frontier entries.
package search

// Package search defines core types, priority rules, and sentinel errors
// for the resumable best-first engine.
package search

import (
	"errors"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/heuristic"
)

// Sentinel errors for search construction and execution.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrNilRule indicates a nil PriorityRule was supplied.
	ErrNilRule = errors.New("search: priority rule is nil")
	// ErrOutOfBounds indicates the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: start or goal out of bounds")
	// ErrBlockedEndpoint indicates the start or goal is a wall cell.
	ErrBlockedEndpoint = errors.New("search: start or goal is blocked")
	// ErrNoPath is returned by Run when the goal is unreachable.
	ErrNoPath = errors.New("search: no path between start and goal")
)

// PriorityRule maps (accumulated cost, position, goal) to a frontier
// priority. Lower priorities are expanded first. A rule must be pure.
type PriorityRule func(cost int, at, goal grid.Pos) float64

// UniformCost returns the Uniform-Cost Search discipline: the priority is
// the accumulated cost alone, ignoring the goal entirely.
func UniformCost() PriorityRule {
	return func(cost int, _, _ grid.Pos) float64 {
		return float64(cost)
	}
}

// AStarRule returns the A* discipline: accumulated cost plus h(at, goal).
// With an admissible h (never exceeding the true remaining distance) the
// resulting paths are shortest; heuristic.Manhattan is exact for 4-connected
// unit-cost movement.
func AStarRule(h heuristic.Func) PriorityRule {
	return func(cost int, at, goal grid.Pos) float64 {
		return float64(cost) + h(at, goal)
	}
}

// State is the lifecycle of a Search: Idle until the first pump, Searching
// while the frontier is live, then exactly one of Succeeded or Failed.
// Both terminal states are absorbing.
type State int

const (
	// StateIdle means the search has been created but never stepped.
	StateIdle State = iota
	// StateSearching means at least one step ran and the frontier is live.
	StateSearching
	// StateSucceeded means the goal was settled; Path returns the result.
	StateSucceeded
	// StateFailed means the frontier drained without settling the goal.
	StateFailed
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSearching:
		return "Searching"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event describes one settled node. It is emitted exactly once per
// settlement and carries read-only snapshots for visualization; it has no
// control authority over the search.
type Event struct {
	// Settled is the position whose shortest cost was just finalized.
	Settled grid.Pos
	// Frontier is a snapshot of the positions currently discovered but not
	// yet settled. Stale duplicate entries are included as stored.
	Frontier []grid.Pos
	// Explored is a snapshot of all settled positions, in settlement order.
	Explored []grid.Pos
}

// entry is a single frontier element under lazy deletion: the priority and
// the accumulated cost at push time, plus the insertion tie-breaker.
type entry struct {
	priority float64
	tie      int
	pos      grid.Pos
	cost     int
}

// frontierHeap is a min-heap of frontier entries ordered by (priority, tie).
// The tie counter strictly increases per push, so ordering is total and
// expansion order deterministic.
type frontierHeap []*entry

// Len returns the number of entries in the heap.
func (h frontierHeap) Len() int { return len(h) }

// Less orders by priority, then by insertion counter.
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].tie < h[j].tie
}

// Swap swaps two entries.
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

package search

import (
	"container/heap"
	"fmt"

	"github.com/MarioAouad/Robot-Collector/grid"
)

// Search holds the mutable state of one in-flight best-first search. It is
// created per invocation by New, advanced one cycle at a time by Step, and
// simply discarded when done or abandoned — it owns no external resources
// and shares no state with other searches.
type Search struct {
	grid  *grid.Grid   // the world; read-only within the search
	start grid.Pos     // origin cell
	goal  grid.Pos     // target cell
	rule  PriorityRule // UCS or A* priority discipline

	frontier frontierHeap          // min-heap with lazy stale entries
	tie      int                   // strictly increasing insertion counter
	cost     map[grid.Pos]int      // best known accumulated cost per position
	prev     map[grid.Pos]grid.Pos // predecessor on the best known path
	settled  map[grid.Pos]bool     // positions with finalized cost
	order    []grid.Pos            // settlement order, backs Explored snapshots

	state State
	path  []grid.Pos // filled on success
}

// New validates the inputs and seeds a Search with the start cell at
// priority rule(0, start, goal). The returned Search is in StateIdle until
// the first Step.
//
// Validation (in order): ErrNilGrid, ErrNilRule, ErrOutOfBounds for either
// endpoint, ErrBlockedEndpoint for a wall endpoint.
func New(g *grid.Grid, start, goal grid.Pos, rule PriorityRule) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if rule == nil {
		return nil, ErrNilRule
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d)", ErrOutOfBounds, start.X, start.Y, goal.X, goal.Y)
	}
	if !g.Passable(start) || !g.Passable(goal) {
		return nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d)", ErrBlockedEndpoint, start.X, start.Y, goal.X, goal.Y)
	}

	s := &Search{
		grid:     g,
		start:    start,
		goal:     goal,
		rule:     rule,
		frontier: make(frontierHeap, 0, 16),
		cost:     map[grid.Pos]int{start: 0},
		prev:     make(map[grid.Pos]grid.Pos),
		settled:  make(map[grid.Pos]bool),
		state:    StateIdle,
	}
	heap.Init(&s.frontier)
	heap.Push(&s.frontier, &entry{
		priority: rule(0, start, goal),
		tie:      0,
		pos:      start,
		cost:     0,
	})

	return s, nil
}

// Step advances the search by exactly one settle-and-relax cycle and returns
// the Event describing the settled node together with true. Stale frontier
// entries encountered on the way are discarded within the same call, so at
// most one Event is ever emitted per call.
//
// Once the search is terminal — the goal was settled (StateSucceeded) or the
// frontier drained (StateFailed) — Step returns a zero Event and false, and
// every subsequent call is the same no-op. Draining happens inside the call
// that discovers it: if only stale entries remain, that call transitions to
// StateFailed and returns false without an event.
func (s *Search) Step() (Event, bool) {
	if s.state == StateSucceeded || s.state == StateFailed {
		return Event{}, false
	}
	s.state = StateSearching

	// Pop until a live entry surfaces; mismatched cost means the entry was
	// superseded by a later, cheaper push.
	var e *entry
	for {
		if s.frontier.Len() == 0 {
			s.state = StateFailed

			return Event{}, false
		}
		e = heap.Pop(&s.frontier).(*entry)
		if e.cost == s.cost[e.pos] {
			break
		}
	}

	// Re-settlement is possible only when a non-admissible heuristic later
	// improves a settled cost; the explored set stays free of duplicates.
	if !s.settled[e.pos] {
		s.settled[e.pos] = true
		s.order = append(s.order, e.pos)
	}
	ev := s.snapshot(e.pos)

	if e.pos == s.goal {
		s.state = StateSucceeded
		s.path = s.reconstruct()

		return ev, true
	}

	// Relax neighbors with unit edge weight.
	for _, nb := range s.grid.Neighbors(e.pos) {
		ng := e.cost + 1
		if old, seen := s.cost[nb]; seen && ng >= old {
			continue
		}
		s.cost[nb] = ng
		s.prev[nb] = e.pos
		s.tie++
		heap.Push(&s.frontier, &entry{
			priority: s.rule(ng, nb, s.goal),
			tie:      s.tie,
			pos:      nb,
			cost:     ng,
		})
	}

	return ev, true
}

// State returns the current lifecycle state.
func (s *Search) State() State { return s.state }

// Done reports whether the search reached a terminal state.
func (s *Search) Done() bool {
	return s.state == StateSucceeded || s.state == StateFailed
}

// Found reports whether the goal was settled.
func (s *Search) Found() bool { return s.state == StateSucceeded }

// Expanded returns the number of settled nodes so far.
func (s *Search) Expanded() int { return len(s.order) }

// Path returns a copy of the start-to-goal path, inclusive of both
// endpoints. It is non-empty only in StateSucceeded.
func (s *Search) Path() []grid.Pos {
	if s.state != StateSucceeded {
		return nil
	}
	out := make([]grid.Pos, len(s.path))
	copy(out, s.path)

	return out
}

// snapshot builds the Event for a freshly settled position: frontier and
// explored copies are independent of the live state, so callers may retain
// them across further steps.
func (s *Search) snapshot(settledPos grid.Pos) Event {
	fr := make([]grid.Pos, len(s.frontier))
	for i, fe := range s.frontier {
		fr[i] = fe.pos
	}
	ex := make([]grid.Pos, len(s.order))
	copy(ex, s.order)

	return Event{Settled: settledPos, Frontier: fr, Explored: ex}
}

// reconstruct walks predecessor links from goal back to start and reverses.
func (s *Search) reconstruct() []grid.Pos {
	path := []grid.Pos{s.goal}
	cur := s.goal
	for cur != s.start {
		cur = s.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Run constructs a search and pumps it to completion with no externally
// visible stepping. On success it returns the shortest path from start to
// goal inclusive; if the goal is unreachable it returns ErrNoPath.
func Run(g *grid.Grid, start, goal grid.Pos, rule PriorityRule) ([]grid.Pos, error) {
	s, err := New(g, start, goal, rule)
	if err != nil {
		return nil, err
	}
	for !s.Done() {
		s.Step()
	}
	if !s.Found() {
		return nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d)", ErrNoPath, start.X, start.Y, goal.X, goal.Y)
	}

	return s.Path(), nil
}

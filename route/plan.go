package route

import (
	"fmt"
	"math"

	"github.com/MarioAouad/Robot-Collector/grid"
)

// Plan is the outcome of one full planning pass: the distance matrix, the
// greedy visiting order, and the order resolved into concrete geometry.
// Plans are immutable snapshots; a changed target set calls for a fresh
// BuildPlan, never an in-place update.
type Plan struct {
	// Matrix is the pairwise distance/path table the plan was built from.
	Matrix *DistanceMatrix
	// Order is the tour as indices into Matrix.Points.
	Order []int
	// Waypoints is Order resolved to positions, in visit sequence.
	Waypoints []grid.Pos
	// Legs holds the concrete shortest path for each consecutive waypoint
	// pair; Legs[k] connects Waypoints[k] to Waypoints[k+1] inclusive.
	Legs [][]grid.Pos
	// Length is the total tour distance in moves.
	Length float64
}

// Degenerate reports whether the plan has fewer than two waypoints, meaning
// there is nothing to execute. Callers treat this as "done", not an error.
func (p *Plan) Degenerate() bool { return len(p.Order) < 2 }

// BuildPlan runs a complete planning pass: build the distance matrix over
// points, order the tour from currentIdx back to homeIdx, and resolve the
// order into waypoints and per-leg paths.
//
// Errors are those of BuildDistanceMatrix and OrderTour; in particular
// ErrUnreachable aborts the pass whole, and a degenerate tour is returned
// as a valid Plan.
//
// Complexity: dominated by matrix construction, O(P² · S).
func BuildPlan(g *grid.Grid, points []grid.Pos, homeIdx, currentIdx int, opts ...Option) (*Plan, error) {
	m, err := BuildDistanceMatrix(g, points, opts...)
	if err != nil {
		return nil, err
	}
	order, err := OrderTour(m, homeIdx, currentIdx)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Matrix:    m,
		Order:     order,
		Waypoints: make([]grid.Pos, len(order)),
		Legs:      make([][]grid.Pos, 0, len(order)),
	}
	for k, idx := range order {
		p.Waypoints[k] = m.Points[idx]
	}
	for k := 0; k+1 < len(order); k++ {
		p.Legs = append(p.Legs, m.Paths[order[k]][order[k+1]])
	}
	if p.Length, err = TourLength(m, order); err != nil {
		return nil, err
	}

	return p, nil
}

// TourLength sums the leg distances of order over the matrix. An order of
// fewer than two indices has length zero.
//
// Returns ErrNilMatrix, ErrIndexOutOfRange for an index outside the point
// list, or ErrUnreachable if any traversed entry is the unreachable marker.
//
// Complexity: O(len(order)).
func TourLength(m *DistanceMatrix, order []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := m.Len()
	var sum float64
	for k, idx := range order {
		if idx < 0 || idx >= n {
			return 0, fmt.Errorf("%w: order[%d]=%d", ErrIndexOutOfRange, k, idx)
		}
		if k == 0 {
			continue
		}
		d := m.Dist[order[k-1]][idx]
		if math.IsInf(d, 1) {
			return 0, fmt.Errorf("%w: leg %d-%d", ErrUnreachable, order[k-1], idx)
		}
		sum += d
	}

	return sum, nil
}

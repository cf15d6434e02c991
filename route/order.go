package route

import (
	"fmt"
	"math"
)

// OrderTour sequences the matrix's points into a collection tour by greedy
// nearest-unvisited-neighbor selection.
//
// Starting from currentIdx, it repeatedly appends the not-yet-visited point
// (home excluded) with the minimum distance from the tour tail, breaking
// ties toward the lowest index, and finally appends homeIdx unless the tail
// already is home. The result visits every required index exactly once.
//
// Failure policy: if the minimum available distance at any step is the
// unreachable marker (math.Inf(1)), or the final hop home is unreachable,
// OrderTour returns ErrUnreachable and no partial tour. A tour of fewer than
// two waypoints (nothing left to collect) is a normal degenerate result, not
// an error.
//
// This is a greedy approximation of the travelling salesman problem; the
// returned ordering carries no global optimality guarantee.
//
// Complexity: O(n²) time, O(n) space.
func OrderTour(m *DistanceMatrix, homeIdx, currentIdx int) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Len()
	if n == 0 {
		return []int{}, nil
	}
	if homeIdx < 0 || homeIdx >= n {
		return nil, fmt.Errorf("%w: home=%d", ErrIndexOutOfRange, homeIdx)
	}
	if currentIdx < 0 || currentIdx >= n {
		return nil, fmt.Errorf("%w: current=%d", ErrIndexOutOfRange, currentIdx)
	}

	order := make([]int, 0, n+1)
	order = append(order, currentIdx)

	// Pending indices in ascending order; strict "<" comparison below keeps
	// ties on the lowest index.
	pending := make([]int, 0, n)
	var i int
	for i = 0; i < n; i++ {
		if i != currentIdx && i != homeIdx {
			pending = append(pending, i)
		}
	}

	cur := currentIdx
	for len(pending) > 0 {
		best := -1
		bestAt := -1
		bestD := math.Inf(1)
		var k, j int
		for k, j = 0, 0; k < len(pending); k++ {
			j = pending[k]
			if d := m.Dist[cur][j]; d < bestD {
				bestD = d
				best = j
				bestAt = k
			}
		}
		if best < 0 || math.IsInf(bestD, 1) {
			return nil, fmt.Errorf("%w: no reachable target from index %d", ErrUnreachable, cur)
		}
		order = append(order, best)
		pending = append(pending[:bestAt], pending[bestAt+1:]...)
		cur = best
	}

	if cur != homeIdx {
		if math.IsInf(m.Dist[cur][homeIdx], 1) {
			return nil, fmt.Errorf("%w: home unreachable from index %d", ErrUnreachable, cur)
		}
		order = append(order, homeIdx)
	}

	return order, nil
}

package route

import (
	"errors"
	"fmt"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/search"
)

// BuildDistanceMatrix computes the full pairwise distance matrix and path
// table for points on g, running one search to completion per unordered
// pair. The search variant and heuristic are configured via options;
// defaults are AStar with Manhattan.
//
// Contracts:
//   - g must be non-nil; every point must be in bounds, passable, and
//     distinct (ErrNilGrid, ErrPointInvalid, ErrDuplicatePoint).
//   - An empty point list yields an empty matrix and no error.
//   - If any off-diagonal pair is unreachable, the build aborts with
//     ErrUnreachable and no partial matrix is returned.
//
// Complexity: O(P² · S) where S is the cost of one full search.
func BuildDistanceMatrix(g *grid.Grid, points []grid.Pos, opts ...Option) (*DistanceMatrix, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate points: in range, passable, distinct.
	seen := make(map[grid.Pos]struct{}, len(points))
	for _, p := range points {
		if !g.InBounds(p) || !g.Passable(p) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrPointInvalid, p.X, p.Y)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicatePoint, p.X, p.Y)
		}
		seen[p] = struct{}{}
	}

	n := len(points)
	m := &DistanceMatrix{
		Points: make([]grid.Pos, n),
		Dist:   make([][]float64, n),
		Paths:  make([][][]grid.Pos, n),
	}
	copy(m.Points, points)
	var i, j int
	for i = 0; i < n; i++ {
		m.Dist[i] = make([]float64, n)
		m.Paths[i] = make([][]grid.Pos, n)
		m.Paths[i][i] = []grid.Pos{points[i]}
	}

	rule := cfg.rule()
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			path, err := search.Run(g, points[i], points[j], rule)
			if errors.Is(err, search.ErrNoPath) {
				// Global failure policy: a single disconnected pair makes a
				// complete tour impossible, so no partial matrix is returned.
				return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d)",
					ErrUnreachable, points[i].X, points[i].Y, points[j].X, points[j].Y)
			}
			if err != nil {
				return nil, err
			}
			d := float64(len(path) - 1)
			m.Dist[i][j] = d
			m.Dist[j][i] = d
			m.Paths[i][j] = path
			m.Paths[j][i] = reversePath(path)
		}
	}

	return m, nil
}

// reversePath returns a new slice with p's positions in reverse order.
func reversePath(p []grid.Pos) []grid.Pos {
	out := make([]grid.Pos, len(p))
	for i, pos := range p {
		out[len(p)-1-i] = pos
	}

	return out
}

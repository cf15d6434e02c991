// Package route_test exercises distance matrix construction: symmetry,
// path tables, validation, and the global unreachability policy.
package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/heuristic"
	"github.com/MarioAouad/Robot-Collector/route"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, w, h int, walls []grid.Pos) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, walls)
	require.NoError(t, err)

	return g
}

// TestBuildDistanceMatrix_OpenGrid checks distances, symmetry, diagonal, and
// path-table invariants on an open 5x5 grid.
func TestBuildDistanceMatrix_OpenGrid(t *testing.T) {
	g := mustGrid(t, 5, 5, nil)
	points := []grid.Pos{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 2}}

	m, err := route.BuildDistanceMatrix(g, points)
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())

	// On an open grid every shortest distance equals the Manhattan distance.
	for i := range points {
		for j := range points {
			want := heuristic.Manhattan(points[i], points[j])
			assert.Equal(t, want, m.Dist[i][j], "Dist[%d][%d]", i, j)
			assert.Equal(t, m.Dist[j][i], m.Dist[i][j], "symmetry at (%d,%d)", i, j)
		}
		assert.Zero(t, m.Dist[i][i], "diagonal at %d", i)
		require.Len(t, m.Paths[i][i], 1)
		assert.Equal(t, points[i], m.Paths[i][i][0])
	}

	// Off-diagonal paths: inclusive endpoints, length = distance+1, and the
	// mirror entry is the exact reverse.
	for i := range points {
		for j := range points {
			if i == j {
				continue
			}
			p := m.Paths[i][j]
			require.NotEmpty(t, p, "Paths[%d][%d]", i, j)
			assert.Equal(t, points[i], p[0])
			assert.Equal(t, points[j], p[len(p)-1])
			assert.Equal(t, int(m.Dist[i][j])+1, len(p))
			rev := m.Paths[j][i]
			require.Len(t, rev, len(p))
			for k := range p {
				assert.Equal(t, p[k], rev[len(p)-1-k], "reverse mismatch at %d", k)
			}
		}
	}
}

// TestBuildDistanceMatrix_Variants checks UCS and A* produce identical
// distance tables.
func TestBuildDistanceMatrix_Variants(t *testing.T) {
	g := mustGrid(t, 6, 6, []grid.Pos{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})
	points := []grid.Pos{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 3, Y: 5}}

	astar, err := route.BuildDistanceMatrix(g, points)
	require.NoError(t, err)
	ucs, err := route.BuildDistanceMatrix(g, points, route.WithVariant(route.UCS))
	require.NoError(t, err)

	for i := range points {
		for j := range points {
			assert.Equal(t, ucs.Dist[i][j], astar.Dist[i][j], "variant mismatch at (%d,%d)", i, j)
		}
	}
}

// TestBuildDistanceMatrix_Unreachable verifies the global failure policy: an
// enclosed target aborts the whole build.
func TestBuildDistanceMatrix_Unreachable(t *testing.T) {
	walls := []grid.Pos{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	g := mustGrid(t, 4, 4, walls)
	points := []grid.Pos{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 1, Y: 1}}

	m, err := route.BuildDistanceMatrix(g, points)
	assert.Nil(t, m, "no partial matrix on unreachability")
	assert.ErrorIs(t, err, route.ErrUnreachable)
}

// TestBuildDistanceMatrix_Validation covers input-shape sentinels.
func TestBuildDistanceMatrix_Validation(t *testing.T) {
	g := mustGrid(t, 3, 3, []grid.Pos{{X: 1, Y: 1}})

	_, err := route.BuildDistanceMatrix(nil, nil)
	assert.ErrorIs(t, err, route.ErrNilGrid)

	_, err = route.BuildDistanceMatrix(g, []grid.Pos{{X: 0, Y: 0}, {X: 0, Y: 0}})
	assert.ErrorIs(t, err, route.ErrDuplicatePoint)

	_, err = route.BuildDistanceMatrix(g, []grid.Pos{{X: 5, Y: 5}})
	assert.ErrorIs(t, err, route.ErrPointInvalid)

	_, err = route.BuildDistanceMatrix(g, []grid.Pos{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, route.ErrPointInvalid, "wall cell is not a valid target")
}

// TestBuildDistanceMatrix_Empty verifies an empty point list yields an empty
// matrix, not an error.
func TestBuildDistanceMatrix_Empty(t *testing.T) {
	g := mustGrid(t, 3, 3, nil)
	m, err := route.BuildDistanceMatrix(g, nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

// TestOptionPanics verifies option constructors reject invalid arguments
// loudly.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { route.WithVariant(route.Variant(42))(&route.Options{}) })
	assert.Panics(t, func() { route.WithHeuristic(nil)(&route.Options{}) })
}

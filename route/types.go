// Package route defines types, options, and sentinel errors for distance
// matrix construction and tour ordering.
package route

import (
	"errors"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/heuristic"
	"github.com/MarioAouad/Robot-Collector/search"
)

// Sentinel errors for route operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was supplied.
	ErrNilGrid = errors.New("route: grid is nil")
	// ErrNilMatrix indicates a nil *DistanceMatrix was supplied.
	ErrNilMatrix = errors.New("route: distance matrix is nil")
	// ErrUnreachable indicates some required pair has no connecting path;
	// the current target configuration cannot be fully collected.
	ErrUnreachable = errors.New("route: target configuration is not fully connected")
	// ErrDuplicatePoint indicates the point list contains a repeated cell.
	ErrDuplicatePoint = errors.New("route: duplicate point in list")
	// ErrPointInvalid indicates a point outside the grid or on a wall.
	ErrPointInvalid = errors.New("route: point out of bounds or blocked")
	// ErrIndexOutOfRange indicates a home/current/tour index outside the
	// point list.
	ErrIndexOutOfRange = errors.New("route: index out of range")
	// ErrBadVariant indicates an unknown search variant.
	ErrBadVariant = errors.New("route: unknown search variant")
	// ErrNilHeuristic indicates a nil heuristic was supplied for A*.
	ErrNilHeuristic = errors.New("route: heuristic is nil")
)

// Variant selects the search discipline used for pairwise distances.
type Variant int

const (
	// AStar uses cost-plus-heuristic priorities (the default).
	AStar Variant = iota
	// UCS uses pure accumulated-cost priorities.
	UCS
)

// Options configures matrix construction.
//
// Variant   — search discipline for every pairwise search.
// Heuristic — estimator for the AStar variant; ignored under UCS.
type Options struct {
	Variant   Variant
	Heuristic heuristic.Func
}

// Option is a functional option for configuring route operations.
type Option func(*Options)

// DefaultOptions returns the default configuration: AStar with the Manhattan
// heuristic, the exact estimator for 4-connected unit-cost movement.
func DefaultOptions() Options {
	return Options{
		Variant:   AStar,
		Heuristic: heuristic.Manhattan,
	}
}

// WithVariant selects the search discipline.
// Panics on an unknown variant to signal invalid configuration early.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		if v != AStar && v != UCS {
			panic(ErrBadVariant.Error())
		}
		o.Variant = v
	}
}

// WithHeuristic selects the estimator used by the AStar variant.
// Panics on nil to signal invalid configuration early.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// rule maps the configured variant to a search priority discipline.
func (o Options) rule() search.PriorityRule {
	if o.Variant == UCS {
		return search.UniformCost()
	}

	return search.AStarRule(o.Heuristic)
}

// DistanceMatrix is the full pairwise distance and path table over a fixed
// ordered point list.
//
// Invariants: Dist is square with Dist[i][i]==0 and Dist[i][j]==Dist[j][i];
// Paths[i][j] is the concrete shortest path from Points[i] to Points[j]
// inclusive, with Paths[j][i] its reverse and Paths[i][i] the single-point
// path. A matrix returned by BuildDistanceMatrix contains only finite
// distances; math.Inf(1) is the "unreachable" marker for matrices assembled
// by other means, and OrderTour treats it as such.
type DistanceMatrix struct {
	Points []grid.Pos
	Dist   [][]float64
	Paths  [][][]grid.Pos
}

// Len returns the number of points the matrix covers.
func (m *DistanceMatrix) Len() int { return len(m.Points) }

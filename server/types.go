// Package server defines the JSON request/response models.
package server

import (
	"errors"

	"github.com/MarioAouad/Robot-Collector/grid"
)

// Sentinel errors for request decoding.
var (
	// ErrUnknownVariant indicates an unrecognized search variant name.
	ErrUnknownVariant = errors.New("server: unknown search variant")
	// ErrUnknownHeuristic indicates an unrecognized heuristic name.
	ErrUnknownHeuristic = errors.New("server: unknown heuristic")
)

// PosModel is a cell coordinate on the wire.
type PosModel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridModel describes the world a request operates on.
type GridModel struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Walls  []PosModel `json:"walls,omitempty"`
}

// RouteRequest asks for a single shortest path.
// Variant is "astar" (default) or "ucs"; Heuristic is "manhattan" (default),
// "euclidean", or "chebyshev" and only applies to astar.
type RouteRequest struct {
	Grid      GridModel `json:"grid"`
	Start     PosModel  `json:"start"`
	Goal      PosModel  `json:"goal"`
	Variant   string    `json:"variant,omitempty"`
	Heuristic string    `json:"heuristic,omitempty"`
}

// RouteResponse carries the path found, its cost in moves, and the number
// of nodes the search settled.
type RouteResponse struct {
	Path     []PosModel `json:"path"`
	Cost     int        `json:"cost"`
	Expanded int        `json:"expanded"`
}

// PlanRequest asks for a full planning pass over a target set.
// Home and Current index into Points.
type PlanRequest struct {
	Grid      GridModel  `json:"grid"`
	Points    []PosModel `json:"points"`
	Home      int        `json:"home"`
	Current   int        `json:"current"`
	Variant   string     `json:"variant,omitempty"`
	Heuristic string     `json:"heuristic,omitempty"`
}

// PlanResponse carries the tour and its resolved geometry, plus the
// signature of the target set the plan was computed from.
type PlanResponse struct {
	Order     []int        `json:"order"`
	Waypoints []PosModel   `json:"waypoints"`
	Legs      [][]PosModel `json:"legs"`
	Length    float64      `json:"length"`
	Signature string       `json:"signature"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toPos converts a wire coordinate to a grid position.
func (p PosModel) toPos() grid.Pos {
	return grid.Pos{X: p.X, Y: p.Y}
}

// fromPos converts a grid position to its wire form.
func fromPos(p grid.Pos) PosModel {
	return PosModel{X: p.X, Y: p.Y}
}

// fromPath converts a path to wire coordinates.
func fromPath(path []grid.Pos) []PosModel {
	out := make([]PosModel, len(path))
	for i, p := range path {
		out[i] = fromPos(p)
	}

	return out
}

// Package grid defines core types and sentinel errors for the grid world.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a grid with non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrWallOutOfBounds indicates a wall cell outside the grid boundaries.
	ErrWallOutOfBounds = errors.New("grid: wall position out of bounds")
)

// Pos is a single cell coordinate. Positions compare by value, so Pos is
// directly usable as a map key.
type Pos struct {
	X, Y int
}

// Grid is a rectangular 4-connected world with unit movement cost.
// Width and Height define the dimensions; walls holds the blocked cells.
// Immutable once built.
type Grid struct {
	Width, Height int
	walls         map[Pos]struct{}
}

// neighborOffsets is the fixed expansion order: +x, -x, +y, -y.
// Keeping the order fixed makes search expansion reproducible.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

package grid

import "fmt"

// New constructs a Grid of the given dimensions with the given wall cells.
// The wall slice is copied, so later mutation of the argument cannot affect
// the Grid. Returns ErrBadDimensions if width or height is < 1, and
// ErrWallOutOfBounds if any wall lies outside the grid.
//
// Complexity: O(len(walls)) time and memory.
func New(width, height int, walls []Pos) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		Width:  width,
		Height: height,
		walls:  make(map[Pos]struct{}, len(walls)),
	}
	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrWallOutOfBounds, w.X, w.Y)
		}
		g.walls[w] = struct{}{}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Passable reports whether p is not blocked by a wall. It does not check
// bounds; combine with InBounds for full validity.
// Complexity: O(1).
func (g *Grid) Passable(p Pos) bool {
	_, blocked := g.walls[p]

	return !blocked
}

// Neighbors returns the subset of the four axis-aligned cells adjacent to p
// that are in bounds and passable, always in the order +x, -x, +y, -y.
// An isolated cell yields an empty (non-nil) slice.
// Complexity: O(1).
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range neighborOffsets {
		q := Pos{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) && g.Passable(q) {
			out = append(out, q)
		}
	}

	return out
}

// Walls returns a copy of the blocked cell set. The result order is
// unspecified; callers needing determinism should sort it.
// Complexity: O(W) where W is the number of walls.
func (g *Grid) Walls() []Pos {
	out := make([]Pos, 0, len(g.walls))
	for w := range g.walls {
		out = append(out, w)
	}

	return out
}

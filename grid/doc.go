// Package grid models the planner's world: a rectangular, uniform-cost,
// 4-connected lattice of cells, some of which may be blocked by walls.
//
// It supports:
//
//   - Bounds checks (InBounds) and obstacle checks (Passable)
//   - Neighbor enumeration in a fixed deterministic order (+x, -x, +y, -y),
//     so that any search layered on top expands cells reproducibly
//
// A Grid is immutable once constructed: the wall set is copied by the
// constructor and never mutated afterwards, which makes a single Grid safe
// to share across any number of planning passes.
package grid

package heuristic

import (
	"math"

	"github.com/MarioAouad/Robot-Collector/grid"
)

// Func estimates the remaining distance from a to b. A Func must be pure:
// same inputs, same output, no side effects.
type Func func(a, b grid.Pos) float64

// Manhattan returns |dx| + |dy|: the exact shortest free-space distance under
// 4-connected unit-cost movement, and therefore admissible.
func Manhattan(a, b grid.Pos) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Euclidean returns sqrt(dx² + dy²), the straight-line distance.
func Euclidean(a, b grid.Pos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev returns max(|dx|, |dy|), the king-move distance.
func Chebyshev(a, b grid.Pos) float64 {
	return math.Max(math.Abs(float64(a.X-b.X)), math.Abs(float64(a.Y-b.Y)))
}

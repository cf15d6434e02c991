package server

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/MarioAouad/Robot-Collector/grid"
)

// Signature returns an order-independent fingerprint of a target set.
//
// Drivers capture the signature at plan time and compare it against the
// signature of their live set before deciding to replan: equal signatures
// mean the plan is still valid, a differing one means the set mutated
// (a target collected, an obstacle spawned) and a fresh planning pass is
// due. The core never performs this comparison itself.
func Signature(points []grid.Pos) string {
	sorted := make([]grid.Pos, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})

	h := fnv.New64a()
	for _, p := range sorted {
		fmt.Fprintf(h, "%d,%d;", p.X, p.Y)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

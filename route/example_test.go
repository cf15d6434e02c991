package route_test

import (
	"fmt"

	"github.com/MarioAouad/Robot-Collector/grid"
	"github.com/MarioAouad/Robot-Collector/route"
)

// ExampleBuildPlan plans a collection run over three targets on an open
// grid and prints the visiting order with the total distance.
func ExampleBuildPlan() {
	g, _ := grid.New(5, 5, nil)
	points := []grid.Pos{
		{X: 0, Y: 0}, // home
		{X: 1, Y: 0},
		{X: 3, Y: 0},
		{X: 0, Y: 3},
	}

	plan, err := route.BuildPlan(g, points, 0, 0)
	if err != nil {
		fmt.Println("planning failed:", err)
		return
	}
	for i, wp := range plan.Waypoints {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)", wp.X, wp.Y)
	}
	fmt.Printf("\ntotal moves: %.0f\n", plan.Length)
	// Output:
	// (0,0) (1,0) (3,0) (0,3) (0,0)
	// total moves: 12
}

// ExampleOrderTour orders targets over a prebuilt matrix, starting away
// from home.
func ExampleOrderTour() {
	g, _ := grid.New(5, 5, nil)
	points := []grid.Pos{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}}
	m, _ := route.BuildDistanceMatrix(g, points)

	order, _ := route.OrderTour(m, 0, 1) // currently at (4,4)
	fmt.Println(order)
	// Output:
	// [1 2 0]
}

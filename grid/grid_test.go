package grid_test

import (
	"errors"
	"testing"

	"github.com/MarioAouad/Robot-Collector/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate dimensions and
// out-of-bounds walls.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		walls         []grid.Pos
		err           error
	}{
		{"ZeroWidth", 0, 5, nil, grid.ErrBadDimensions},
		{"ZeroHeight", 5, 0, nil, grid.ErrBadDimensions},
		{"NegativeWidth", -1, 5, nil, grid.ErrBadDimensions},
		{"WallOutside", 3, 3, []grid.Pos{{X: 3, Y: 0}}, grid.ErrWallOutOfBounds},
		{"WallNegative", 3, 3, []grid.Pos{{X: 0, Y: -1}}, grid.ErrWallOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.width, tc.height, tc.walls)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%v) error = %v; want %v", tc.width, tc.height, tc.walls, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3x2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := []grid.Pos{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []grid.Pos{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Passable and Neighbors Tests
//----------------------------------------------------------------------------//

// TestPassable verifies wall cells are reported as blocked.
func TestPassable(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Pos{{X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Passable(grid.Pos{X: 1, Y: 1}) {
		t.Error("Passable(1,1)=true; want false (wall)")
	}
	if !g.Passable(grid.Pos{X: 0, Y: 0}) {
		t.Error("Passable(0,0)=false; want true")
	}
}

// TestNeighbors_Order checks the fixed +x,-x,+y,-y enumeration order on an
// interior cell of an open grid.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.New(3, 3, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := g.Neighbors(grid.Pos{X: 1, Y: 1})
	want := []grid.Pos{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(1,1) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(1,1)[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestNeighbors_Filtering verifies walls and borders are excluded.
func TestNeighbors_Filtering(t *testing.T) {
	g, err := grid.New(2, 2, []grid.Pos{{X: 1, Y: 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// Corner (0,0): +x blocked by wall, -x and -y out of bounds.
	got := g.Neighbors(grid.Pos{X: 0, Y: 0})
	want := []grid.Pos{{X: 0, Y: 1}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestNeighbors_Isolated verifies a fully enclosed cell has no neighbors.
func TestNeighbors_Isolated(t *testing.T) {
	walls := []grid.Pos{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	g, err := grid.New(3, 3, walls)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.Neighbors(grid.Pos{X: 1, Y: 1}); len(got) != 0 {
		t.Errorf("Neighbors(1,1) = %v; want empty", got)
	}
}

// TestWalls_Copy verifies that Walls returns an independent copy and that the
// constructor copied its input.
func TestWalls_Copy(t *testing.T) {
	in := []grid.Pos{{X: 0, Y: 0}}
	g, err := grid.New(2, 2, in)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	in[0] = grid.Pos{X: 1, Y: 1}
	if g.Passable(grid.Pos{X: 0, Y: 0}) {
		t.Error("mutating the input slice leaked into the grid")
	}
	out := g.Walls()
	if len(out) != 1 || out[0] != (grid.Pos{X: 0, Y: 0}) {
		t.Errorf("Walls() = %v; want [(0,0)]", out)
	}
}

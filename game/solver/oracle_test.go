package solver

import (
	"errors"
	"testing"

	"github.com/wricardo/lights-out-game/game/engine"
)

// lit builds a rows x cols grid with the given cells switched on
func lit(rows, cols int, cells ...engine.Move) engine.Grid {
	grid := engine.NewGrid(rows, cols)
	for _, cell := range cells {
		grid[cell.Row][cell.Col] = true
	}
	return grid
}

// allLit builds a rows x cols grid with every cell switched on
func allLit(rows, cols int) engine.Grid {
	grid := engine.NewGrid(rows, cols)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = true
		}
	}
	return grid
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		grid     engine.Grid
		solvable bool
		moves    int
	}{
		{"all off", engine.NewGrid(3, 3), true, 0},
		{"single lit cell", lit(1, 1, engine.Move{Row: 0, Col: 0}), true, 1},
		{"one toggle on 2x2", engine.Grid{{true, true}, {true, false}}, true, 1},
		{"3x3 corner", lit(3, 3, engine.Move{Row: 0, Col: 0}), true, 5},
		{"3x3 all lit", allLit(3, 3), true, 5},
		{"4x4 all lit", allLit(4, 4), true, 4},
		{"4x4 corner", lit(4, 4, engine.Move{Row: 0, Col: 0}), false, -1},
		{"2x3 corner", lit(2, 3, engine.Move{Row: 0, Col: 0}), false, -1},
		{"1x2 left", lit(1, 2, engine.Move{Row: 0, Col: 0}), false, -1},
	}

	oracle := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := oracle.Check(tt.grid)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if report.Solvable != tt.solvable {
				t.Errorf("Expected solvable=%v, got %v", tt.solvable, report.Solvable)
			}
			if report.Moves != tt.moves {
				t.Errorf("Expected %d moves, got %d", tt.moves, report.Moves)
			}
			if report.Bound != DepthBound(tt.grid.Rows(), tt.grid.Cols()) {
				t.Errorf("Expected bound %d, got %d", DepthBound(tt.grid.Rows(), tt.grid.Cols()), report.Bound)
			}
			if IsSolvable(tt.grid) != tt.solvable {
				t.Errorf("IsSolvable disagrees with Check")
			}
		})
	}
}

func TestCheck_UnsolvableExhaustsReachableSet(t *testing.T) {
	// 4x4 has a 4-dimensional null space, so 2^12 configurations are reachable
	report, err := New().Check(lit(4, 4, engine.Move{Row: 0, Col: 0}))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.Visited != 4096 {
		t.Errorf("Expected 4096 visited configurations, got %d", report.Visited)
	}
	if report.Explored != report.Visited {
		t.Errorf("Expected every visited configuration to be explored once, got %d of %d", report.Explored, report.Visited)
	}
}

func TestCheck_AllOffShortCircuits(t *testing.T) {
	report, err := New().Check(engine.NewGrid(5, 5))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.Explored != 1 || report.Visited != 1 {
		t.Errorf("Expected search to stop at the seed, explored=%d visited=%d", report.Explored, report.Visited)
	}
}

func TestCheck_DoesNotModifyInput(t *testing.T) {
	grid := lit(3, 3, engine.Move{Row: 0, Col: 0}, engine.Move{Row: 2, Col: 1})
	before := grid.Clone()

	if _, err := New().Check(grid); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !grid.Equal(before) {
		t.Errorf("Check modified its input:\n%s", grid)
	}
}

func TestCheck_MalformedGrid(t *testing.T) {
	_, err := New().Check(engine.Grid{{true, false}, {true}})
	if !errors.Is(err, engine.ErrMalformedGrid) {
		t.Errorf("Expected ErrMalformedGrid, got %v", err)
	}
	if IsSolvable(engine.Grid{}) {
		t.Error("Expected empty grid not to be solvable")
	}
}

func TestCheck_LargeGridUsesByteKeys(t *testing.T) {
	// 8x9 does not fit in 64 bits
	grid := engine.NewGrid(8, 9)
	grid.Toggle(4, 4)
	grid.Toggle(0, 8)

	report, err := New().Check(grid)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !report.Solvable {
		t.Fatal("Expected two-move grid to be solvable")
	}
	if report.Moves != 2 {
		t.Errorf("Expected 2 moves, got %d", report.Moves)
	}
}

func TestIsSolvable_CompletableGrids(t *testing.T) {
	sizes := []struct {
		rows, cols int
	}{
		{1, 1},
		{2, 2},
		{2, 3},
		{3, 3},
		{3, 4},
		{4, 4},
	}

	rng := engine.NewRand(2024)
	for _, size := range sizes {
		for i := 0; i < 5; i++ {
			grid := engine.CreateCompletableGrid(size.rows, size.cols, rng)
			report, err := New().Check(grid)
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}
			if !report.Solvable {
				t.Errorf("%dx%d: expected generated grid to be solvable:\n%s", size.rows, size.cols, grid)
			}
			if report.Moves > size.rows*size.cols {
				t.Errorf("%dx%d: expected at most %d moves, got %d", size.rows, size.cols, size.rows*size.cols, report.Moves)
			}
		}
	}
}

func TestDepthBound(t *testing.T) {
	if DepthBound(5, 5) != 50 {
		t.Errorf("Expected bound 50 for 5x5, got %d", DepthBound(5, 5))
	}
	if DepthBound(1, 1) != 2 {
		t.Errorf("Expected bound 2 for 1x1, got %d", DepthBound(1, 1))
	}
}

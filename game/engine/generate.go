package engine

import "math/rand/v2"

// CreateCompletableGrid starts from an all-off grid and toggles each cell, in
// row-major order, with probability 0.5. The result is solvable by replaying
// the same moves, and is reachable from all-off in at most rows*cols moves.
func CreateCompletableGrid(rows, cols int, rng *rand.Rand) Grid {
	grid := NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < 0.5 {
				grid.Toggle(r, c)
			}
		}
	}
	return grid
}

// GenerateLevel creates a completable grid from a seed. Equal seeds produce
// equal grids.
func GenerateLevel(rows, cols int, seed int64) Grid {
	return CreateCompletableGrid(rows, cols, NewRand(seed))
}

// NewRand returns a deterministic random source for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

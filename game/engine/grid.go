package engine

import (
	"fmt"
	"strings"
)

// NewGrid creates an all-off grid. It panics if either dimension is not
// positive, the same way make does for a negative length.
func NewGrid(rows, cols int) Grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("engine: invalid grid dimensions %dx%d", rows, cols))
	}
	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	return grid
}

// GridFromRows validates an externally supplied board and returns a copy of it
func GridFromRows(rows [][]bool) (Grid, error) {
	grid := Grid(rows)
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid.Clone(), nil
}

// Validate checks that the grid has at least one cell and every row has the same width
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: row 0 has no cells", ErrMalformedGrid)
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedGrid, i, len(row), cols)
		}
	}
	return nil
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of cells per row
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	clone := make(Grid, len(g))
	for i, row := range g {
		clone[i] = append([]bool(nil), row...)
	}
	return clone
}

// Equal reports whether both grids have the same dimensions and cells
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether every cell is off
func (g Grid) IsSolved() bool {
	for _, row := range g {
		for _, lit := range row {
			if lit {
				return false
			}
		}
	}
	return true
}

// LitCount returns the number of lit cells
func (g Grid) LitCount() int {
	count := 0
	for _, row := range g {
		for _, lit := range row {
			if lit {
				count++
			}
		}
	}
	return count
}

// String renders the grid one row per line, '#' for lit and '.' for off
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, lit := range row {
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

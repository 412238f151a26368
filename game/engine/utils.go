package engine

// Bits packs the configuration row-major into a uint64, bit r*cols+c set when
// the cell is lit. ok is false when the grid has more than MaxPackedCells cells.
func (g Grid) Bits() (bits uint64, ok bool) {
	if g.Rows()*g.Cols() > MaxPackedCells {
		return 0, false
	}
	cols := g.Cols()
	for r, row := range g {
		for c, lit := range row {
			if lit {
				bits |= 1 << uint(r*cols+c)
			}
		}
	}
	return bits, true
}

// Key returns the configuration as a fixed-length packed byte string, row-major,
// least significant bit first. Grids of equal dimensions map to equal-length keys.
func (g Grid) Key() string {
	cols := g.Cols()
	buf := make([]byte, (g.Rows()*cols+7)/8)
	for r, row := range g {
		for c, lit := range row {
			if lit {
				i := r*cols + c
				buf[i/8] |= 1 << uint(i%8)
			}
		}
	}
	return string(buf)
}

// GridFromBits is the inverse of Bits for a rows x cols grid
func GridFromBits(bits uint64, rows, cols int) Grid {
	grid := NewGrid(rows, cols)
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = bits&(1<<uint(r*cols+c)) != 0
		}
	}
	return grid
}

// CellCount returns rows*cols
func (g Grid) CellCount() int {
	return g.Rows() * g.Cols()
}

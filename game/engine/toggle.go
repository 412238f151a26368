package engine

import "fmt"

// toggleOffsets lists the target cell followed by its four orthogonal neighbors
var toggleOffsets = [...]Move{
	{Row: 0, Col: 0},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Toggle flips the cell at (row, col) and each orthogonal neighbor that exists.
// Neighbors outside the grid are skipped, so every affected cell flips exactly once.
// An out-of-bounds target leaves the grid untouched and returns ErrOutOfBounds.
func (g Grid) Toggle(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.Rows(), g.Cols())
	}

	for _, offset := range toggleOffsets {
		r, c := row+offset.Row, col+offset.Col
		if g.InBounds(r, c) {
			g[r][c] = !g[r][c]
		}
	}
	return nil
}

// Apply toggles each move in order, stopping at the first invalid one
func (g Grid) Apply(moves ...Move) error {
	for i, move := range moves {
		if err := g.Toggle(move.Row, move.Col); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	return nil
}

// Toggled returns a new board version with the move applied, leaving g unchanged
func Toggled(g Grid, row, col int) (Grid, error) {
	next := g.Clone()
	if err := next.Toggle(row, col); err != nil {
		return nil, err
	}
	return next, nil
}

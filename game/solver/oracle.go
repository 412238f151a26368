package solver

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/wricardo/lights-out-game/game/engine"
)

// Report captures the outcome of a solvability search
type Report struct {
	Solvable bool `json:"solvable"`

	// Moves is the depth of the first solved configuration, which is the
	// minimal number of toggles. It is -1 when no solution was found.
	Moves int `json:"moves"`

	Explored int           `json:"explored"` // configurations dequeued
	Visited  int           `json:"visited"`  // distinct configurations enqueued
	Bound    int           `json:"bound"`
	Duration time.Duration `json:"duration"`
}

// Oracle runs solvability searches. The zero value is not usable; use New.
type Oracle struct {
	log zerolog.Logger
}

// Option configures an Oracle
type Option func(*Oracle)

// WithLogger sets the logger used to report finished searches
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Oracle) {
		o.log = logger
	}
}

// New creates an Oracle
func New(opts ...Option) *Oracle {
	o := &Oracle{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// DepthBound returns the move count at which the search gives up
func DepthBound(rows, cols int) int {
	return 2 * rows * cols
}

// IsSolvable reports whether some sequence of toggles switches the grid all off.
// A malformed grid is reported as not solvable.
func IsSolvable(grid engine.Grid) bool {
	report, err := New().Check(grid)
	return err == nil && report.Solvable
}

// Check searches for a solution and reports what the search did. The input grid
// is never modified. It fails only on a malformed grid.
func (o *Oracle) Check(grid engine.Grid) (Report, error) {
	if err := grid.Validate(); err != nil {
		return Report{Moves: -1}, err
	}

	start := time.Now()
	var report Report
	if grid.CellCount() <= engine.MaxPackedCells {
		report = search(grid, packedKey)
	} else {
		report = search(grid, engine.Grid.Key)
	}
	report.Duration = time.Since(start)

	o.log.Debug().
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Bool("solvable", report.Solvable).
		Int("moves", report.Moves).
		Int("explored", report.Explored).
		Int("visited", report.Visited).
		Dur("duration", report.Duration).
		Msg("solvability search finished")

	return report, nil
}

// packedKey is Grid.Bits for grids already known to fit
func packedKey(grid engine.Grid) uint64 {
	bits, _ := grid.Bits()
	return bits
}

// node is a frontier entry: a configuration and the moves taken to reach it
type node struct {
	grid  engine.Grid
	moves int
}

// search runs the breadth-first search using key to canonicalize configurations
func search[K comparable](start engine.Grid, key func(engine.Grid) K) Report {
	rows, cols := start.Rows(), start.Cols()
	report := Report{
		Moves: -1,
		Bound: DepthBound(rows, cols),
	}

	visited := mapset.New[K]()
	frontier := queue.New[node]()

	seed := start.Clone()
	visited.Put(key(seed))
	frontier.Enqueue(node{grid: seed})

	for !frontier.Empty() {
		current := frontier.Dequeue()
		report.Explored++

		if current.grid.IsSolved() {
			report.Solvable = true
			report.Moves = current.moves
			break
		}

		if current.moves >= report.Bound {
			break
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				// Each candidate gets its own copy so siblings never share state
				candidate := current.grid.Clone()
				if err := candidate.Toggle(r, c); err != nil {
					continue
				}

				k := key(candidate)
				if visited.Has(k) {
					continue
				}
				visited.Put(k)
				frontier.Enqueue(node{grid: candidate, moves: current.moves + 1})
			}
		}
	}

	report.Visited = visited.Size()
	return report
}

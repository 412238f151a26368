package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// Engine provides the in-play interface consumed by a renderer
type Engine interface {
	// Board state
	Grid() Grid
	IsSolved() bool
	Moves() int

	// Moves
	Toggle(row, col int) (*ToggleResult, error)
	Reset() Grid

	// Levels
	Level() Level
	LevelIndex() int
	LevelCount() int
	SetLevel(index int) error

	// Input mapping
	CellAt(px, py, cellSize int) (Move, bool)
}

// GameEngine implements the Engine interface. It owns exactly one live grid,
// always a copy of the current level's board, and is meant for a single owner.
type GameEngine struct {
	levels  []Level
	current Level
	grid    Grid
	moves   int

	rows int
	cols int
	rng  *rand.Rand
	log  zerolog.Logger
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithRand sets the random source used to generate levels when no level list is loaded
func WithRand(rng *rand.Rand) Option {
	return func(e *GameEngine) {
		e.rng = rng
	}
}

// WithDimensions sets the size of generated levels
func WithDimensions(rows, cols int) Option {
	return func(e *GameEngine) {
		e.rows = rows
		e.cols = cols
	}
}

// WithLogger sets the engine logger
func WithLogger(logger zerolog.Logger) Option {
	return func(e *GameEngine) {
		e.log = logger
	}
}

// NewEngine creates a game engine over the given level list and loads the first
// level. Level indexes are renumbered by position. An empty list makes the
// engine generate a completable grid for every level.
func NewEngine(levels []Level, opts ...Option) (*GameEngine, error) {
	e := &GameEngine{
		rows: DefaultRows,
		cols: DefaultCols,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rows < 1 || e.cols < 1 {
		return nil, fmt.Errorf("%w: generated level size %dx%d", ErrMalformedGrid, e.rows, e.cols)
	}
	if e.rng == nil {
		e.rng = NewRand(time.Now().UnixNano())
	}

	e.levels = make([]Level, len(levels))
	for i, level := range levels {
		if err := level.Board.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		e.levels[i] = Level{Index: i, Name: level.Name, Board: level.Board.Clone()}
	}

	e.load(0)
	return e, nil
}

// Grid returns a copy of the live board
func (e *GameEngine) Grid() Grid {
	return e.grid.Clone()
}

// IsSolved reports whether the live board is all off
func (e *GameEngine) IsSolved() bool {
	return e.grid.IsSolved()
}

// Moves returns the number of moves played on the current level
func (e *GameEngine) Moves() int {
	return e.moves
}

// Toggle applies a move to a new version of the live board. When the move
// solves the board, the next level is loaded before returning.
func (e *GameEngine) Toggle(row, col int) (*ToggleResult, error) {
	next, err := Toggled(e.grid, row, col)
	if err != nil {
		return nil, err
	}

	e.grid = next
	e.moves++

	result := &ToggleResult{
		Move:      Move{Row: row, Col: col},
		Grid:      next.Clone(),
		Level:     e.current.Index,
		NextLevel: e.current.Index,
		Moves:     e.moves,
	}

	if next.IsSolved() {
		result.LevelComplete = true
		e.log.Info().
			Int("level", e.current.Index).
			Int("moves", e.moves).
			Msg("level complete")

		e.load(e.nextIndex())
		result.NextLevel = e.current.Index
	}

	return result, nil
}

// Reset restores the current level's initial board
func (e *GameEngine) Reset() Grid {
	e.grid = e.current.Board.Clone()
	e.moves = 0
	return e.Grid()
}

// Level returns the current level with a copy of its initial board
func (e *GameEngine) Level() Level {
	level := e.current
	level.Board = level.Board.Clone()
	return level
}

// LevelIndex returns the index of the level in play
func (e *GameEngine) LevelIndex() int {
	return e.current.Index
}

// LevelCount returns the number of loaded levels; zero means levels are generated
func (e *GameEngine) LevelCount() int {
	return len(e.levels)
}

// SetLevel jumps to a level. Indexes past the end wrap around the level list.
func (e *GameEngine) SetLevel(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrLevelIndex, index)
	}
	e.load(index)
	return nil
}

// CellAt maps a pointer position in pixels to the cell under it, dividing by the
// cell size. ok is false when the point is outside the board.
func (e *GameEngine) CellAt(px, py, cellSize int) (Move, bool) {
	if cellSize <= 0 || px < 0 || py < 0 {
		return Move{}, false
	}
	move := Move{Row: py / cellSize, Col: px / cellSize}
	if !e.grid.InBounds(move.Row, move.Col) {
		return Move{}, false
	}
	return move, true
}

// nextIndex returns the level that follows the current one
func (e *GameEngine) nextIndex() int {
	return e.current.Index + 1
}

// load makes the level at index current and copies its board into play
func (e *GameEngine) load(index int) {
	if len(e.levels) == 0 {
		e.current = Level{
			Index: index,
			Name:  GeneratedLevelName,
			Board: e.generate(),
		}
	} else {
		e.current = e.levels[index%len(e.levels)]
	}

	e.grid = e.current.Board.Clone()
	e.moves = 0

	e.log.Debug().
		Int("level", e.current.Index).
		Str("name", e.current.Name).
		Int("lit", e.grid.LitCount()).
		Msg("level loaded")
}

// generate creates a completable grid with at least one lit cell
func (e *GameEngine) generate() Grid {
	for {
		grid := CreateCompletableGrid(e.rows, e.cols, e.rng)
		if !grid.IsSolved() {
			return grid
		}
	}
}

package engine

import "errors"

const (
	// Fallback board size when no level data is available
	DefaultRows = 5
	DefaultCols = 5

	// MaxPackedCells is the largest cell count whose configuration fits in a uint64
	MaxPackedCells = 64

	// GeneratedLevelName names levels produced when no level list is loaded
	GeneratedLevelName = "generated"
)

var (
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrMalformedGrid = errors.New("malformed grid")
	ErrLevelIndex    = errors.New("invalid level index")
)

// Grid is a rectangular lights out board stored row-major. A true cell is lit.
type Grid [][]bool

// Move identifies the target cell of a toggle
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Level is an entry of the level list. Board is never mutated after load;
// play always happens on a copy.
type Level struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Board Grid   `json:"board"`
}

// ToggleResult describes the outcome of a single move on the live board
type ToggleResult struct {
	Move Move `json:"move"`

	// Grid is the board right after the move, before any level change
	Grid Grid `json:"grid"`

	// Level is the index the move was played on; NextLevel is the index now in play
	Level     int `json:"level"`
	NextLevel int `json:"next_level"`

	Moves         int  `json:"moves"`
	LevelComplete bool `json:"level_complete"`
}

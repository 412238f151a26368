package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wricardo/lights-out-game/game/engine"
)

var (
	ErrMalformedLevel = errors.New("malformed level")
	ErrLevelNotFound  = errors.New("level not found")
)

// levelList mirrors the JSON schema of a level list file
type levelList struct {
	Levels []levelEntry `json:"levels"`
}

// levelEntry is a single level as stored on disk
type levelEntry struct {
	Name  string   `json:"name,omitempty"`
	Board [][]bool `json:"board"`
}

// Decode reads a level list. Every board must be rectangular and non-empty.
func Decode(r io.Reader) ([]engine.Level, error) {
	var list levelList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedLevel, err)
	}

	levels := make([]engine.Level, 0, len(list.Levels))
	for i, entry := range list.Levels {
		board, err := engine.GridFromRows(entry.Board)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrMalformedLevel, i, err)
		}
		levels = append(levels, engine.Level{
			Index: i,
			Name:  entry.Name,
			Board: board,
		})
	}

	return levels, nil
}

// Encode writes a level list in the format read by Decode
func Encode(w io.Writer, levels []engine.Level) error {
	list := levelList{Levels: make([]levelEntry, 0, len(levels))}
	for i, level := range levels {
		if err := level.Board.Validate(); err != nil {
			return fmt.Errorf("%w: level %d: %v", ErrMalformedLevel, i, err)
		}
		list.Levels = append(list.Levels, levelEntry{
			Name:  level.Name,
			Board: level.Board,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// LoadFile reads a level list from disk
func LoadFile(path string) ([]engine.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level list: %w", err)
	}
	defer f.Close()

	levels, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}

// WriteFile writes a level list to disk, replacing any existing file
func WriteFile(path string, levels []engine.Level) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create level list: %w", err)
	}

	if err := Encode(f, levels); err != nil {
		f.Close()
		return fmt.Errorf("failed to write level list: %w", err)
	}
	return f.Close()
}

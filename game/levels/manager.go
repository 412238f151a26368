package levels

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wricardo/lights-out-game/game/engine"
)

// Manager handles level list loading and caching
type Manager struct {
	path   string
	levels []engine.Level
	log    zerolog.Logger
	mu     sync.RWMutex
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithLogger sets the manager logger
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = logger
	}
}

// NewManager creates a level manager and loads the list at path
func NewManager(path string, opts ...ManagerOption) (*Manager, error) {
	// Ensure level file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("level list does not exist: %s", path)
	}

	m := &Manager{
		path: path,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Path returns the level list location
func (m *Manager) Path() string {
	return m.path
}

// Count returns the number of loaded levels
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.levels)
}

// Level returns the level at index with a copy of its board
func (m *Manager) Level(index int) (engine.Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 0 || index >= len(m.levels) {
		return engine.Level{}, fmt.Errorf("%w: index %d of %d", ErrLevelNotFound, index, len(m.levels))
	}
	return copyLevel(m.levels[index]), nil
}

// Levels returns a copy of every loaded level
func (m *Manager) Levels() []engine.Level {
	m.mu.RLock()
	defer m.mu.RUnlock()

	levels := make([]engine.Level, len(m.levels))
	for i, level := range m.levels {
		levels[i] = copyLevel(level)
	}
	return levels
}

// Reload reads the level list from disk again. On failure the cached list is kept.
func (m *Manager) Reload() error {
	levels, err := LoadFile(m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.levels = levels
	m.mu.Unlock()

	m.log.Debug().
		Str("path", m.path).
		Int("levels", len(levels)).
		Msg("level list loaded")
	return nil
}

// copyLevel returns level with its own board
func copyLevel(level engine.Level) engine.Level {
	level.Board = level.Board.Clone()
	return level
}

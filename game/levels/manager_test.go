package levels

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/lights-out-game/game/engine"
)

func createTestLevelDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "levels-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}

func writeLevelFile(t *testing.T, dir string, levels []engine.Level) string {
	path := filepath.Join(dir, "levels.json")
	if err := WriteFile(path, levels); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}
	return path
}

func createValidLevels() []engine.Level {
	return []engine.Level{
		{Name: "One", Board: engine.GenerateLevel(3, 3, 1)},
		{Name: "Two", Board: engine.GenerateLevel(3, 3, 2)},
		{Name: "Three", Board: engine.GenerateLevel(4, 4, 3)},
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		dir := createTestLevelDir(t)
		defer os.RemoveAll(dir)

		path := writeLevelFile(t, dir, createValidLevels())
		manager, err := NewManager(path)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.Count() != 3 {
			t.Errorf("Expected 3 levels, got %d", manager.Count())
		}
		if manager.Path() != path {
			t.Errorf("Expected path %s, got %s", path, manager.Path())
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := NewManager("/non/existent/levels.json")
		if err == nil {
			t.Error("Expected error for non-existent file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := createTestLevelDir(t)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "levels.json")
		if err := os.WriteFile(path, []byte(`{"levels": [{"board": [[true], []]}]}`), 0644); err != nil {
			t.Fatalf("Failed to write level file: %v", err)
		}

		_, err := NewManager(path)
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("Expected ErrMalformedLevel, got %v", err)
		}
	})
}

func TestManager_Level(t *testing.T) {
	dir := createTestLevelDir(t)
	defer os.RemoveAll(dir)

	levels := createValidLevels()
	manager, err := NewManager(writeLevelFile(t, dir, levels))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	level, err := manager.Level(2)
	if err != nil {
		t.Fatalf("Failed to get level: %v", err)
	}
	if level.Index != 2 || level.Name != "Three" {
		t.Errorf("Expected level 2 named Three, got %d %q", level.Index, level.Name)
	}
	if !level.Board.Equal(levels[2].Board) {
		t.Error("Expected board to match written level")
	}

	for _, index := range []int{-1, 3} {
		if _, err := manager.Level(index); !errors.Is(err, ErrLevelNotFound) {
			t.Errorf("Level(%d): expected ErrLevelNotFound, got %v", index, err)
		}
	}
}

func TestManager_ReturnsCopies(t *testing.T) {
	dir := createTestLevelDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(writeLevelFile(t, dir, createValidLevels()))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	level, _ := manager.Level(0)
	before := level.Board.Clone()
	level.Board.Toggle(1, 1)

	again, _ := manager.Level(0)
	if !again.Board.Equal(before) {
		t.Error("Mutating a returned board changed the cached level")
	}

	all := manager.Levels()
	all[1].Board.Toggle(0, 0)
	second, _ := manager.Level(1)
	if second.Board.Equal(all[1].Board) {
		t.Error("Mutating Levels() result changed the cached level")
	}
}

func TestManager_Reload(t *testing.T) {
	dir := createTestLevelDir(t)
	defer os.RemoveAll(dir)

	path := writeLevelFile(t, dir, createValidLevels())
	manager, err := NewManager(path)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	writeLevelFile(t, dir, createValidLevels()[:1])
	if err := manager.Reload(); err != nil {
		t.Fatalf("Failed to reload: %v", err)
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 level after reload, got %d", manager.Count())
	}

	// A broken file keeps the cached list
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to corrupt level file: %v", err)
	}
	if err := manager.Reload(); err == nil {
		t.Error("Expected reload of corrupt file to fail")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected cached level to survive failed reload, got %d", manager.Count())
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestLevelDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(writeLevelFile(t, dir, createValidLevels()))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				if err := manager.Reload(); err != nil {
					t.Errorf("Reload failed: %v", err)
				}
				return
			}
			if _, err := manager.Level(i % 3); err != nil {
				t.Errorf("Level failed: %v", err)
			}
			_ = manager.Levels()
		}(i)
	}
	wg.Wait()
}

func TestManager_FeedsEngine(t *testing.T) {
	dir := createTestLevelDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(writeLevelFile(t, dir, createValidLevels()))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	gameEngine, err := engine.NewEngine(manager.Levels())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	if gameEngine.LevelCount() != manager.Count() {
		t.Errorf("Expected %d levels in engine, got %d", manager.Count(), gameEngine.LevelCount())
	}
}

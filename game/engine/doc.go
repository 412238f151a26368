// Package engine provides the core puzzle logic for the Lights Out game.
//
// The engine package implements:
//   - The rectangular boolean board (Grid) and its invariants
//   - The toggle rule: a move flips the target cell and its existing
//     orthogonal neighbors, with no wraparound
//   - The solved predicate (every cell off)
//   - Level generation that is solvable by construction
//   - Canonical encodings of a board configuration
//   - GameEngine, which owns the live board and advances through levels
//
// Core Types:
//
// Grid is a row-major [][]bool where true means lit. Move names a target
// cell. Level pairs an immutable initial board with its ordinal in the
// level list. The Engine interface defines the in-play contract consumed by
// a renderer, implemented by GameEngine.
//
// Usage:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	grid := engine.CreateCompletableGrid(5, 5, rng)
//
//	gameEngine, err := engine.NewEngine(levels, engine.WithRand(rng))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameEngine.Toggle(2, 2)
//	if result.LevelComplete {
//		// the engine already loaded the next level
//	}
//
// Game Rules:
//
// Toggling is an involution: applying the same move twice restores the prior
// board, and moves commute. Any board produced by toggling an all-off board is
// therefore solved by replaying the same set of moves.
package engine

// Package levels loads the static level list for the Lights Out game.
//
// The levels package handles:
//   - Decoding the JSON level list and checking every board is rectangular
//   - Caching the loaded list behind a Manager safe for concurrent reads
//   - Writing a level list, used by the authoring tool
//
// Level Format:
//
// A level list is a JSON object with a "levels" array. Each entry holds an
// optional name and a row-major board of booleans, true meaning lit:
//
//	{
//	  "levels": [
//	    {"name": "First", "board": [[false, true], [true, true]]}
//	  ]
//	}
//
// Levels are indexed by their position in the array. Loading never checks
// solvability; use the solver package to certify a list.
//
// Usage:
//
//	manager, err := levels.NewManager("levels.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	level, err := manager.Level(0)
package levels

// Package config provides settings management for the Lights Out tools.
//
// The config package handles:
//   - Loading settings from an optional YAML file
//   - Falling back to defaults when the file is absent
//   - Validating dimensions, limits and the log level
//
// Settings Format:
//
//	levels_file: levels.json
//	rows: 5
//	cols: 5
//	seed: 0          # 0 picks a time-based seed
//	max_cells: 20    # larger boards are skipped by the solvability check
//	log_level: info
//
// Usage:
//
//	settings, err := config.Load("lightsout.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
package config

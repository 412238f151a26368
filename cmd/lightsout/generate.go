package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zyedidia/generic/mapset"

	"github.com/wricardo/lights-out-game/game/engine"
	"github.com/wricardo/lights-out-game/game/levels"
)

// maxAttemptsPerLevel bounds generation on tiny boards with few distinct configurations
const maxAttemptsPerLevel = 100

func (a *app) generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write a level list of boards that are solvable by construction",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "number of levels",
			},
			&cli.IntFlag{
				Name:    "rows",
				Usage:   "board rows (default from settings)",
				Sources: cli.EnvVars("LIGHTSOUT_ROWS"),
			},
			&cli.IntFlag{
				Name:    "cols",
				Usage:   "board columns (default from settings)",
				Sources: cli.EnvVars("LIGHTSOUT_COLS"),
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed, 0 picks one from the clock (default from settings)",
				Sources: cli.EnvVars("LIGHTSOUT_SEED"),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default: the configured level list)",
			},
		},
		Action: a.generate,
	}
}

// generate creates distinct completable boards and writes them as a level list
func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	settings := *a.settings
	if cmd.IsSet("rows") {
		settings.Rows = cmd.Int("rows")
	}
	if cmd.IsSet("cols") {
		settings.Cols = cmd.Int("cols")
	}
	if cmd.IsSet("seed") {
		settings.Seed = cmd.Int64("seed")
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	count := cmd.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	path := settings.LevelsFile
	if cmd.IsSet("out") {
		path = cmd.String("out")
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := engine.NewRand(seed)

	seen := mapset.New[string]()
	generated := make([]engine.Level, 0, count)
	for attempts := 0; len(generated) < count && attempts < count*maxAttemptsPerLevel; attempts++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		grid := engine.CreateCompletableGrid(settings.Rows, settings.Cols, rng)
		key := grid.Key()
		if grid.IsSolved() || seen.Has(key) {
			continue
		}
		seen.Put(key)

		generated = append(generated, engine.Level{
			Index: len(generated),
			Name:  fmt.Sprintf("Level %d", len(generated)+1),
			Board: grid,
		})
	}

	if len(generated) < count {
		a.log.Warn().
			Int("requested", count).
			Int("generated", len(generated)).
			Msg("ran out of distinct boards")
	}

	if err := levels.WriteFile(path, generated); err != nil {
		return err
	}

	a.log.Info().
		Str("path", path).
		Int64("seed", seed).
		Int("levels", len(generated)).
		Msg("level list written")

	fmt.Fprintf(out(cmd), "Wrote %d %dx%d levels to %s (seed %d)\n", len(generated), settings.Rows, settings.Cols, path, seed)
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/lights-out-game/game/levels"
	"github.com/wricardo/lights-out-game/game/solver"
)

var errUnsolvable = errors.New("unsolvable levels found")

func (a *app) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "verify every level of a level list is solvable",
		ArgsUsage: "[levels.json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max-cells",
				Usage:   "skip boards with more cells than this (search cost is exponential)",
				Sources: cli.EnvVars("LIGHTSOUT_MAX_CELLS"),
			},
		},
		Action: a.check,
	}
}

// check loads the level list and runs the solvability search on each level,
// printing a report and failing when any level cannot be solved.
func (a *app) check(ctx context.Context, cmd *cli.Command) error {
	maxCells := a.settings.MaxCells
	if cmd.IsSet("max-cells") {
		maxCells = cmd.Int("max-cells")
	}

	manager, err := levels.NewManager(a.levelsPath(cmd), levels.WithLogger(a.log))
	if err != nil {
		return err
	}

	oracle := solver.New(solver.WithLogger(a.log))
	w := out(cmd)

	unsolvable, skipped := 0, 0
	for _, level := range manager.Levels() {
		if err := ctx.Err(); err != nil {
			return err
		}

		board := level.Board
		fmt.Fprintf(w, "\n%s level %d %s\n", strings.Repeat("=", 20), level.Index, level.Name)
		fmt.Fprintf(w, "  Grid: %dx%d, lit: %d\n", board.Rows(), board.Cols(), board.LitCount())

		if board.CellCount() > maxCells {
			skipped++
			fmt.Fprintf(w, "  ⏭  SKIPPED: %d cells exceeds max %d\n", board.CellCount(), maxCells)
			continue
		}

		report, err := oracle.Check(board)
		if err != nil {
			return fmt.Errorf("level %d: %w", level.Index, err)
		}

		if report.Solvable {
			fmt.Fprintf(w, "  ✅ SOLVABLE in %d moves (%d configurations explored)\n", report.Moves, report.Explored)
		} else {
			unsolvable++
			fmt.Fprintf(w, "  ❌ NOT SOLVABLE within %d moves (%d configurations explored)\n", report.Bound, report.Explored)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	checked := manager.Count() - skipped
	if unsolvable > 0 {
		fmt.Fprintf(w, "❌ %d of %d checked levels are not solvable\n", unsolvable, checked)
		return fmt.Errorf("%w: %d of %d", errUnsolvable, unsolvable, checked)
	}

	fmt.Fprintf(w, "✅ All %d checked levels are solvable", checked)
	if skipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", skipped)
	}
	fmt.Fprintln(w)
	return nil
}

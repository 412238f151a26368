package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/lights-out-game/game/levels"
	"github.com/wricardo/lights-out-game/game/solver"
)

func (a *app) solveCommand() *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "report the minimal number of moves for one level",
		ArgsUsage: "[levels.json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "level",
				Value: 0,
				Usage: "level index",
			},
		},
		Action: a.solve,
	}
}

func (a *app) solve(ctx context.Context, cmd *cli.Command) error {
	manager, err := levels.NewManager(a.levelsPath(cmd), levels.WithLogger(a.log))
	if err != nil {
		return err
	}

	level, err := manager.Level(cmd.Int("level"))
	if err != nil {
		return err
	}

	if level.Board.CellCount() > a.settings.MaxCells {
		a.log.Warn().
			Int("cells", level.Board.CellCount()).
			Int("max_cells", a.settings.MaxCells).
			Msg("large board, search may take a long time")
	}

	report, err := solver.New(solver.WithLogger(a.log)).Check(level.Board)
	if err != nil {
		return err
	}

	w := out(cmd)
	fmt.Fprintf(w, "%s\n", level.Board)
	if report.Solvable {
		fmt.Fprintf(w, "Level %d: solvable in %d moves\n", level.Index, report.Moves)
	} else {
		fmt.Fprintf(w, "Level %d: not solvable within %d moves\n", level.Index, report.Bound)
	}
	fmt.Fprintf(w, "Explored %d configurations in %v\n", report.Explored, report.Duration)
	return nil
}

// Command lightsout is the authoring tool for Lights Out level lists.
//
// It supports three commands:
//  1. "check" – certifies that every level in a list is solvable
//  2. "generate" – writes a list of levels that are solvable by construction
//  3. "solve" – reports the minimal number of moves for one level
//
// Settings come from an optional YAML file, environment variables (a .env file
// is loaded when present) and flags, in increasing order of precedence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/lights-out-game/game/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Lights Out Level Tool"
)

// app carries state shared by the commands once the root Before hook has run
type app struct {
	settings *config.Settings
	log      zerolog.Logger
}

// newCommand builds the command tree
func newCommand() *cli.Command {
	a := &app{
		settings: config.Default(),
		log:      zerolog.Nop(),
	}

	return &cli.Command{
		Name:    "lightsout",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "lightsout.yaml",
				Usage:   "settings file (YAML); missing file means defaults",
				Sources: cli.EnvVars("LIGHTSOUT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "levels",
				Aliases: []string{"l"},
				Usage:   "level list file, overrides levels_file from settings",
				Sources: cli.EnvVars("LIGHTSOUT_LEVELS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.checkCommand(),
			a.generateCommand(),
			a.solveCommand(),
		},
	}
}

// before loads settings and builds the logger
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet("levels") {
		settings.LevelsFile = cmd.String("levels")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
	}
	if cmd.Bool("debug") {
		settings.LogLevel = zerolog.DebugLevel.String()
	}
	if err := settings.Validate(); err != nil {
		return ctx, err
	}

	var errWriter io.Writer = os.Stderr
	if w := cmd.Root().ErrWriter; w != nil {
		errWriter = w
	}

	a.settings = settings
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: errWriter, TimeFormat: time.Kitchen}).
		Level(settings.Level()).
		With().
		Timestamp().
		Logger()

	a.log.Debug().
		Str("config", cmd.String("config")).
		Str("levels_file", settings.LevelsFile).
		Msg("settings loaded")

	return ctx, nil
}

// out returns the writer for command results
func out(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// levelsPath returns the level list named on the command line, or the configured one
func (a *app) levelsPath(cmd *cli.Command) string {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First()
	}
	return a.settings.LevelsFile
}

// main loads the environment and runs the selected command until it finishes
// or the process is interrupted.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		stop()
		os.Exit(1)
	}
}

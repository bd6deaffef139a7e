package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/config"
	"github.com/dmitrymomot/uranus/pkg/logger"
)

// EnvPrefix prefixes every environment variable the command line reads.
const EnvPrefix = "URANUS_"

// ErrReportInvalid is returned by validate when the report is invalid.
var ErrReportInvalid = errors.New("validation report is invalid")

type app struct {
	log *slog.Logger
}

// New returns the root command.
func New(version string) *cli.Command {
	a := &app{log: logger.Discard()}

	return &cli.Command{
		Name:                  "uranus",
		Usage:                 "Rule-based validation engine",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(EnvPrefix + "LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   string(logger.FormatText),
				Usage:   "log format (text, json)",
				Sources: cli.EnvVars(EnvPrefix + "LOG_FORMAT"),
			},
		},
		Before: a.setupLogger,
		Commands: []*cli.Command{
			a.validateCmd(),
			a.rulesCmd(),
			a.serveCmd(),
		},
	}
}

func (a *app) setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := logger.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, err
	}

	format := logger.Format(cmd.String("log-format"))
	if format != logger.FormatText && format != logger.FormatJSON {
		return ctx, fmt.Errorf("unknown log format: %q, valid formats are: text, json", format)
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.Root().ErrWriter),
	)
	return ctx, nil
}

// engineOptions loads uranus.Config from the environment.
func (a *app) engineOptions() ([]uranus.Option, error) {
	var cfg uranus.Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return nil, fmt.Errorf("failed to load engine config: %w", err)
	}
	return []uranus.Option{uranus.WithConfig(cfg), uranus.WithLogger(a.log)}, nil
}

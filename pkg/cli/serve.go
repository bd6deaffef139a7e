package cli

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/api"
	"github.com/dmitrymomot/uranus/pkg/config"
	"github.com/dmitrymomot/uranus/pkg/httpserver"
	"github.com/dmitrymomot/uranus/pkg/metrics"
)

// ServeConfig holds API settings read from URANUS_* variables.
type ServeConfig struct {
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	Metrics      bool  `env:"METRICS" envDefault:"true"`
}

func (a *app) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the validation HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides URANUS_HTTP_ADDR)",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Value: true,
				Usage: "expose Prometheus metrics on /metrics",
			},
		},
		Action: a.serve,
	}
}

func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	var serveCfg ServeConfig
	if err := config.Load(&serveCfg, config.WithPrefix(EnvPrefix)); err != nil {
		return fmt.Errorf("failed to load serve config: %w", err)
	}
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg, config.WithPrefix(EnvPrefix+"HTTP_")); err != nil {
		return fmt.Errorf("failed to load http config: %w", err)
	}
	if cmd.IsSet("addr") {
		httpCfg.Addr = cmd.String("addr")
	}
	if cmd.IsSet("metrics") {
		serveCfg.Metrics = cmd.Bool("metrics")
	}

	engineOpts, err := a.engineOptions()
	if err != nil {
		return err
	}

	apiOpts := api.Opts{
		MaxBodyBytes: serveCfg.MaxBodyBytes,
		Logger:       a.log,
	}
	if serveCfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		engineOpts = append(engineOpts, uranus.WithObserver(metrics.New(reg)))
		apiOpts.Gatherer = reg
	}
	apiOpts.EngineOptions = engineOpts

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
	return srv.Run(ctx, api.New(apiOpts))
}

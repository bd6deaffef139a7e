// Package httpserver runs an http.Handler with configurable timeouts,
// structured logging and graceful shutdown.
//
// # Architecture
//
// Server wraps a standard *http.Server. New applies functional options over
// package defaults; NewFromConfig does the same starting from a Config that
// is usually loaded from the environment with package config. Options are
// applied after the Config, so an explicit option always wins.
//
// Run binds the listener (or uses the one given with WithListener), starts
// serving, and blocks until one of the following happens:
//
//   - the context passed to Run is cancelled;
//   - the process receives an interrupt or SIGTERM;
//   - Shutdown is called from another goroutine;
//   - the underlying server fails.
//
// In the first three cases in-flight requests are drained within the
// shutdown timeout before Run returns.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg, config.WithPrefix("URANUS_HTTP_"))
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger) { l.Info("ready") }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Start hooks run once the listener is bound; stop hooks run after the
// server has shut down. Both receive the server logger.
//
// # Health checks
//
// HealthHandler serves liveness and readiness endpoints. Without checks it
// answers 200 "ALIVE". With checks it runs each Check with the request
// context and answers 200 "READY" or 503 "NOT_READY":
//
//	r.Get("/health/live", httpserver.HealthHandler(log))
//	r.Get("/health/ready", httpserver.HealthHandler(log, func(ctx context.Context) error {
//		return nil
//	}))
//
// # Errors
//
// Listen and serve failures are wrapped with ErrStart, failed graceful
// shutdowns with ErrShutdown. Use errors.Is to distinguish them. A server
// stopped on purpose returns nil from Run.
package httpserver

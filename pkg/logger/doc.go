// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so that log keys stay consistent across the
// engine, the HTTP API and the command line.
//
// # Construction
//
// New picks a text or JSON handler, applies static attributes, and wraps the
// result in a ContextHandler that runs registered ContextExtractor callbacks
// on every record:
//
//	log := logger.New(
//		logger.WithEnvironment(logger.EnvProduction, "uranus"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "validation completed",
//		logger.Form("fields"),
//		logger.Duration(time.Since(start)),
//	)
//
// WithEnvironment selects debug level and text output for development and
// info level with JSON output for anything else. WithLevelName accepts the
// names understood by ParseLevel ("debug", "info", "warn", "error") and
// panics on anything else, so a misconfigured logger stops start-up.
//
// # Attributes
//
// Rule, Field, Form, Duration, RequestID and Component give the keys used
// throughout the module. Error and Errors return an empty attribute for nil
// errors, so they can be passed unconditionally.
//
// Discard returns a logger backed by slog.DiscardHandler. It is the engine
// default when no logger is configured.
package logger

package logger

import "log/slog"

// Discard returns a logger that drops every record. Enabled always reports
// false so callers skip attribute construction.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

package uranus

import (
	"log/slog"

	"github.com/dmitrymomot/uranus/pkg/rules"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	progressive bool
	duplicates  DuplicatePolicy
	registry    rules.Registry
	hasRegistry bool
	extensions  []map[string]rules.Predicate
	logger      *slog.Logger
	observer    Observer
}

// WithProgressive enables or disables short-circuiting after the first
// failed rule of each value.
func WithProgressive(enabled bool) Option {
	return func(o *options) { o.progressive = enabled }
}

// WithConfig applies a loaded Config.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.progressive = cfg.Progressive
		if cfg.StrictRuleNames {
			o.duplicates = DuplicateReject
		} else {
			o.duplicates = DuplicateLastWins
		}
	}
}

// WithDuplicatePolicy sets how repeated rule names are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *options) { o.duplicates = p }
}

// WithRegistry replaces the built-in registry used as the merge base.
func WithRegistry(r rules.Registry) Option {
	return func(o *options) {
		o.registry = r
		o.hasRegistry = true
	}
}

// WithPredicates merges additional predicates into the registry when the
// engine is built. Later calls override earlier ones on name clashes.
func WithPredicates(preds map[string]rules.Predicate) Option {
	return func(o *options) {
		if len(preds) > 0 {
			o.extensions = append(o.extensions, preds)
		}
	}
}

// WithLogger supplies a logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an Observer for rule and call events.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

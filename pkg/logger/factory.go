package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Deployment environments understood by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithLevelName sets the level from its textual form ("debug", "info",
// "warn", "error"). Panics on unknown names: a misconfigured logger must
// prevent startup.
func WithLevelName(name string) Option {
	return func(c *config) {
		level, err := ParseLevel(name)
		if err != nil {
			panic(err)
		}
		c.level = level
	}
}

// ParseLevel converts a level name to slog.Level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// WithFormat sets output format.
// Panics for invalid formats to enforce fail-fast initialization.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions allows fine-grained control over slog behavior.
// Nil options are ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue is a convenience wrapper adding a context value extractor.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies per-environment defaults: text at debug level for
// development, JSON at info level for anything else. The service name is
// attached to every record.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		switch env {
		case EnvDevelopment, "dev", "":
			c.level = slog.LevelDebug
			c.format = FormatText
			env = EnvDevelopment
		default:
			c.level = slog.LevelInfo
			c.format = FormatJSON
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// defaultConfig writes JSON at INFO to stderr; stdout is reserved for
// command output.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
}

// New creates a configured slog.Logger with context injection capabilities.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

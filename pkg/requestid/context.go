package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uranus/pkg/logger"
)

type contextKey struct{}

// WithContext stores id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the stored id or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Extractor adds the request id to every record logged with a request
// context. Pass it to logger.WithContextExtractors.
func Extractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}

package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records a rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Field records a field name or sequence position under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Form records the validation entry point under the key "form".
func Form(form string) slog.Attr {
	return slog.String("form", form)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

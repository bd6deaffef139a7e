package rules

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"01/02/2006",
	"2006.01.02",
	"2. 1. 2006.",
	"2. 1. 2006. MST",
}

func parseDate(value any) (time.Time, bool) {
	if t, ok := value.(time.Time); ok {
		return t, !t.IsZero()
	}
	s := strings.TrimSpace(String(value))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateArg(rule string, args []any) (time.Time, error) {
	a, ok := optArg(args, 0)
	if !ok {
		return time.Now(), nil
	}
	t, ok := parseDate(a)
	if !ok {
		return time.Time{}, argError(rule, "invalid date %q", String(a))
	}
	return t, nil
}

// IsDate validates RFC 3339 timestamps and the common date layouts:
// YYYY-MM-DD (optionally with a time), MM/DD/YYYY, YYYY.MM.DD and D. M. YYYY.
func IsDate(value any, _ ...any) (bool, error) {
	_, ok := parseDate(value)
	return ok, nil
}

// IsAfter requires a date strictly after the argument (default: now).
func IsAfter(value any, args ...any) (bool, error) {
	ref, err := dateArg("isAfter", args)
	if err != nil {
		return false, err
	}
	t, ok := parseDate(value)
	return ok && t.After(ref), nil
}

// IsBefore requires a date strictly before the argument (default: now).
func IsBefore(value any, args ...any) (bool, error) {
	ref, err := dateArg("isBefore", args)
	if err != nil {
		return false, err
	}
	t, ok := parseDate(value)
	return ok && t.Before(ref), nil
}

package rules

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uranus/pkg/cache"
)

const patternCacheSize = 256

// compiled patterns are pure functions of their source, so sharing them
// across registries does not leak state between validation calls
var patterns = cache.NewLRU[string, *regexp.Regexp](patternCacheSize)

// Matches requires the value to match a regular expression. The optional
// second argument holds flags: i (case-insensitive), m (multi-line) and
// s (dot matches newline); g is accepted and ignored.
func Matches(value any, args ...any) (bool, error) {
	re, err := patternArg("matches", args)
	if err != nil {
		return false, err
	}
	return re.MatchString(String(value)), nil
}

// NotMatches rejects values matching a regular expression.
func NotMatches(value any, args ...any) (bool, error) {
	re, err := patternArg("notMatches", args)
	if err != nil {
		return false, err
	}
	return !re.MatchString(String(value)), nil
}

func patternArg(rule string, args []any) (*regexp.Regexp, error) {
	a, ok := optArg(args, 0)
	if !ok {
		return nil, argError(rule, "pattern argument is required")
	}
	if re, ok := a.(*regexp.Regexp); ok {
		return re, nil
	}

	expr := String(a)
	if f, ok := optArg(args, 1); ok {
		flags, err := patternFlags(rule, String(f))
		if err != nil {
			return nil, err
		}
		if flags != "" {
			expr = "(?" + flags + ")" + expr
		}
	}

	re, err := patterns.GetOrLoad(expr, func() (*regexp.Regexp, error) {
		return regexp.Compile(expr)
	})
	if err != nil {
		return nil, argError(rule, "invalid pattern %q: %v", String(a), err)
	}
	return re, nil
}

func patternFlags(rule, raw string) (string, error) {
	var b strings.Builder
	for _, f := range raw {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(b.String(), f) {
				b.WriteRune(f)
			}
		case 'g':
		default:
			return "", argError(rule, "unsupported pattern flag %q", f)
		}
	}
	return b.String(), nil
}

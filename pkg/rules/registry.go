package rules

import (
	"maps"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Predicate judges one value against a rule. args holds the normalised
// declaration arguments. A non-nil error signals invalid usage, not a
// failed check.
type Predicate func(value any, args ...any) (bool, error)

// Registry maps rule names to predicates. The zero value is an empty
// registry. Registry values are never mutated after construction and are
// safe for concurrent use.
type Registry struct {
	predicates map[string]Predicate
}

// NewRegistry builds a registry from the given predicates.
// Entries with an empty name or a nil predicate are skipped.
func NewRegistry(predicates map[string]Predicate) Registry {
	m := make(map[string]Predicate, len(predicates))
	for name, p := range predicates {
		if name == "" || p == nil {
			continue
		}
		m[name] = p
	}
	return Registry{predicates: m}
}

// Default returns a registry holding every built-in predicate.
func Default() Registry {
	return NewRegistry(builtins())
}

// Merge returns a new registry containing r's predicates overlaid with ext.
// Predicates in ext replace built-ins of the same name.
func (r Registry) Merge(ext map[string]Predicate) Registry {
	m := maps.Clone(r.predicates)
	if m == nil {
		m = make(map[string]Predicate, len(ext))
	}
	for name, p := range ext {
		if name == "" || p == nil {
			continue
		}
		m[name] = p
	}
	return Registry{predicates: m}
}

// Lookup resolves a rule name.
func (r Registry) Lookup(name string) (Predicate, bool) {
	p, ok := r.predicates[name]
	return p, ok
}

// Has reports whether name is registered.
func (r Registry) Has(name string) bool {
	_, ok := r.predicates[name]
	return ok
}

// Len returns the number of registered predicates.
func (r Registry) Len() int {
	return len(r.predicates)
}

// Names returns the registered rule names in lexical order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.predicates))
}

// Suggest returns the registered name closest to name, if any is close
// enough to be a plausible typo.
func (r Registry) Suggest(name string) (string, bool) {
	if name == "" || len(r.predicates) == 0 {
		return "", false
	}

	needle := strings.ToLower(name)
	best, bestDist := "", -1
	for _, candidate := range r.Names() {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}

	// allow roughly one edit per three characters, but at least two
	limit := max(2, len(name)/3)
	if bestDist > limit {
		return "", false
	}
	return best, true
}

package uranus

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/uranus/pkg/rules"
)

// OptionalRule is resolved by the engine rather than the registry: it
// passes null values ("", nil, NaN, empty lists) and otherwise applies the
// rule named by its first argument with the remaining arguments, e.g.
//
//	Use(OptionalRule, Args("len", []int{5, 10}))
const OptionalRule = "optional"

// invoke resolves rule against the registry and calls its predicate with
// the value followed by the normalised declaration arguments.
func (e *Engine) invoke(value any, rule string, d Declaration) (bool, error) {
	if rule == OptionalRule {
		return e.invokeOptional(value, d)
	}

	predicate, ok := e.registry.Lookup(rule)
	if !ok {
		return false, e.unknownRule(rule)
	}
	return call(rule, predicate, value, d.arguments(rule))
}

func (e *Engine) invokeOptional(value any, d Declaration) (bool, error) {
	target, args, err := e.optionalTarget(d)
	if err != nil {
		return false, err
	}
	if rules.Null(value) {
		return true, nil
	}

	predicate, _ := e.registry.Lookup(target)
	return call(OptionalRule, predicate, value, args)
}

// optionalTarget splits an optional declaration into the wrapped rule and
// the arguments forwarded to it. A single list argument is spread.
func (e *Engine) optionalTarget(d Declaration) (string, []any, error) {
	args := d.arguments(OptionalRule)
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %q needs the name of the rule it wraps", ErrInvalidDeclaration, OptionalRule)
	}
	target, ok := args[0].(string)
	if !ok || target == "" {
		return "", nil, fmt.Errorf("%w: %q needs a rule name, got %v", ErrInvalidDeclaration, OptionalRule, args[0])
	}
	if !e.registry.Has(target) {
		return "", nil, e.unknownRule(target)
	}

	rest := args[1:]
	if len(rest) == 1 {
		if list, ok := asList(rest[0]); ok {
			rest = list
		}
	}
	if _, ok := shapeRules[target]; ok {
		rest = nil
	}
	return target, rest, nil
}

// call runs predicate, converting returned errors and panics to ErrPredicate.
func call(rule string, predicate rules.Predicate, value any, args []any) (valid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			valid, err = false, fmt.Errorf("%w: rule %q panicked: %v", ErrPredicate, rule, r)
		}
	}()

	valid, err = predicate(value, args...)
	if err != nil {
		return false, fmt.Errorf("%w: rule %q: %w", ErrPredicate, rule, err)
	}
	return valid, nil
}

func (e *Engine) unknownRule(rule string) error {
	if suggestion, ok := e.registry.Suggest(rule); ok {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRule, rule, suggestion)
	}
	return fmt.Errorf("%w %q", ErrUnknownRule, rule)
}

// resolve checks rule names before anything is evaluated, so configuration
// errors never depend on the data being validated.
func (e *Engine) resolve(rs Rules) error {
	if e.duplicates == DuplicateReject {
		if name, dup := rs.duplicate(); dup {
			return fmt.Errorf("%w %q", ErrDuplicateRule, name)
		}
	}
	for _, r := range rs {
		if r.Name == OptionalRule {
			if _, _, err := e.optionalTarget(r.Declaration); err != nil {
				return err
			}
			continue
		}
		if !e.registry.Has(r.Name) {
			return e.unknownRule(r.Name)
		}
	}
	return nil
}

// RuleNames lists every rule a declaration may use: the registry names
// plus OptionalRule, sorted.
func (e *Engine) RuleNames() []string {
	names := append(e.registry.Names(), OptionalRule)
	slices.Sort(names)
	return slices.Compact(names)
}

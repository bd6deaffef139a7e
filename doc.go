// Package uranus is a rule-based validation engine.
//
// Callers declare, per value, an ordered set of named rules. Each rule maps
// to a predicate in an immutable registry (see package rules). The engine
// invokes the predicates, records one Item per rule, and returns a Result
// whose validity is the AND of every item.
//
// Three forms are supported:
//
//	// single value
//	res, err := uranus.ValidateOne("foo@gmail", uranus.Rules{
//	    uranus.Enable("isEmail"),
//	    uranus.Use("minLen", uranus.Arg(3)),
//	})
//
//	// sequence of (value, rules) entries, keyed by position
//	res, err = engine.ValidateSequence(uranus.Entries{...})
//
//	// keyed: rules per field name, values taken from a source object
//	res, err = engine.ValidateFields(source, uranus.Fields{...})
//
// # Declarations
//
// A rule is declared with Flag(true), a single Arg, a list via Args, or a
// structured form with a custom failure message and optional args. The same
// forms decode from JSON and YAML, keeping key order:
//
//	{"isEmail": true, "len": [2, 10], "matches": {"msg": "bad code", "args": ["^[A-Z]+$"]}}
//
// The OptionalRule ("optional") wraps another rule: its first argument names
// the target and the rest are the target's arguments. Null values pass
// without invoking the target:
//
//	{"optional": ["isLength", 3, 5]}
//
// # Progressive mode
//
// WithProgressive(true) stops evaluating a value after its first failing
// rule. Each value is still evaluated in collection forms.
//
// # Errors
//
// Failing rules are not errors. Validation aborts, without a report, on
// configuration errors (ErrConfiguration, including ErrUnknownRule and
// ErrInvalidDeclaration), on predicate errors (ErrPredicate) and on
// unrecognised inputs (ErrInputShape). Result.Err converts failures into
// ValidationErrors for callers that prefer error values.
package uranus

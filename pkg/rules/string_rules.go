package rules

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Len checks the character count against min and an optional max.
// Registered as both "len" and "isLength".
func Len(value any, args ...any) (bool, error) {
	lo, err := requiredInt("len", args, 0)
	if err != nil {
		return false, err
	}
	hi, bounded, err := intArg("len", args, 1)
	if err != nil {
		return false, err
	}

	n := utf8.RuneCountInString(String(value))
	return n >= lo && (!bounded || n <= hi), nil
}

// MinLen requires at least n characters.
func MinLen(value any, args ...any) (bool, error) {
	lo, err := requiredInt("minLen", args, 0)
	if err != nil {
		return false, err
	}
	return utf8.RuneCountInString(String(value)) >= lo, nil
}

// MaxLen allows at most n characters.
func MaxLen(value any, args ...any) (bool, error) {
	hi, err := requiredInt("maxLen", args, 0)
	if err != nil {
		return false, err
	}
	return utf8.RuneCountInString(String(value)) <= hi, nil
}

// Contains requires the value to contain the seed argument.
func Contains(value any, args ...any) (bool, error) {
	seed, err := requiredString("contains", args, 0)
	if err != nil {
		return false, err
	}
	return strings.Contains(String(value), seed), nil
}

// NotContains rejects values containing the seed argument.
func NotContains(value any, args ...any) (bool, error) {
	seed, err := requiredString("notContains", args, 0)
	if err != nil {
		return false, err
	}
	return !strings.Contains(String(value), seed), nil
}

// Equals compares the string forms of the value and the argument.
func Equals(value any, args ...any) (bool, error) {
	if len(args) == 0 {
		return false, argError("equals", "argument 1 is required")
	}
	return String(value) == String(args[0]), nil
}

// IsIn requires the value to be one of the options. A single string
// argument is searched as a substring, a single map matches its keys and a
// list (or several arguments) matches its elements. Without options
// nothing is in the set.
func IsIn(value any, args ...any) (bool, error) {
	in, ok := membership(args)
	if !ok {
		return false, nil
	}
	return in(String(value)), nil
}

// NotIn is the negation of IsIn. Without options every value passes.
func NotIn(value any, args ...any) (bool, error) {
	in, ok := membership(args)
	if !ok {
		return true, nil
	}
	return !in(String(value)), nil
}

// IsByteLength checks the byte count against min and an optional max.
func IsByteLength(value any, args ...any) (bool, error) {
	lo, err := requiredInt("isByteLength", args, 0)
	if err != nil {
		return false, err
	}
	hi, bounded, err := intArg("isByteLength", args, 1)
	if err != nil {
		return false, err
	}

	n := len(String(value))
	return n >= lo && (!bounded || n <= hi), nil
}

// membership builds the set test IsIn and NotIn share. ok is false when
// no options were declared.
func membership(args []any) (in func(string) bool, ok bool) {
	if len(args) == 1 {
		switch opt := args[0].(type) {
		case bool:
			return nil, false
		case string:
			return func(s string) bool { return strings.Contains(opt, s) }, true
		}
		if keys, isMap := mapKeys(args[0]); isMap {
			return func(s string) bool { return slices.Contains(keys, s) }, true
		}
	}

	options := stringList(args)
	if len(options) == 0 {
		return nil, false
	}
	return func(s string) bool { return slices.Contains(options, s) }, true
}

// Package rules provides the named predicate registry consumed by the
// validation engine, together with a library of built-in predicates.
//
// A Predicate judges a single value, optionally parameterised by the
// arguments of a rule declaration. It reports false for a value that does
// not satisfy the rule and returns an error only for invalid usage, for
// example a missing or malformed argument:
//
//	isEven := func(value any, _ ...any) (bool, error) {
//	    n, err := strconv.Atoi(rules.String(value))
//	    return err == nil && n%2 == 0, nil
//	}
//
// # Registry
//
// Registry is an immutable value. Default returns the built-in predicates;
// Merge returns a new registry with additional predicates layered on top,
// so extensions are applied once at construction time and never mutate a
// shared table:
//
//	reg := rules.Default().Merge(map[string]rules.Predicate{
//	    "isEven": isEven,
//	})
//
// Lookups of unknown names can be paired with Suggest to produce
// "did you mean" hints based on edit distance.
//
// # Built-in predicates
//
// Built-ins are string-centric: values are coerced with String before the
// check (nil becomes the empty string, numbers are formatted with strconv,
// fmt.Stringer is honoured). Groups live in their own files:
//
//   - presence: notNull, isNull, notEmpty, required
//   - format: isEmail, isURL, isIP, isIPv4, isIPv6, isMAC, isNumeric,
//     isDecimal, isInt, isFloat, isHexadecimal, isHexColor, isBase64, isJSON,
//     isLowercase, isUppercase, isAscii, isCreditCard, isSlug, isPhone
//   - locale: isAlpha, isAlphanumeric, with an optional locale argument
//   - string: len, isLength, isByteLength, minLen, maxLen, contains,
//     notContains, equals, isIn, notIn
//   - pattern: matches, notMatches and their aliases is and not
//   - uuid: isUUID, isUUIDv3, isUUIDv4, isUUIDv5
//   - numeric: min, max, isDivisibleBy
//   - date: isDate, isAfter, isBefore
//
// Names lists everything registered.
//
// Null reports the values isNull accepts: nil, the empty string, NaN and
// empty lists. isNumeric accepts signed integers only; use isDecimal or
// isFloat for fractions.
//
// isIn and notIn take their options in several shapes. A list (or several
// arguments) is a membership test, a map tests its keys, and a single string
// is a substring test. Without options isIn fails and notIn passes.
//
// A bare boolean argument (what an enabled-flag declaration normalises to)
// is treated as "no argument" by every built-in with optional parameters.
//
// The "optional" rule is not a predicate. It wraps another rule and is
// handled by the engine, which skips the wrapped rule for null values.
package rules

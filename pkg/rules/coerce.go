package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// String coerces a value to the string form built-in predicates inspect.
// nil and nil pointers become the empty string.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case fmt.Stringer:
		if IsNil(v) {
			return ""
		}
		return v.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return String(rv.Elem().Interface())
	}
	return fmt.Sprint(value)
}

// IsNil reports whether value is nil or a typed nil.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Float converts numbers and numeric strings to float64.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case nil, bool:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), true
	}

	s := strings.TrimSpace(String(value))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// optArg returns the i-th argument. Bare booleans are what enabled-flag
// declarations normalise to, so they count as absent.
func optArg(args []any, i int) (any, bool) {
	if i >= len(args) || args[i] == nil {
		return nil, false
	}
	if _, flag := args[i].(bool); flag {
		return nil, false
	}
	return args[i], true
}

func intArg(rule string, args []any, i int) (int, bool, error) {
	a, ok := optArg(args, i)
	if !ok {
		return 0, false, nil
	}
	f, ok := Float(a)
	if !ok || f != math.Trunc(f) {
		return 0, true, argError(rule, "argument %d must be an integer, got %v", i+1, a)
	}
	return int(f), true, nil
}

func requiredInt(rule string, args []any, i int) (int, error) {
	n, ok, err := intArg(rule, args, i)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, argError(rule, "argument %d is required", i+1)
	}
	return n, nil
}

func requiredFloat(rule string, args []any, i int) (float64, error) {
	a, ok := optArg(args, i)
	if !ok {
		return 0, argError(rule, "argument %d is required", i+1)
	}
	f, ok := Float(a)
	if !ok {
		return 0, argError(rule, "argument %d must be a number, got %v", i+1, a)
	}
	return f, nil
}

func requiredString(rule string, args []any, i int) (string, error) {
	a, ok := optArg(args, i)
	if !ok {
		return "", argError(rule, "argument %d is required", i+1)
	}
	return String(a), nil
}

// stringList flattens the arguments into strings. A single list argument
// is expanded, so both isIn("a", "b") and isIn(["a", "b"]) work.
func stringList(args []any) []string {
	if len(args) == 1 {
		rv := reflect.ValueOf(args[0])
		if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			out := make([]string, 0, rv.Len())
			for i := range rv.Len() {
				out = append(out, String(rv.Index(i).Interface()))
			}
			return out
		}
	}

	out := make([]string, 0, len(args))
	for _, a := range args {
		if _, flag := a.(bool); flag {
			continue
		}
		out = append(out, String(a))
	}
	return out
}

// mapKeys returns the string forms of a map's keys.
func mapKeys(v any) ([]string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, String(k.Interface()))
	}
	return keys, true
}

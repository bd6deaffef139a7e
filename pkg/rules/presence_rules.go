package rules

import (
	"math"
	"reflect"
	"strings"
)

// NotNull passes for values that are present and not the empty string.
func NotNull(value any, _ ...any) (bool, error) {
	return !Null(value), nil
}

// IsNull passes for nil, the empty string, NaN and empty lists.
func IsNull(value any, _ ...any) (bool, error) {
	return Null(value), nil
}

// NotEmpty passes when the value contains something besides whitespace.
func NotEmpty(value any, _ ...any) (bool, error) {
	return strings.TrimSpace(String(value)) != "", nil
}

// Required passes for non-null values that are not blank.
func Required(value any, _ ...any) (bool, error) {
	return !Null(value) && strings.TrimSpace(String(value)) != "", nil
}

// Null reports whether value counts as absent: nil, a typed nil, "",
// NaN or an empty slice or array.
func Null(value any) bool {
	if IsNil(value) {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return rv.Len() == 0
		}
	}
	return String(value) == ""
}

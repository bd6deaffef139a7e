package rules

import "math"

// Min requires a numeric value greater than or equal to the argument.
// Non-numeric values fail the check.
func Min(value any, args ...any) (bool, error) {
	bound, err := requiredFloat("min", args, 0)
	if err != nil {
		return false, err
	}
	n, ok := Float(value)
	return ok && n >= bound, nil
}

// Max requires a numeric value less than or equal to the argument.
func Max(value any, args ...any) (bool, error) {
	bound, err := requiredFloat("max", args, 0)
	if err != nil {
		return false, err
	}
	n, ok := Float(value)
	return ok && n <= bound, nil
}

// IsDivisibleBy requires a numeric value that is a multiple of the argument.
func IsDivisibleBy(value any, args ...any) (bool, error) {
	divisor, err := requiredFloat("isDivisibleBy", args, 0)
	if err != nil {
		return false, err
	}
	if divisor == 0 {
		return false, argError("isDivisibleBy", "divisor must not be zero")
	}
	n, ok := Float(value)
	return ok && math.Mod(n, divisor) == 0, nil
}

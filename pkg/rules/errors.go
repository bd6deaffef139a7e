package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by built-in predicates when a declared
// argument is missing or has the wrong shape.
var ErrInvalidArgument = errors.New("invalid rule argument")

func argError(rule, format string, a ...any) error {
	return errors.Join(ErrInvalidArgument, fmt.Errorf("%s: "+format, append([]any{rule}, a...)...))
}

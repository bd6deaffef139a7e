package uranus

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the parent of every caller-side configuration
	// error. Validation stops and no report is produced.
	ErrConfiguration = errors.New("invalid validation configuration")

	// ErrUnknownRule is returned when a declaration names a rule that is
	// not in the engine registry.
	ErrUnknownRule = fmt.Errorf("%w: unknown rule", ErrConfiguration)

	// ErrDuplicateRule is returned under DuplicateReject when a value
	// declares the same rule twice.
	ErrDuplicateRule = fmt.Errorf("%w: duplicate rule", ErrConfiguration)

	// ErrInvalidDeclaration is returned when a rule declaration cannot be decoded.
	ErrInvalidDeclaration = fmt.Errorf("%w: invalid rule declaration", ErrConfiguration)

	// ErrPredicate wraps errors returned (or panics raised) by a rule
	// implementation. These are never turned into failing items.
	ErrPredicate = errors.New("rule predicate failed")

	// ErrInputShape is returned when a collection input is neither a
	// sequence of entries nor a keyed source with field rules.
	ErrInputShape = errors.New("unsupported validation input shape")
)

func isConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

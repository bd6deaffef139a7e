package uranus

// ValidateOne builds an engine from opts and validates a single value.
// Callers validating repeatedly should keep an Engine instead.
func ValidateOne(value any, rs Rules, opts ...Option) (*Result, error) {
	return New(opts...).ValidateOne(value, rs)
}

// ValidateSequence builds an engine from opts and validates entries.
func ValidateSequence(entries Entries, opts ...Option) (*Result, error) {
	return New(opts...).ValidateSequence(entries)
}

// ValidateFields builds an engine from opts and validates source.
func ValidateFields(source map[string]any, fields Fields, opts ...Option) (*Result, error) {
	return New(opts...).ValidateFields(source, fields)
}

// ValidateAll builds an engine from opts and validates in.
func ValidateAll(in Input, opts ...Option) (*Result, error) {
	return New(opts...).ValidateAll(in)
}

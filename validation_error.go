package uranus

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one failed rule.
// Field is empty for single-value results.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors lists failed rules in declaration order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
			continue
		}
		parts = append(parts, err.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field has at least one failure.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failure messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct failing fields in order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map groups messages by field, the shape HTTP error payloads use.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string)
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

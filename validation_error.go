package formrequest

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/formrequest/pkg/validator"
)

// ErrValidationFailed is matched by ValidationError.
var ErrValidationFailed = validator.ErrValidationFailed

// ValidationError holds the messages of every failing field.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error summarizes the first message of each field, sorted by field.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewValidationError creates an empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom groups validator failures by field.
func ValidationErrorFrom(errs validator.ValidationErrors) ValidationError {
	out := make(ValidationError, len(errs))
	for _, err := range errs {
		out.Add(err.Field, err.Message)
	}
	return out
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

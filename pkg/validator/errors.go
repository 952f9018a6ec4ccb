package validator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is matched by ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedRule is returned for rule names the engine cannot evaluate.
	ErrUnsupportedRule = errors.New("validator: unsupported rule")

	// ErrInvalidRuleParams is returned when a rule's parameters cannot be used.
	ErrInvalidRuleParams = errors.New("validator: invalid rule parameters")

	// ErrTableCheckerMissing is returned when exists or unique is used without a TableChecker.
	ErrTableCheckerMissing = errors.New("validator: table checker is not configured")

	// ErrPasswordCheckerMissing is returned when current_password is used without a PasswordChecker.
	ErrPasswordCheckerMissing = errors.New("validator: password checker is not configured")
)

// ValidationError represents a single failed rule with translation support.
type ValidationError struct {
	Field             string
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures in evaluation order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Rules returns the failed rule names of field.
func (ve ValidationErrors) Rules(field string) []string {
	var rules []string
	for _, err := range ve {
		if err.Field == field {
			rules = append(rules, err.Rule)
		}
	}
	return rules
}

// Fields returns the failing fields in first-failure order.
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

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

package values

import (
	"errors"
	"fmt"
)

// ErrRequired is matched by every RequiredError.
var ErrRequired = errors.New("values: required value is missing")

// RequiredError reports the key a required getter could not bind.
type RequiredError struct {
	Key string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("values: required value %q is missing or has the wrong type", e.Key)
}

func (e *RequiredError) Is(target error) bool {
	return target == ErrRequired
}

func required(key string) error {
	return &RequiredError{Key: key}
}

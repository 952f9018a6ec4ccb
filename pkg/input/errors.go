package input

import "errors"

// ErrEmptyKeyName is returned when an input is constructed without a key.
var ErrEmptyKeyName = errors.New("input: key name cannot be empty")

package formrequest

import "errors"

// DefaultUnauthorizedMessage is reported when no message is configured.
const DefaultUnauthorizedMessage = "This action is unauthorized."

var (
	// ErrUnauthorized is matched by AuthorizationError.
	ErrUnauthorized = errors.New("formrequest: unauthorized")
	// ErrNilRequest is returned when Handle receives a nil request.
	ErrNilRequest = errors.New("formrequest: request is nil")
)

// AuthorizationError is returned when a request's authorization check fails.
// An empty Message means the default unauthorized message applies.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return DefaultUnauthorizedMessage
	}
	return e.Message
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// HasMessage reports whether a message was resolved from the request or
// configuration.
func (e *AuthorizationError) HasMessage() bool {
	return e.Message != ""
}

// IsAuthorizationError reports whether err is an AuthorizationError.
func IsAuthorizationError(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var validationErr ValidationError
	return errors.As(err, &validationErr)
}

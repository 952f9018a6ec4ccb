package handler

import (
	"errors"
	"maps"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formrequest"
	"github.com/dmitrymomot/formrequest/pkg/binder"
)

// InvalidDataMessage is the message of validation error responses.
const InvalidDataMessage = "The given data was invalid."

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response with options. Errors are rendered as by
// JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response. The status follows the error:
// 403 for authorization failures, 422 for validation failures, 400, 413 or
// 415 for unreadable bodies, the code of an HTTPError, otherwise 500.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error, r.status = errorToDetail(e)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error) (*ErrorDetail, int) {
	var authErr *formrequest.AuthorizationError
	if errors.As(err, &authErr) {
		return &ErrorDetail{Code: "unauthorized", Message: authErr.Error()}, http.StatusForbidden
	}

	var valErr formrequest.ValidationError
	if errors.As(err, &valErr) {
		detail := &ErrorDetail{Code: "validation_error", Message: InvalidDataMessage}
		if len(valErr) > 0 {
			detail.Details = make(map[string][]string, len(valErr))
			maps.Copy(detail.Details, valErr)
		}
		return detail, http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}, http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		return &ErrorDetail{Code: "request_entity_too_large", Message: err.Error()}, http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return &ErrorDetail{Code: "bad_request", Message: err.Error()}, http.StatusBadRequest
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}, httpErr.Code
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}

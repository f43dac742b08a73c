package apierror

import (
	"errors"
)

// Kinds of request failures. Every kind is terminal for the request.
var (
	// ErrMissingField is returned when a required input is absent.
	ErrMissingField = errors.New("missing field")

	// ErrFormat is returned when an input cannot be parsed.
	ErrFormat = errors.New("invalid format")

	// ErrRange is returned when a parsed value is outside its bounds.
	ErrRange = errors.New("value out of range")

	// ErrValidation is returned when values parse but are not acceptable together,
	// e.g. an invalid station pair or an unknown train.
	ErrValidation = errors.New("validation failed")
)

// Error is a request failure carrying the user facing message and,
// when known, the name of the offending request parameter.
type Error struct {
	Kind    error
	Field   string
	UserMsg string
}

func (e *Error) Error() string {
	return e.UserMsg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func MissingField(field, msg string) error {
	return &Error{Kind: ErrMissingField, Field: field, UserMsg: msg}
}

func Format(field, msg string) error {
	return &Error{Kind: ErrFormat, Field: field, UserMsg: msg}
}

func Range(field, msg string) error {
	return &Error{Kind: ErrRange, Field: field, UserMsg: msg}
}

func Validation(field, msg string) error {
	return &Error{Kind: ErrValidation, Field: field, UserMsg: msg}
}

// WithField returns err with its field set, unless the error already names one.
// Errors that are not *Error are returned unchanged.
func WithField(err error, field string) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Field != "" {
		return err
	}

	return &Error{Kind: apiErr.Kind, Field: field, UserMsg: apiErr.UserMsg}
}

// IsRequestError reports whether err is one of the request failure kinds.
func IsRequestError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}

// KindName returns a short machine readable name for the kind of err.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrFormat):
		return "format"
	case errors.Is(err, ErrRange):
		return "range"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}

// FieldErrors converts err into the fieldErrors map used in error responses.
// Errors without a field are reported under "request".
func FieldErrors(err error) map[string][]string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return map[string][]string{"request": {err.Error()}}
	}

	field := apiErr.Field
	if field == "" {
		field = "request"
	}

	return map[string][]string{field: {apiErr.UserMsg}}
}

package core

import "errors"

var (
	// ErrMalformedData signals that a persisted value could not be decoded
	// into the expected shape. Repositories recover from it locally; it must
	// never escape to callers of the domain services.
	ErrMalformedData = errors.New("malformed persisted data")

	// ErrPermissionDenied signals a mutation attempted by an actor the
	// authorization policy rejects. State is never touched in that case.
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

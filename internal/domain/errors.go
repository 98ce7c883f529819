package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when the record exists but belongs to another user.
	ErrForbidden = errors.New("record belongs to another user")
	// ErrUnauthenticated is returned when an operation needs a logged in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials is the single failure reported for any bad login.
	ErrInvalidCredentials = errors.New("Login Unsuccessful. Please check Username Or Password")
)

// Field error messages shown next to form inputs.
const (
	MsgRequired      = "This field is required."
	MsgUsernameRange = "Field must be between 3 and 10 characters long."
	MsgPasswordMatch = "Field must be equal to password."
	MsgPasswordLong  = "Field cannot be longer than 72 characters."
	MsgUsernameTaken = "That username is taken. Please choose a different one."
)

// ValidationError collects per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// OrNil returns nil when no field failed so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// server/internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of error categories the API surfaces. Untyped errors
// from collaborators (Mongo, S3) are converted to one of these at the boundary
// where they are first observed and never passed through raw.
type Kind int

const (
	Validation Kind = iota + 1
	NotAuthenticated
	Upload
	Persistence
	Configuration
)

// Error is a tagged error carrying a user-facing message. Cause, when set,
// keeps the collaborator's original error for logs and unwrapping.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a tagged error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an untyped collaborator error. Returns nil when err is nil.
func Wrap(kind Kind, message string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: err}
}

// KindOf returns the Kind of err, or 0 if err is not a tagged error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// UserMessage returns the most specific message available for err: the
// tagged message with its cause when one exists, else a generic fallback.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// HTTPStatus maps an error to the response status for its kind.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation, Upload:
		return http.StatusBadRequest
	case NotAuthenticated:
		return http.StatusUnauthorized
	case Persistence, Configuration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindEmptySeries Kind = "empty_series"
	KindNotFound    Kind = "not_found"
	KindComputation Kind = "computation"
	KindUpstream    Kind = "upstream"
)

// Error is a tagged application error. Message is safe to show to clients
// for client-facing kinds; Err carries the internal cause and is never exposed.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind, so sentinel values below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrValidation  = &Error{Kind: KindValidation}
	ErrEmptySeries = &Error{Kind: KindEmptySeries}
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrComputation = &Error{Kind: KindComputation}
	ErrUpstream    = &Error{Kind: KindUpstream}
)

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func EmptySeries(format string, args ...interface{}) *Error {
	return &Error{Kind: KindEmptySeries, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Computation(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindComputation, Message: fmt.Sprintf(format, args...), Err: err}
}

func Upstream(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// PublicMessage returns the client-safe message of err, or fallback when err
// carries no *Error or its kind is internal. Wrapped causes are never exposed.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return fallback
	}
	switch appErr.Kind {
	case KindValidation, KindEmptySeries, KindNotFound, KindUpstream:
		return appErr.Message
	default:
		return fallback
	}
}

// StatusCode maps err to the HTTP status a client should see.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindEmptySeries, KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

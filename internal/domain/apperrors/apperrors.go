package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure into the service's error taxonomy.
// Every error that crosses a component boundary carries exactly one kind;
// the transport status is derived from it at the render boundary only.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation_failed"
	KindNotFound     Kind = "not_found"
	KindDuplicate    Kind = "duplicate_identity"
	KindInternal     Kind = "internal"
)

// Status maps an error kind to its HTTP status code
func (k Kind) Status() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application failure. Details carries supplemental
// caller-facing text (the joined validation list) or, for internal errors,
// diagnostics that must only be exposed outside production.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithDetails returns a copy of the error carrying the given details text
func (e *Error) WithDetails(details string) *Error {
	out := *e
	out.Details = details
	return &out
}

// NotFound builds the standard lookup-miss error for a resource
func NotFound(resource string) *Error {
	return New(KindNotFound, resource+" not found")
}

// Validation builds the standard rejection for invalid input, with the
// aggregated rule failures joined into details.
func Validation(details string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Details: details}
}

// Internal wraps an unexpected failure
func Internal(err error) *Error {
	return New(KindInternal, fmt.Sprintf("%v", err))
}

// From normalizes any error into a classified one. Errors that do not
// carry a kind are treated as internal faults.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

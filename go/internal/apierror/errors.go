package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies an API error so callers can branch on the failure mode
// instead of matching message text.
type Kind string

const (
	// KindNetwork means the request never completed (DNS, dial, timeout).
	KindNetwork Kind = "network"
	// KindNotFound means the server answered 404 for the requested id.
	KindNotFound Kind = "not_found"
	// KindUnauthorized means the server rejected the caller's credentials.
	KindUnauthorized Kind = "unauthorized"
	// KindValidation means the request payload was rejected as invalid.
	KindValidation Kind = "validation"
	// KindServer covers every other non-success response.
	KindServer Kind = "server"
	// KindPaymentDeclined is produced only by the checkout simulator.
	KindPaymentDeclined Kind = "payment_declined"
)

// Error carries a machine-readable kind plus the human-readable detail the
// dashboard surfaces in notifications.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.cause)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates an error of the given kind with a human-readable detail.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Newf creates an error of the given kind with a formatted detail.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind that wraps an underlying cause.
func Wrap(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, cause: cause}
}

// KindOf returns the kind of err, or KindServer when err carries no kind.
// A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServer
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

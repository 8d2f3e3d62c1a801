// Package serrors provides semantic error kinds shared by every API client and
// command. A kind tells the caller what went wrong (a timeout, a missing
// resource, rate limiting) independently of which upstream produced it.
package serrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and work with errors.Is/As through Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity was not found upstream.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the user supplied invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates a local failure unrelated to the upstream API.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the request did not complete in time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates the upstream could not be reached at all.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates the upstream answered with too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrUpstream indicates the upstream answered with an unexpected status or body.
	ErrUpstream = NewKind("UPSTREAM")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional message. errors.Is and errors.As match both
// the kind and the wrapped cause.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the first semantic kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// ForStatus maps an HTTP status code to a semantic kind. It returns nil for
// 2xx codes.
func ForStatus(code int) Kind {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return ErrTimeout
	case code == http.StatusServiceUnavailable:
		return ErrUnavailable
	case code == http.StatusBadRequest:
		return ErrBadRequest
	default:
		return ErrUpstream
	}
}

// FromTransport classifies an error returned by http.Client.Do. Deadline and
// network timeouts become ErrTimeout, everything else ErrUnavailable.
// Context cancellation is returned unchanged so callers can tell an
// interrupted run from a failing upstream.
func FromTransport(err error, msgFmt string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Wrap(ErrTimeout, err, msgFmt, args...)
	}

	return Wrap(ErrUnavailable, err, msgFmt, args...)
}

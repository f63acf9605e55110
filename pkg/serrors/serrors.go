// Package serrors defines semantic error kinds and an error type that pairs a
// kind with a message and an optional cause. A kind knows the HTTP status and
// the public message it is reported with, so transports do not keep their own
// mapping tables.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Kinds are comparable sentinels.
type Kind interface {
	error
	// Status is the HTTP status the kind is reported with.
	Status() int
	// Public is a message that is safe to return to clients.
	Public() string
	isKind()
}

type kind struct {
	code   string
	status int
	public string
}

func (k kind) Error() string  { return k.code }
func (k kind) Status() int    { return k.status }
func (k kind) Public() string { return k.public }
func (k kind) isKind()        {}

// NewKind declares a kind identified by code.
func NewKind(code string, status int, public string) Kind {
	return kind{code: code, status: status, public: public}
}

var (
	ErrBadRequest  = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	ErrNotFound    = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrConflict    = NewKind("CONFLICT", http.StatusConflict, "conflict")
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
	ErrInternal    = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	ErrTimeout     = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	// ErrDataIntegrity marks reference data that contradicts a business rule,
	// such as a promoted product missing from the catalog.
	ErrDataIntegrity = NewKind("DATA_INTEGRITY", http.StatusInternalServerError, "internal error")
)

// Error is a kinded error. errors.Is and errors.As match both its kind and
// its cause.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// With returns an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k wrapping err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...), err: err}
}

// KindOnly returns an error of kind k with neither message nor cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error renders "msg: cause", falling back to whichever part is set and then
// to the kind's code.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.err }

// KindOf returns the first kind in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// StatusOf returns the HTTP status of err's kind, or 500 when it has none.
func StatusOf(err error) int {
	if k := KindOf(err); k != nil {
		return k.Status()
	}

	return http.StatusInternalServerError
}

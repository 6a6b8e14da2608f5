// Package apperr defines the error taxonomy surfaced by action submission,
// handlers and platform adapters.
package apperr

import (
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	KindInvalidProof        Kind = "invalid_proof"
	KindInvalidRoot         Kind = "invalid_root"
	KindAlreadyExecuted     Kind = "already_executed"
	KindAlreadyInFlight     Kind = "already_in_flight"
	KindPlatformUnavailable Kind = "platform_unavailable"
	KindContentRejected     Kind = "content_rejected"
	KindRateLimited         Kind = "rate_limited"
	KindInvalidPayload      Kind = "invalid_payload"
	KindUnknownAction       Kind = "unknown_action"
	KindNotFound            Kind = "not_found"
)

// Sentinels for errors.Is checks. Any *Error with the same kind matches.
var (
	ErrInvalidProof        = &Error{Kind: KindInvalidProof}
	ErrInvalidRoot         = &Error{Kind: KindInvalidRoot}
	ErrAlreadyExecuted     = &Error{Kind: KindAlreadyExecuted}
	ErrAlreadyInFlight     = &Error{Kind: KindAlreadyInFlight}
	ErrPlatformUnavailable = &Error{Kind: KindPlatformUnavailable}
	ErrContentRejected     = &Error{Kind: KindContentRejected}
	ErrRateLimited         = &Error{Kind: KindRateLimited}
	ErrInvalidPayload      = &Error{Kind: KindInvalidPayload}
	ErrUnknownAction       = &Error{Kind: KindUnknownAction}
	ErrNotFound            = &Error{Kind: KindNotFound}
)

// Error is a classified error. RetryAfter is only meaningful for
// KindRateLimited.
type Error struct {
	Kind       Kind
	Message    string
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// RateLimited builds a rate-limit error carrying the remaining window.
func RateLimited(retryAfter time.Duration, err error) *Error {
	return &Error{Kind: KindRateLimited, RetryAfter: retryAfter, Err: err}
}

// KindOf returns the kind of the first classified error in the chain, or an
// empty kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable reports whether the dispatch queue may retry err.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindPlatformUnavailable, KindRateLimited, KindAlreadyInFlight:
		return true
	default:
		return false
	}
}

// RetryAfter returns the rate-limit window carried by err, if any.
func RetryAfter(err error) (time.Duration, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimited {
		return e.RetryAfter, true
	}
	return 0, false
}

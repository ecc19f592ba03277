package apperr

import (
	"fmt"
	"time"
)

// Kind classifies an operation failure so the delivery layer can map it to a
// transport status without string matching.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation_error"
)

// ConflictDetail describes one overlapping reservation blocking a requested
// date range. Source is "internal" for our own bookings or the external
// platform name (e.g. "Booking.com") for synced reservations.
type ConflictDetail struct {
	Source   string    `json:"source"`
	Ref      string    `json:"ref,omitempty"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Error is the structured error returned by every core operation.
type Error struct {
	Kind      Kind
	Message   string
	Conflicts []ConflictDetail
	Err       error
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

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string, conflicts []ConflictDetail) *Error {
	return &Error{Kind: KindConflict, Message: message, Conflicts: conflicts}
}

// AsError returns the *Error inside err, or nil if err is not one.
func AsError(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	e := AsError(err)
	return e != nil && e.Kind == kind
}

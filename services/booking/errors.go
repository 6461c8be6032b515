package booking

import (
	"errors"
	"fmt"

	"fundihub/models"
)

// Machine-readable rejection codes surfaced to callers. The HTTP layer maps
// these to status codes; the core never swallows them.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeWorkerUnavailable = "WORKER_UNAVAILABLE"
	CodeSlotNotOffered    = "SLOT_NOT_OFFERED"
	CodeSlotTaken         = "SLOT_TAKEN"
	CodeIllegalTransition = "ILLEGAL_TRANSITION"
	CodeBookingNotReady   = "BOOKING_NOT_READY"
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
)

// Error is a typed rejection with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func validationError(msg string) *Error {
	return newError(CodeValidation, msg)
}

func notFoundError(what, id string) *Error {
	return newError(CodeNotFound, fmt.Sprintf("%s %s not found", what, id))
}

// illegalTransition carries both the current and the requested status for
// diagnostics: hitting this means a client or business-logic bug, never a
// race to retry.
func illegalTransition(from, to models.BookingStatus) *Error {
	return newError(CodeIllegalTransition,
		fmt.Sprintf("cannot transition booking from %s to %s", from, to))
}

// AsError unwraps a typed booking error if err carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. The HTTP layer maps these onto status
// codes; the messages are user-facing.
const (
	CodeInvalidReference    = "invalid_reference"
	CodeOutsideAvailability = "outside_availability"
	CodeSlotConflict        = "slot_conflict"
	CodeInvalidStatus       = "invalid_status"
	CodeGatewayUnavailable  = "gateway_unavailable"
)

// Error is a coded booking failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidReference(msg string) error {
	return &Error{Code: CodeInvalidReference, Message: msg}
}

func NewOutsideAvailability(msg string) error {
	return &Error{Code: CodeOutsideAvailability, Message: msg}
}

func NewSlotConflict(msg string) error {
	return &Error{Code: CodeSlotConflict, Message: msg}
}

func NewInvalidStatus(msg string) error {
	return &Error{Code: CodeInvalidStatus, Message: msg}
}

func NewGatewayUnavailable(msg string) error {
	return &Error{Code: CodeGatewayUnavailable, Message: msg}
}

// CodeOf extracts the booking error code, or "" for uncoded errors.
func CodeOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

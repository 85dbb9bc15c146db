package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the request/assignment engine. Handlers translate these
// into HTTP statuses; repositories and services wrap them with context via
// fmt.Errorf("...: %w", Err...).
var (
	ErrNotFound               = errors.New("resource not found")
	ErrBadRequest             = errors.New("bad request")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrConcurrentModification = errors.New("inventory item no longer available")
	ErrAlreadyReturned        = errors.New("assigned asset already returned")
	ErrDamageReasonRequired   = errors.New("damage reason is required")
)

type UniqueViolationError struct {
	message string
	code    string // PostgreSQL error code ("23505")
}

type ForeignKeyViolationError struct {
	message string
	code    string // PostgreSQL error code ("23503")
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

func WrapDBError(message, code string) error {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: "Value is still referenced by other resources " + message,
			code:    code,
		}
	default:
		return fmt.Errorf("uncategorized database error with code %s: %s", code, message)
	}
}

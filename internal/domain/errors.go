package domain

import (
	"errors"
	"fmt"
)

// Application error codes
const (
	EINVALID       = "invalid"               // Invalid input or environment value
	EINVALIDCONFIG = "invalid_configuration" // Paginator configured with unusable values
	EINTERNAL      = "internal"              // Not an application error
)

// Error represents an application error with structured information.
type Error struct {
	Code    string // Machine-readable error code
	Op      string // Operation that failed (e.g., "Paginator.Paginate")
	Message string // Human-readable message
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Errorf creates a new Error with the given code, operation, and formatted message.
func Errorf(code, op, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the root error, or EINTERNAL if none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error, without the
// operation prefix. Errors outside this package are returned as-is.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorOp returns the operation of the root error, if any.
func ErrorOp(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Invalid creates a validation error.
func Invalid(op, message string) *Error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: message,
	}
}

// InvalidConfiguration creates an error for settings that make a computation impossible,
// such as a non-positive page size.
func InvalidConfiguration(op, format string, args ...interface{}) *Error {
	return Errorf(EINVALIDCONFIG, op, format, args...)
}

// IsInvalidConfiguration reports whether err carries the EINVALIDCONFIG code.
func IsInvalidConfiguration(err error) bool {
	return ErrorCode(err) == EINVALIDCONFIG
}

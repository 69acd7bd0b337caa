// Package errors provides the typed errors returned by the money
// operations, along with the standard library helpers.
//
// An *Error is declared once per failure as a package level sentinel
// and wrapped with the context of each occurrence:
//
//	return ErrNegativeCount.Wrapf("%d", count)
//
// Callers match the sentinel with Is, or a whole family of errors
// with IsErrorType and IsErrorCode.
package errors

import (
	"errors"
	"fmt"
)

// promote standard library errors package functions.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

type (
	// ErrorType is the category of an error.
	ErrorType string
	// ErrorCode identifies an error within the package declaring it.
	ErrorCode int
)

// ErrorTypeInvalid marks a caller error, an argument
// that breaks the preconditions of an operation.
// Money operations have no other failure.
const ErrorTypeInvalid ErrorType = "invalid"

// Error is a sentinel failure of a money operation.
type Error struct {
	Type    ErrorType
	Code    ErrorCode
	Details string
}

// New returns a sentinel *Error.
func New(typ ErrorType, code ErrorCode, details string) *Error {
	return &Error{
		Type:    typ,
		Code:    code,
		Details: details,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("type: %s, code: %d, details: %s", e.Type, e.Code, e.Details)
}

// Is reports whether target has the same type and code as e,
// so a sentinel matches its copies regardless of their details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Type == t.Type && e.Code == t.Code
}

// Wrapf returns e annotated with the formatted context,
// eg. "<e>: 1.00 from 0.50". The result unwraps to e.
func (e *Error) Wrapf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{e}, args...)...)
}

// IsErrorType checks if the error is of the given type.
func IsErrorType(err error, typ ErrorType) bool {
	e, ok := as(err)

	return ok && e.Type == typ
}

// IsErrorCode checks if the error is of the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := as(err)

	return ok && e.Code == code
}

func as(err error) (*Error, bool) {
	var e *Error

	return e, errors.As(err, &e)
}

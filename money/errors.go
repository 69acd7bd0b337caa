package money

import (
	"github.com/progressoft/go-denominations/errors"
)

// Codes of the errors returned by Money operations.
const (
	CodeNegativeCount errors.ErrorCode = iota + 1
	CodeInsufficientAmount
	CodeInexactChange
	CodeOutOfRange
)

var (
	// ErrNegativeCount is returned when Times is given a negative count.
	ErrNegativeCount = errors.New(
		errors.ErrorTypeInvalid,
		CodeNegativeCount,
		"count cannot be negative",
	)

	// ErrInsufficientAmount is returned when Minus is asked to subtract
	// more than the total amount available.
	ErrInsufficientAmount = errors.New(
		errors.ErrorTypeInvalid,
		CodeInsufficientAmount,
		"cannot subtract more than available",
	)

	// ErrInexactChange is returned when the available denominations
	// cannot exactly cover the amount to subtract.
	ErrInexactChange = errors.New(
		errors.ErrorTypeInvalid,
		CodeInexactChange,
		"insufficient denominations to make exact change",
	)

	// ErrOutOfRange is raised when a value exceeds what the
	// representation in fils can hold.
	ErrOutOfRange = errors.New(
		errors.ErrorTypeInvalid,
		CodeOutOfRange,
		"amount out of range",
	)
)

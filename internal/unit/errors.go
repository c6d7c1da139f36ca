package unit

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes unit errors.
type ErrorCode string

const (
	// ErrCodeOverflow indicates an exponent left the int8 range.
	ErrCodeOverflow ErrorCode = "OVERFLOW"

	// ErrCodeUnknownSymbol indicates a symbol or name that matches no unit.
	ErrCodeUnknownSymbol ErrorCode = "UNKNOWN_SYMBOL"
)

// Error is returned by the checked arithmetic and by FromExponents.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Symbol is the axis or named unit involved, when known.
	Symbol string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s (symbol=%s)", e.Code, e.Message, e.Symbol)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewOverflowError reports that op produced exponent n on symbol.
func NewOverflowError(op, symbol string, n int) *Error {
	return &Error{
		Code:    ErrCodeOverflow,
		Message: fmt.Sprintf("%s produced exponent %d outside [-128, 127]", op, n),
		Symbol:  symbol,
	}
}

// NewUnknownSymbolError reports a symbol that Lookup could not resolve.
func NewUnknownSymbolError(symbol string) *Error {
	return &Error{
		Code:    ErrCodeUnknownSymbol,
		Message: "no unit with this symbol or name",
		Symbol:  symbol,
	}
}

// IsOverflow returns true if err is or wraps an OVERFLOW error.
func IsOverflow(err error) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeOverflow
	}
	return false
}

// IsUnknownSymbol returns true if err is or wraps an UNKNOWN_SYMBOL error.
func IsUnknownSymbol(err error) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeUnknownSymbol
	}
	return false
}

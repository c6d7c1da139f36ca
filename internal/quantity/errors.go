package quantity

import (
	"errors"
	"fmt"

	"github.com/roach88/siunit/internal/unit"
)

// ErrDimensionMismatch is matched by every MismatchError via errors.Is.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// MismatchError is returned by Add and Sub when the operands have
// different dimensions. Both sides are kept in composite form so callers
// can render or flatten them.
type MismatchError struct {
	// Op is "add" or "sub".
	Op string

	// Lhs is the dimension of the receiver.
	Lhs unit.Composite

	// Rhs is the dimension of the argument.
	Rhs unit.Composite
}

func newMismatch[D Dimension[D]](op string, lhs, rhs D) *MismatchError {
	return &MismatchError{Op: op, Lhs: lhs.ToDerived(), Rhs: rhs.ToDerived()}
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s and %s", ErrDimensionMismatch, e.Op, e.Lhs, e.Rhs)
}

// Is makes errors.Is(err, ErrDimensionMismatch) succeed.
func (e *MismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// IsMismatch returns true if err is or wraps a MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

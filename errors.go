package anynum

import (
	"errors"
	"fmt"

	"go.dw1.io/anynum/internal/cast"
	"go.dw1.io/safemath"
)

// ErrKindMismatch indicates that an operation requiring operands of the same
// kind received operands of different kinds.
//
// It is wrapped by [KindMismatchError].
var ErrKindMismatch = errors.New("kind mismatch")

// ErrUnsupported indicates that a value is not one of the twelve native
// representations.
var ErrUnsupported = cast.ErrUnsupported

// ErrInexact indicates that a float value is not finite or has a fractional
// part, so it cannot be converted to an integer kind.
var ErrInexact = cast.ErrInexact

// ErrTruncation is [safemath.ErrTruncation]. Conversions wrap it when a value
// is out of the target kind's range.
var ErrTruncation = safemath.ErrTruncation

// ErrInvalidKind indicates that a Kind outside the declared set was passed to
// a conversion.
var ErrInvalidKind = errors.New("invalid kind")

// KindMismatchError reports an operation attempted on numbers of different
// kinds. No promotion between kinds is ever attempted.
type KindMismatchError struct {
	Op    Op
	Left  Kind
	Right Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot %s %s and %s: %v", e.Op, e.Left, e.Right, ErrKindMismatch)
}

// Unwrap returns [ErrKindMismatch].
func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}

package anynum

import (
	"fmt"

	"go.dw1.io/anynum/internal/cast"
)

// Native is the set of the twelve native numeric representations. The 128-bit
// kinds are [num.I128] and [num.U128].
type Native = cast.Native

// Scalar holds a single native value of type T. Its kind is fixed by T, see
// [KindOf].
//
// Scalar only combines with a Scalar of the same T; mixing kinds is done
// through [Number].
type Scalar[T Native] struct {
	v T
}

// NewScalar wraps v.
func NewScalar[T Native](v T) Scalar[T] {
	return Scalar[T]{v: v}
}

// Value returns the wrapped value.
func (s Scalar[T]) Value() T { return s.v }

// Set replaces the wrapped value.
func (s *Scalar[T]) Set(v T) { s.v = v }

// Ptr returns a pointer to the wrapped value for in-place native operations.
func (s *Scalar[T]) Ptr() *T { return &s.v }

// Kind returns the kind tag of T.
func (s Scalar[T]) Kind() Kind { return KindOf[T]() }

// Number returns s as a [Number].
func (s Scalar[T]) Number() Number { return Number{v: s} }

// String renders the value exactly as fmt.Sprint(s.Value()) does.
func (s Scalar[T]) String() string { return fmt.Sprint(s.v) }

// Format implements [fmt.Formatter] by handing the verb and flags to the
// wrapped value.
func (s Scalar[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.v)
}

// Add returns s + o.
func (s Scalar[T]) Add(o Scalar[T]) Scalar[T] { return s.arith(OpAdd, o) }

// Sub returns s - o.
func (s Scalar[T]) Sub(o Scalar[T]) Scalar[T] { return s.arith(OpSub, o) }

// Mul returns s * o.
func (s Scalar[T]) Mul(o Scalar[T]) Scalar[T] { return s.arith(OpMul, o) }

// Div returns s / o. Integer division by zero panics.
func (s Scalar[T]) Div(o Scalar[T]) Scalar[T] { return s.arith(OpDiv, o) }

// Equal reports whether s and o hold natively equal values.
func (s Scalar[T]) Equal(o Scalar[T]) bool { return s.v == o.v }

// Compare returns -1, 0 or +1 depending on whether s is less than, equal to
// or greater than o. A NaN is less than any other float and equal to NaN.
func (s Scalar[T]) Compare(o Scalar[T]) int {
	return tableFor[T]().compare(s.v, o.v)
}

func (s Scalar[T]) arith(op Op, o Scalar[T]) Scalar[T] {
	return Scalar[T]{v: tableFor[T]().arith[op](s.v, o.v)}
}

// variant is the closed set of cases a Number can hold. Only the Scalar
// instantiations implement it.
type variant interface {
	Kind() Kind
	String() string
	Format(f fmt.State, verb rune)

	value() any
	arithVariant(op Op, o variant) variant
	equalVariant(o variant) bool
	compareVariant(o variant) int
}

func (s Scalar[T]) value() any { return s.v }

// arithVariant and compareVariant expect o to share s's kind.
func (s Scalar[T]) arithVariant(op Op, o variant) variant {
	return s.arith(op, o.(Scalar[T]))
}

func (s Scalar[T]) equalVariant(o variant) bool {
	t, ok := o.(Scalar[T])
	return ok && s.Equal(t)
}

func (s Scalar[T]) compareVariant(o variant) int {
	return s.Compare(o.(Scalar[T]))
}

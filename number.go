package anynum

import (
	"fmt"

	"github.com/shabbyrobe/go-num"
)

// Number holds exactly one numeric value of one of the twelve kinds.
//
// The zero Number is int8 zero. Numbers are values: copies are independent
// and safe to share between goroutines.
type Number struct {
	v variant
}

// From returns a Number holding v. Its kind follows from the static type of
// v.
func From[T Native](v T) Number {
	return Number{v: Scalar[T]{v: v}}
}

// I8 returns an int8 Number.
func I8(v int8) Number { return From(v) }

// I16 returns an int16 Number.
func I16(v int16) Number { return From(v) }

// I32 returns an int32 Number.
func I32(v int32) Number { return From(v) }

// I64 returns an int64 Number.
func I64(v int64) Number { return From(v) }

// I128 returns an int128 Number.
func I128(v num.I128) Number { return From(v) }

// U8 returns a uint8 Number.
func U8(v uint8) Number { return From(v) }

// U16 returns a uint16 Number.
func U16(v uint16) Number { return From(v) }

// U32 returns a uint32 Number.
func U32(v uint32) Number { return From(v) }

// U64 returns a uint64 Number.
func U64(v uint64) Number { return From(v) }

// U128 returns a uint128 Number.
func U128(v num.U128) Number { return From(v) }

// F32 returns a float32 Number.
func F32(v float32) Number { return From(v) }

// F64 returns a float64 Number.
func F64(v float64) Number { return From(v) }

// Of returns a Number holding v, which must be a native value, a [Scalar] or
// a Number. Other types, including int, uint and strings, are rejected with
// [ErrUnsupported].
func Of(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case variant:
		return Of(x.value())
	case int8:
		return From(x), nil
	case int16:
		return From(x), nil
	case int32:
		return From(x), nil
	case int64:
		return From(x), nil
	case num.I128:
		return From(x), nil
	case uint8:
		return From(x), nil
	case uint16:
		return From(x), nil
	case uint32:
		return From(x), nil
	case uint64:
		return From(x), nil
	case num.U128:
		return From(x), nil
	case float32:
		return From(x), nil
	case float64:
		return From(x), nil
	default:
		return Number{}, fmt.Errorf("cannot make a number from %T: %w", v, ErrUnsupported)
	}
}

// Must returns n, or panics if err is non-nil. It is intended for chaining
// operations whose kinds are known to match.
//
//	sum := anynum.Must(a.Add(b))
func Must(n Number, err error) Number {
	if err != nil {
		panic(err)
	}

	return n
}

// As returns the native value of n if n holds a T.
func As[T Native](n Number) (T, bool) {
	s, ok := n.scalar().(Scalar[T])
	return s.v, ok
}

func (n Number) scalar() variant {
	if n.v == nil {
		return Scalar[int8]{}
	}

	return n.v
}

// Kind returns the kind of the value held by n.
func (n Number) Kind() Kind { return n.scalar().Kind() }

// Value returns the native value held by n.
func (n Number) Value() any { return n.scalar().value() }

// String renders n exactly as fmt.Sprint would render its native value.
func (n Number) String() string { return n.scalar().String() }

// Format implements [fmt.Formatter] by handing the verb and flags to the
// native value, so "%08.3f" or "%x" behave as they do on that value.
func (n Number) Format(f fmt.State, verb rune) { n.scalar().Format(f, verb) }

// Equal reports whether n and m hold the same kind and natively equal
// values. Numbers of different kinds are never equal, whatever their value.
func (n Number) Equal(m Number) bool {
	return n.scalar().equalVariant(m.scalar())
}

// Compare orders n and m as [Scalar.Compare] does. It fails with a
// [*KindMismatchError] if the kinds differ.
func (n Number) Compare(m Number) (int, error) {
	a, b := n.scalar(), m.scalar()
	if a.Kind() != b.Kind() {
		return 0, &KindMismatchError{Op: OpCompare, Left: a.Kind(), Right: b.Kind()}
	}

	return a.compareVariant(b), nil
}

// Add returns n + m. It fails with a [*KindMismatchError] if the kinds
// differ.
func (n Number) Add(m Number) (Number, error) { return n.arith(OpAdd, m) }

// Sub returns n - m. It fails with a [*KindMismatchError] if the kinds
// differ.
func (n Number) Sub(m Number) (Number, error) { return n.arith(OpSub, m) }

// Mul returns n * m. It fails with a [*KindMismatchError] if the kinds
// differ.
func (n Number) Mul(m Number) (Number, error) { return n.arith(OpMul, m) }

// Div returns n / m. It fails with a [*KindMismatchError] if the kinds
// differ. Division by zero behaves as the native operator does: integer
// kinds panic, float kinds yield an infinity or NaN.
func (n Number) Div(m Number) (Number, error) { return n.arith(OpDiv, m) }

func (n Number) arith(op Op, m Number) (Number, error) {
	a, b := n.scalar(), m.scalar()
	if a.Kind() != b.Kind() {
		return Number{}, &KindMismatchError{Op: op, Left: a.Kind(), Right: b.Kind()}
	}

	return Number{v: a.arithVariant(op, b)}, nil
}

package anynum

import (
	"fmt"

	"github.com/shabbyrobe/go-num"

	"go.dw1.io/anynum/internal/cast"
)

var converters = [...]func(Number) (Number, error){
	Int8:    convert[int8],
	Int16:   convert[int16],
	Int32:   convert[int32],
	Int64:   convert[int64],
	Int128:  convert[num.I128],
	Uint8:   convert[uint8],
	Uint16:  convert[uint16],
	Uint32:  convert[uint32],
	Uint64:  convert[uint64],
	Uint128: convert[num.U128],
	Float32: convert[float32],
	Float64: convert[float64],
}

// Convert returns n re-expressed as kind k.
//
// Integer targets accept only values they can hold exactly: out of range
// values fail with [ErrTruncation], floats that are fractional or
// not finite fail with [ErrInexact]. Float targets accept any value within
// their range, rounding to the nearest representable float.
func (n Number) Convert(k Kind) (Number, error) {
	if !k.Valid() {
		return Number{}, fmt.Errorf("cannot convert %s to %s: %w", n.Kind(), k, ErrInvalidKind)
	}

	if k == n.Kind() {
		return n, nil
	}

	return converters[k](n)
}

// To returns the value of n as a T, converting as [Number.Convert] does.
func To[T Native](n Number) (T, error) {
	if v, ok := As[T](n); ok {
		return v, nil
	}

	v, err := cast.To[T](n.Value())
	if err != nil {
		return v, fmt.Errorf("cannot convert %s to %s: %w", n.Kind(), KindOf[T](), err)
	}

	return v, nil
}

func convert[T Native](n Number) (Number, error) {
	v, err := To[T](n)
	if err != nil {
		return Number{}, err
	}

	return From(v), nil
}

package cast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shabbyrobe/go-num"
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// To converts v to type T.
func To[T Native](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int8:
		return toInt[T, int8](v)
	case int16:
		return toInt[T, int16](v)
	case int32:
		return toInt[T, int32](v)
	case int64:
		return toInt[T, int64](v)
	case uint8:
		return toInt[T, uint8](v)
	case uint16:
		return toInt[T, uint16](v)
	case uint32:
		return toInt[T, uint32](v)
	case uint64:
		return toInt[T, uint64](v)
	case num.I128, num.U128:
		return toWide[T](v)
	case float32:
		return toFloat[T, float32](v)
	case float64:
		return toFloat[T, float64](v)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T: %w", zero, v, ErrUnsupported)
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Native](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// toInt converts to the fixed-width integer type I using safemath to avoid
// overflow/underflow and then re-types the result as T (which is the caller's
// type parameter). Inputs that are not Go integers take a detour through
// big.Int so 128-bit and float values get the same range checks.
func toInt[T any, I Fixed](v any) (T, error) {
	var zero T

	if isIntVal(v) {
		converted, err := safemath.ConvertAny[I](v)
		if err != nil {
			return zero, err
		}

		return any(converted).(T), nil
	}

	b, err := toBig[I](v)
	if err != nil {
		return zero, err
	}

	var converted I
	switch {
	case b.IsInt64():
		converted, err = safemath.ConvertAny[I](b.Int64())
	case b.IsUint64():
		converted, err = safemath.ConvertAny[I](b.Uint64())
	default:
		err = truncation[I](b)
	}
	if err != nil {
		return zero, err
	}

	return any(converted).(T), nil
}

// toWide converts to one of the 128-bit integer types.
func toWide[T any](v any) (T, error) {
	var zero T

	b, err := toBig[T](v)
	if err != nil {
		return zero, err
	}

	var (
		converted any
		accurate  bool
	)
	switch any(zero).(type) {
	case num.I128:
		converted, accurate = num.I128FromBigInt(b)
	case num.U128:
		converted, accurate = num.U128FromBigInt(b)
	}
	if !accurate {
		return zero, truncation[T](b)
	}

	return converted.(T), nil
}

// toFloat converts to the float type F using spf13/cast. Narrowing to float32
// is rejected when the value is finite but beyond float32's range; rounding
// within range is accepted.
func toFloat[T any, F Float](v any) (T, error) {
	var zero T

	var f float64
	switch src := v.(type) {
	case num.I128:
		f = src.AsFloat64()
	case num.U128:
		f = src.AsFloat64()
	default:
		if !isNumVal(v) {
			return zero, fmt.Errorf("unsupported conversion to %T from %T: %w", zero, v, ErrUnsupported)
		}

		var err error
		if f, err = cast.ToE[float64](v); err != nil {
			return zero, err
		}
	}

	if _, narrow := any(*new(F)).(float32); narrow && !fitsFloat32(f) {
		return zero, fmt.Errorf("%w: %g overflows float32", safemath.ErrTruncation, f)
	}

	converted, err := cast.ToE[F](f)
	if err != nil {
		return zero, err
	}

	return any(converted).(T), nil
}

// toBig widens any numeric input to a big.Int. Float inputs must be finite
// and integral. The type parameter only names the target in error messages.
func toBig[D any](v any) (*big.Int, error) {
	switch src := v.(type) {
	case int:
		return big.NewInt(int64(src)), nil
	case int8:
		return big.NewInt(int64(src)), nil
	case int16:
		return big.NewInt(int64(src)), nil
	case int32:
		return big.NewInt(int64(src)), nil
	case int64:
		return big.NewInt(src), nil
	case uint:
		return new(big.Int).SetUint64(uint64(src)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(src)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(src)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(src)), nil
	case uint64:
		return new(big.Int).SetUint64(src), nil
	case uintptr:
		return new(big.Int).SetUint64(uint64(src)), nil
	case num.I128:
		return src.AsBigInt(), nil
	case num.U128:
		return src.AsBigInt(), nil
	case float32:
		return floatToBig[D](float64(src))
	case float64:
		return floatToBig[D](src)
	default:
		return nil, fmt.Errorf("unsupported conversion to %T from %T: %w", *new(D), v, ErrUnsupported)
	}
}

func floatToBig[D any](f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %g to %T", ErrInexact, f, *new(D))
	}

	b, _ := new(big.Float).SetFloat64(f).Int(nil)

	return b, nil
}

func truncation[D any](b *big.Int) error {
	return fmt.Errorf("%w: %s does not fit in %T", safemath.ErrTruncation, b, *new(D))
}

func fitsFloat32(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) <= math.MaxFloat32
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

// isNumVal reports whether v's dynamic type is a Go integer or float, the
// inputs handed to spf13/cast. Strings and bools never reach it.
func isNumVal(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return isIntVal(v)
	}
}

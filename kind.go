package anynum

import (
	"strconv"

	"github.com/shabbyrobe/go-num"
)

// Kind identifies one of the twelve numeric representations a [Number] can
// hold. The set is closed.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	Float32
	Float64
)

var kindNames = [...]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int128:  "int128",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint128: "uint128",
	Float32: "float32",
	Float64: "float64",
}

var kindBits = [...]int{
	Int8:    8,
	Int16:   16,
	Int32:   32,
	Int64:   64,
	Int128:  128,
	Uint8:   8,
	Uint16:  16,
	Uint32:  32,
	Uint64:  64,
	Uint128: 128,
	Float32: 32,
	Float64: 64,
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, Kind(k))
	}

	return kinds
}

// KindOf returns the Kind tagging the native representation T.
func KindOf[T Native]() Kind {
	switch any(*new(T)).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case num.I128:
		return Int128
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case num.U128:
		return Uint128
	case float32:
		return Float32
	default:
		return Float64
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// String returns the Go spelling of the representation, e.g. "uint32".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Bits returns the width of the representation in bits, or 0 for an invalid
// Kind.
func (k Kind) Bits() int {
	if !k.Valid() {
		return 0
	}

	return kindBits[k]
}

// Integer reports whether k is a signed or unsigned integer kind.
func (k Kind) Integer() bool {
	return k <= Uint128
}

// Float reports whether k is a floating-point kind.
func (k Kind) Float() bool {
	return k == Float32 || k == Float64
}

// Signed reports whether k can represent negative values.
func (k Kind) Signed() bool {
	return k <= Int128 || k.Float()
}

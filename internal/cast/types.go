package cast

import (
	"github.com/shabbyrobe/go-num"
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Fixed is the set of fixed-width integer types that are both [Basic] and
// [Integer], i.e. those routed through safemath.
type Fixed interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Float is the set of float types handled by spf13/cast.
type Float interface {
	float32 | float64
}

// Wide is the set of 128-bit integer types.
type Wide interface {
	num.I128 | num.U128
}

// Native is the set of numeric representations To can produce.
type Native interface {
	Fixed | Wide | Float
}

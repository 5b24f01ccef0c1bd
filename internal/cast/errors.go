package cast

import "errors"

// ErrUnsupported indicates that the input is not one of the supported numeric
// representations.
var ErrUnsupported = errors.New("unsupported numeric type")

// ErrInexact indicates that a float input is not finite or carries a
// fractional part, so it has no exact integer counterpart.
var ErrInexact = errors.New("inexact float to integer conversion")

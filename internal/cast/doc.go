// Package cast converts between the native numeric representations used by
// anynum.
//
// It uses [safemath] for fixed-width integer conversions so overflows,
// underflows and silent truncation surface as errors, [cast] for conversions
// into float types, and [num] for the 128-bit integer types.
//
// Unlike [cast], only numeric inputs are accepted. Strings, bools and
// everything else are rejected with [ErrUnsupported].
package cast

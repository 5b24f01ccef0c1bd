// Package anynum provides a single value type, [Number], that holds one of
// twelve native numeric representations and computes with that
// representation's own operators.
//
// The supported kinds are the signed and unsigned integers of 8, 16, 32, 64
// and 128 bits and the 32 and 64-bit floats. The 128-bit integers are
// [num.I128] and [num.U128]; they wrap on overflow like the narrower integers.
//
// A [Number] never changes kind implicitly. Arithmetic and ordering between
// two different kinds fail with [ErrKindMismatch], and equality between them
// is false. Use [Number.Convert] to change kind explicitly.
//
// Example:
//
//	a := anynum.U32(5)
//	b := anynum.From(uint32(7))
//	sum, err := a.Add(b)
//	if err != nil {
//		// kinds differ
//	}
//	fmt.Println(sum) // 12
//
//	_, err = a.Add(anynum.I32(5))
//	errors.Is(err, anynum.ErrKindMismatch) // true
//
// Overflow and division by zero are not checked: each kind behaves as its
// native operators do.
package anynum

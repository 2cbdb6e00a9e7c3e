// Package word provides Word, an immutable fixed-width two's-complement
// value — the operand type shared by every comparator in bitcmp.
//
// What
//
//   - A Word pairs a declared bit width (1..64) with a raw bit pattern.
//   - The pattern is interpreted as two's-complement: the most-significant
//     bit carries negative weight, so a width-16 Word spans −32768..32767.
//   - Words are values: construct once, pass by value, never mutate.
//
// Why
//
//   - Comparison primitives in comparator and maxsel require both operands
//     to share one width; encoding the width into the operand type lets
//     that invariant be checked before any bit is examined.
//   - Construction validates eagerly: a value that does not fit the
//     declared width is rejected, never truncated or sign-extended.
//
// Usage
//
//	a, err := word.FromInt64(16, -32768)
//	if err != nil {
//	    // ErrWidthOutOfRange or ErrValueOutOfRange
//	}
//	_ = a.Sign()  // true: the sign bit is set
//	_ = a.Int64() // -32768
//
// Errors
//
//   - ErrWidthOutOfRange — width outside 1..64.
//   - ErrValueOutOfRange — value not representable in the declared width.
//   - ErrBitIndex        — Bit called with an index outside 0..Width()-1.
package word

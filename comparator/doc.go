// Package comparator provides width-parameterized signed-integer ordering
// over fixed-width two's-complement operands (word.Word): strict less-than,
// strict greater-than, and equality.
//
// What
//
//   - A Comparator is an immutable configuration (width + implementation
//     variant) built once by New and safe for concurrent use.
//   - Less, Greater, and Equal are pure functions of the two operands:
//     no internal state survives between calls.
//   - Two interchangeable implementation variants are provided:
//   - RippleChain  — a structural chain of 1-bit subtractor cells,
//     folded least-significant bit first, threading a borrow/equality
//     state between adjacent positions.
//   - WordSubtract — a behavioral word-level subtraction testing the
//     borrow-out and zero status of the difference.
//     Both variants produce identical results for every operand pair and
//     width; the choice affects internal structure only.
//
// Algorithm Outline (RippleChain)
//
//  1. Start from the chain identity state: no borrow, provisionally equal.
//  2. For each bit position i = 0..width-1 (LSB first), evaluate the
//     1-bit subtractor cell for a[i] - b[i] with the incoming state:
//     borrow' = (!a && b) || ((!a || b) && borrow)
//     equal'  = equal && (a == b)
//  3. The final borrow decides unsigned order; the final equal flag
//     recovers the degenerate A == B case.
//  4. Two's-complement correction: when the operands' sign bits differ,
//     the unsigned borrow is meaningless — the operand with its sign
//     bit set is the smaller, regardless of magnitude bits. When the
//     signs agree, the borrow decides order directly.
//
// Greater is defined as Less with the operands swapped; the identity
// Greater(a, b) == Less(b, a) holds for every input.
//
// Complexity
//
//   - Time:   O(width) per call (RippleChain), O(1) (WordSubtract)
//   - Memory: O(1) — no allocation on the comparison path
//
// Usage
//
//	c, err := comparator.New(16, comparator.WithVariant(comparator.WordSubtract))
//	if err != nil {
//	    // ErrBadWidth or ErrUnknownVariant
//	}
//	lt, err := c.Less(a, b) // ErrWidthMismatch if a or b is not 16 bits wide
//
// Options
//
//   - DefaultOptions(): RippleChain variant, no stage hook.
//   - WithVariant(v):   select the implementation variant.
//   - WithOnStage(fn):  observe each ripple stage (position, outgoing
//     borrow and equality); fires only for RippleChain, which is the
//     only variant with per-bit stages.
//
// Errors
//
//   - ErrBadWidth        — width outside 1..word.MaxWidth at construction.
//   - ErrUnknownVariant  — variant outside the closed set at construction.
//   - ErrWidthMismatch   — an operand's width differs from the comparator's.
package comparator

// Package maxsel selects the maximum or minimum of fixed-width signed
// operands by composing the comparator engine with a 2-to-1 select.
//
// What
//
//   - Max(a, b) returns a when a > b, else b; ties return b.
//   - Min(a, b) is the mirrored selector: a when a < b, else b.
//   - MaxOf / MinOf fold the two-operand selectors over an operand list.
//
// The package adds no ordering logic of its own: the comparison is
// delegated entirely to comparator, so any comparator option (variant
// selection, stage hooks) forwards unchanged. The tie-break — returning
// the second operand on equality — is the non-strictly-greater default
// branch of the select.
//
// Errors
//
//   - ErrNoOperands — MaxOf/MinOf called with an empty operand list.
//   - comparator.ErrWidthMismatch, comparator.ErrUnknownVariant, and
//     comparator.ErrBadWidth propagate from the underlying engine.
package maxsel

// Package fixed provides fixed-width convenience entry points over the
// generic comparator engine: the operand width is bound to the machine
// width of a native signed integer type, and only the implementation
// variant remains selectable.
//
// Two surfaces are offered:
//
//   - Generic: Less, Greater, Max, Min over any constraints.Signed type;
//     the width is derived from the type (int8 → 8, int16 → 16, ...).
//   - Named 16-bit forms: Lt16, Gt16, Max16, Min16 over int16 — the
//     classic width-16 facade trio plus the mirrored selector.
//
// The facades bind parameters and forward; they add no behavior, and
// must agree exactly with calling comparator and maxsel directly at the
// same width and variant.
package fixed

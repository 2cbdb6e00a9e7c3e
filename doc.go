// Package bitcmp is a toolbox of width-parameterized signed-integer
// comparison primitives — less-than, greater-than, and max/min selection —
// modeled on the subtract-and-compare chains of digital logic.
//
// 🚀 What is bitcmp?
//
//	A small, pure-Go library that reimplements the classic hardware
//	comparator stack as stateless, thread-safe functions:
//		• word       — fixed-width two's-complement operands (1..64 bits)
//		• comparator — the N-bit subtract/compare engine, with selectable
//		  implementation variants (structural ripple chain vs behavioral
//		  word-level subtraction)
//		• maxsel     — maximum/minimum selection: comparison + 2-to-1 select
//		• fixed      — width-bound facades (Lt16/Gt16/Max16) and generics
//		  over any native signed type
//
// ✨ Why choose bitcmp?
//
//   - Exact two's-complement semantics at any width, including the
//     asymmetric extremes — no overflow, no silent truncation
//   - Variant-equivalent by construction: every implementation strategy
//     yields bit-identical results, enforced by property tests
//   - Observable internals — hook each stage of the ripple chain
//   - Pure Go values, no mutable state, safe under full concurrency
//
// Quick taste:
//
//	a, _ := word.FromInt64(16, -32768)
//	b, _ := word.FromInt64(16, 32767)
//	c, _ := comparator.New(16)
//	lt, _ := c.Less(a, b) // true: the sign bit outweighs every magnitude bit
//
//	go get github.com/katalvlaran/bitcmp
package bitcmp

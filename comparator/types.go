// Package comparator defines tunable options, the implementation-variant
// enumeration, and error definitions for the signed comparator engine.
package comparator

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparator construction and evaluation.
var (
	// ErrBadWidth is returned by New when width is outside 1..word.MaxWidth.
	ErrBadWidth = errors.New("comparator: width must be in 1..64")

	// ErrUnknownVariant is returned by New when an option selected a
	// variant outside the closed set.
	ErrUnknownVariant = errors.New("comparator: unknown implementation variant")

	// ErrWidthMismatch is returned when an operand's declared width
	// differs from the comparator's configured width.
	ErrWidthMismatch = errors.New("comparator: operand width mismatch")
)

// Variant selects among functionally equivalent realizations of the
// comparator. Every variant yields identical results for identical
// operands; only the internal structure and cost differ.
type Variant int

const (
	// RippleChain folds a 1-bit subtractor cell across all bit positions,
	// least-significant first, threading a borrow/equality state.
	// Cost: O(width) cell evaluations per comparison.
	RippleChain Variant = iota

	// WordSubtract subtracts the raw operand patterns in one word-level
	// operation and inspects the borrow-out and zero status of the
	// difference. Cost: O(1) per comparison.
	WordSubtract
)

// String returns the variant name, or "Variant(n)" for unknown values.
func (v Variant) String() string {
	switch v {
	case RippleChain:
		return "RippleChain"
	case WordSubtract:
		return "WordSubtract"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Option configures a Comparator via functional arguments.
// If an Option is invalid (e.g. an unknown variant), the violation is
// recorded internally and surfaced as an error by New.
type Option func(*Options)

// Options holds the comparator configuration assembled by New.
type Options struct {
	// Variant selects the internal implementation strategy.
	Variant Variant

	// OnStage is called after each ripple-chain stage with the bit
	// position (0 = least significant) and the stage's outgoing borrow
	// and equality flags. Only RippleChain has per-bit stages, so the
	// hook never fires under WordSubtract.
	OnStage func(pos int, borrow, equal bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the Options used when no Option overrides them:
// RippleChain variant, no-op stage hook.
func DefaultOptions() Options {
	return Options{
		Variant: RippleChain,
		OnStage: func(int, bool, bool) {},
		err:     nil,
	}
}

// WithVariant selects the implementation variant. A value outside the
// closed set is recorded and surfaced by New as ErrUnknownVariant.
func WithVariant(v Variant) Option {
	return func(o *Options) {
		switch v {
		case RippleChain, WordSubtract:
			o.Variant = v
		default:
			o.err = fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
		}
	}
}

// WithOnStage registers a callback observing each ripple-chain stage.
// Passing nil leaves the no-op hook in place.
func WithOnStage(fn func(pos int, borrow, equal bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

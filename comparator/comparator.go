// Package comparator implements the N-bit signed comparator engine:
// a width-parameterized subtract-and-compare chain over two's-complement
// operands, selectable among equivalent implementation variants.
package comparator

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/bitcmp/word"
)

// Comparator is an immutable signed-ordering engine for operands of one
// fixed width. Construct with New; the zero value is not usable.
// All methods are pure and safe for concurrent use.
type Comparator struct {
	width int
	opts  Options
}

// New builds a Comparator for operands of the given width, applying any
// number of functional Options. Returns ErrBadWidth for a width outside
// 1..word.MaxWidth and ErrUnknownVariant for an invalid variant option.
func New(width int, opts ...Option) (*Comparator, error) {
	if width < 1 || width > word.MaxWidth {
		return nil, fmt.Errorf("%w: got %d", ErrBadWidth, width)
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Comparator{width: width, opts: o}, nil
}

// Width reports the operand width this comparator was built for.
func (c *Comparator) Width() int { return c.width }

// Variant reports the configured implementation variant.
func (c *Comparator) Variant() Variant { return c.opts.Variant }

// Less reports whether a < b under two's-complement interpretation.
// Both operands must match the comparator's width.
func (c *Comparator) Less(a, b word.Word) (bool, error) {
	if err := c.checkWidths(a, b); err != nil {
		return false, err
	}

	// When the sign bits differ the unsigned borrow is meaningless:
	// the negative operand (sign bit 1) is the smaller one, whatever
	// its magnitude bits say.
	if a.Sign() != b.Sign() {
		return a.Sign(), nil
	}

	return c.unsignedSubtract(a, b).borrow, nil
}

// Greater reports whether a > b. Defined as Less with the operands
// swapped, so Greater(a, b) == Less(b, a) holds for every input.
func (c *Comparator) Greater(a, b word.Word) (bool, error) {
	return c.Less(b, a)
}

// Equal reports whether a == b bit for bit. Evaluated through the same
// variant machinery as Less, exercising the chain's equality flag.
func (c *Comparator) Equal(a, b word.Word) (bool, error) {
	if err := c.checkWidths(a, b); err != nil {
		return false, err
	}

	return c.unsignedSubtract(a, b).equal, nil
}

// checkWidths rejects operands whose declared width differs from the
// comparator's, before any bit is examined.
func (c *Comparator) checkWidths(a, b word.Word) error {
	if a.Width() != c.width {
		return fmt.Errorf("%w: first operand is %d bits, comparator is %d", ErrWidthMismatch, a.Width(), c.width)
	}
	if b.Width() != c.width {
		return fmt.Errorf("%w: second operand is %d bits, comparator is %d", ErrWidthMismatch, b.Width(), c.width)
	}

	return nil
}

// unsignedSubtract evaluates a - b over the raw bit patterns and returns
// the final borrow/equality state, dispatching on the configured variant.
// Width checks have already passed.
func (c *Comparator) unsignedSubtract(a, b word.Word) chainState {
	if c.opts.Variant == WordSubtract {
		return c.wordSubtract(a, b)
	}

	return c.rippleSubtract(a, b)
}

// rippleSubtract folds the 1-bit subtractor cell across all positions,
// least-significant first, threading the borrow/equality state and
// notifying the stage hook after each cell.
func (c *Comparator) rippleSubtract(a, b word.Word) chainState {
	aRaw, bRaw := a.Uint64(), b.Uint64()
	st := chainIdentity
	for i := 0; i < c.width; i++ {
		st = subtractBit(aRaw>>i&1 == 1, bRaw>>i&1 == 1, st)
		c.opts.OnStage(i, st.borrow, st.equal)
	}

	return st
}

// wordSubtract performs the whole subtraction in one word-level operation
// and reads the borrow-out and zero status of the difference. Patterns are
// already masked to the width, so the borrow out of bit width-1 surfaces
// as the 64-bit borrow.
func (c *Comparator) wordSubtract(a, b word.Word) chainState {
	diff, borrow := bits.Sub64(a.Uint64(), b.Uint64(), 0)

	return chainState{borrow: borrow == 1, equal: diff == 0}
}

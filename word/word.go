package word

import (
	"errors"
	"fmt"
	"strings"
)

// MaxWidth is the widest supported operand, one machine word.
const MaxWidth = 64

// Sentinel errors for Word construction and access.
var (
	// ErrWidthOutOfRange is returned when a requested width is not in 1..MaxWidth.
	ErrWidthOutOfRange = errors.New("word: width must be in 1..64")

	// ErrValueOutOfRange is returned when a value cannot be represented
	// in the declared width without truncation.
	ErrValueOutOfRange = errors.New("word: value not representable in width")

	// ErrBitIndex is returned by Bit for an index outside 0..Width()-1.
	ErrBitIndex = errors.New("word: bit index out of range")
)

// Word is an immutable two's-complement value of fixed bit width.
// The zero Word has width 0 and is not a valid operand; always build
// Words through FromInt64, FromUint64, or FromBits.
type Word struct {
	bits  uint64 // raw pattern, bits above width are always zero
	width int    // declared width, 1..MaxWidth
}

// mask returns the low-w-bit mask.
func mask(w int) uint64 {
	if w == MaxWidth {
		return ^uint64(0)
	}

	return (uint64(1) << w) - 1
}

// FromInt64 builds a Word of the given width holding v.
// Returns ErrWidthOutOfRange for width outside 1..MaxWidth, and
// ErrValueOutOfRange when v does not fit in width bits as two's-complement —
// out-of-range values are rejected, never truncated.
func FromInt64(width int, v int64) (Word, error) {
	if width < 1 || width > MaxWidth {
		return Word{}, fmt.Errorf("%w: got %d", ErrWidthOutOfRange, width)
	}
	if width < MaxWidth {
		lo := -(int64(1) << (width - 1))
		hi := (int64(1) << (width - 1)) - 1
		if v < lo || v > hi {
			return Word{}, fmt.Errorf("%w: %d does not fit in %d bits", ErrValueOutOfRange, v, width)
		}
	}

	return Word{bits: uint64(v) & mask(width), width: width}, nil
}

// FromUint64 builds a Word of the given width from a raw bit pattern,
// reinterpreted as two's-complement. Bits above the width must be zero;
// a set high bit is ErrValueOutOfRange (the pattern would be silently
// narrowed otherwise).
func FromUint64(width int, raw uint64) (Word, error) {
	if width < 1 || width > MaxWidth {
		return Word{}, fmt.Errorf("%w: got %d", ErrWidthOutOfRange, width)
	}
	if raw&^mask(width) != 0 {
		return Word{}, fmt.Errorf("%w: pattern %#x exceeds %d bits", ErrValueOutOfRange, raw, width)
	}

	return Word{bits: raw, width: width}, nil
}

// FromBits builds a Word from individual bits, least-significant first,
// with width = len(bits). Returns ErrWidthOutOfRange for an empty or
// over-long bit list.
func FromBits(bits ...bool) (Word, error) {
	if len(bits) < 1 || len(bits) > MaxWidth {
		return Word{}, fmt.Errorf("%w: got %d bits", ErrWidthOutOfRange, len(bits))
	}
	var raw uint64
	for i, b := range bits {
		if b {
			raw |= uint64(1) << i
		}
	}

	return Word{bits: raw, width: len(bits)}, nil
}

// Width reports the declared bit width.
func (w Word) Width() int { return w.width }

// Bit reports the bit at position i, where position 0 is least significant.
func (w Word) Bit(i int) (bool, error) {
	if i < 0 || i >= w.width {
		return false, fmt.Errorf("%w: index %d, width %d", ErrBitIndex, i, w.width)
	}

	return w.bits>>i&1 == 1, nil
}

// Sign reports the most-significant (sign) bit; true means negative.
func (w Word) Sign() bool {
	return w.bits>>(w.width-1)&1 == 1
}

// Uint64 returns the raw bit pattern. Bits above the width are zero.
func (w Word) Uint64() uint64 { return w.bits }

// Int64 returns the two's-complement value: the raw pattern sign-extended
// from the declared width to 64 bits.
func (w Word) Int64() int64 {
	if w.Sign() {
		return int64(w.bits | ^mask(w.width))
	}

	return int64(w.bits)
}

// Equal reports whether o has the same width and the same bit pattern.
// Words of different widths are never equal, even for equal values.
func (w Word) Equal(o Word) bool {
	return w.width == o.width && w.bits == o.bits
}

// String renders the Word most-significant bit first, e.g. "0b1000_0001"
// for width 8; groups of four bits are separated by underscores.
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteString("0b")
	for i := w.width - 1; i >= 0; i-- {
		if w.bits>>i&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 && i%4 == 0 {
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

package fixed

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/bitcmp/comparator"
	"github.com/katalvlaran/bitcmp/maxsel"
	"github.com/katalvlaran/bitcmp/word"
)

// widthOf reports the bit width of T by shifting a one through the type
// until it wraps to zero. Pure and allocation-free; O(width).
func widthOf[T constraints.Signed]() int {
	width := 0
	for v := T(1); v != 0; v <<= 1 {
		width++
	}

	return width
}

// wordOf lifts a native signed value into a Word of T's width.
// Every value of T is representable at that width, so this cannot fail
// on valid widths.
func wordOf[T constraints.Signed](v T) (word.Word, error) {
	return word.FromInt64(widthOf[T](), int64(v))
}

// Less reports a < b through the comparator engine at T's width.
// Options forward unchanged; an unknown variant surfaces as
// comparator.ErrUnknownVariant.
func Less[T constraints.Signed](a, b T, opts ...comparator.Option) (bool, error) {
	c, err := comparator.New(widthOf[T](), opts...)
	if err != nil {
		return false, err
	}
	aw, err := wordOf(a)
	if err != nil {
		return false, err
	}
	bw, err := wordOf(b)
	if err != nil {
		return false, err
	}

	return c.Less(aw, bw)
}

// Greater reports a > b through the comparator engine at T's width.
func Greater[T constraints.Signed](a, b T, opts ...comparator.Option) (bool, error) {
	return Less(b, a, opts...)
}

// Max returns the greater operand (b on ties) through maxsel at T's width.
func Max[T constraints.Signed](a, b T, opts ...comparator.Option) (T, error) {
	aw, err := wordOf(a)
	if err != nil {
		return 0, err
	}
	bw, err := wordOf(b)
	if err != nil {
		return 0, err
	}
	m, err := maxsel.Max(aw, bw, opts...)
	if err != nil {
		return 0, err
	}

	return T(m.Int64()), nil
}

// Min returns the lesser operand (b on ties) through maxsel at T's width.
func Min[T constraints.Signed](a, b T, opts ...comparator.Option) (T, error) {
	aw, err := wordOf(a)
	if err != nil {
		return 0, err
	}
	bw, err := wordOf(b)
	if err != nil {
		return 0, err
	}
	m, err := maxsel.Min(aw, bw, opts...)
	if err != nil {
		return 0, err
	}

	return T(m.Int64()), nil
}

// Lt16 reports a < b for width-16 operands.
func Lt16(a, b int16, opts ...comparator.Option) (bool, error) {
	return Less(a, b, opts...)
}

// Gt16 reports a > b for width-16 operands.
func Gt16(a, b int16, opts ...comparator.Option) (bool, error) {
	return Greater(a, b, opts...)
}

// Max16 returns the greater width-16 operand, b on ties.
func Max16(a, b int16, opts ...comparator.Option) (int16, error) {
	return Max(a, b, opts...)
}

// Min16 returns the lesser width-16 operand, b on ties.
func Min16(a, b int16, opts ...comparator.Option) (int16, error) {
	return Min(a, b, opts...)
}

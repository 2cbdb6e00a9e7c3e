package maxsel

import (
	"errors"

	"github.com/katalvlaran/bitcmp/comparator"
	"github.com/katalvlaran/bitcmp/word"
)

// ErrNoOperands is returned by MaxOf and MinOf for an empty operand list.
var ErrNoOperands = errors.New("maxsel: at least one operand required")

// Max returns a when a > b under two's-complement order, else b.
// Ties return b. Any comparator Option (variant, hooks) forwards to the
// underlying engine; both operands must share one width.
func Max(a, b word.Word, opts ...comparator.Option) (word.Word, error) {
	c, err := comparator.New(a.Width(), opts...)
	if err != nil {
		return word.Word{}, err
	}

	return maxWith(c, a, b)
}

// Min returns a when a < b under two's-complement order, else b.
// Ties return b, mirroring Max.
func Min(a, b word.Word, opts ...comparator.Option) (word.Word, error) {
	c, err := comparator.New(a.Width(), opts...)
	if err != nil {
		return word.Word{}, err
	}

	return minWith(c, a, b)
}

// MaxOf folds Max over the operand list left to right, so the tie-break
// of the two-operand form carries over: on equality the later operand
// wins. Returns ErrNoOperands for an empty list.
func MaxOf(words []word.Word, opts ...comparator.Option) (word.Word, error) {
	return fold(words, maxWith, opts...)
}

// MinOf folds Min over the operand list left to right.
// Returns ErrNoOperands for an empty list.
func MinOf(words []word.Word, opts ...comparator.Option) (word.Word, error) {
	return fold(words, minWith, opts...)
}

// maxWith is the 2-to-1 select on the greater-than result.
func maxWith(c *comparator.Comparator, a, b word.Word) (word.Word, error) {
	gt, err := c.Greater(a, b)
	if err != nil {
		return word.Word{}, err
	}
	if gt {
		return a, nil
	}

	return b, nil
}

// minWith is the 2-to-1 select on the less-than result.
func minWith(c *comparator.Comparator, a, b word.Word) (word.Word, error) {
	lt, err := c.Less(a, b)
	if err != nil {
		return word.Word{}, err
	}
	if lt {
		return a, nil
	}

	return b, nil
}

// fold builds one comparator for the list's width and reduces it with
// the given two-operand selector.
func fold(
	words []word.Word,
	sel func(*comparator.Comparator, word.Word, word.Word) (word.Word, error),
	opts ...comparator.Option,
) (word.Word, error) {
	if len(words) == 0 {
		return word.Word{}, ErrNoOperands
	}
	c, err := comparator.New(words[0].Width(), opts...)
	if err != nil {
		return word.Word{}, err
	}

	acc := words[0]
	for _, w := range words[1:] {
		if acc, err = sel(c, acc, w); err != nil {
			return word.Word{}, err
		}
	}

	return acc, nil
}

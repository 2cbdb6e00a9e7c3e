package maxsel_test

import (
	"fmt"

	"github.com/katalvlaran/bitcmp/comparator"
	"github.com/katalvlaran/bitcmp/maxsel"
	"github.com/katalvlaran/bitcmp/word"
)

// ExampleMax selects the greater of two width-16 signed operands; the
// comparison handles the sign bits, so a small positive value beats a
// large-magnitude negative one.
func ExampleMax() {
	a, _ := word.FromInt64(16, 5)
	b, _ := word.FromInt64(16, -3)

	m, err := maxsel.Max(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("max(5, -3) = %d\n", m.Int64())
	// Output:
	// max(5, -3) = 5
}

// ExampleMaxOf folds the selector over several operands, forwarding the
// behavioral engine variant.
func ExampleMaxOf() {
	values := []int64{-7, 100, 3, -128}
	words := make([]word.Word, len(values))
	for i, v := range values {
		words[i], _ = word.FromInt64(8, v)
	}

	m, err := maxsel.MaxOf(words, comparator.WithVariant(comparator.WordSubtract))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("max of %v = %d\n", values, m.Int64())
	// Output:
	// max of [-7 100 3 -128] = 100
}

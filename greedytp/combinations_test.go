package greedytp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations_LexicographicOrder(t *testing.T) {
	var all [][]int
	combo := FirstCombination(4, 2)
	all = append(all, append([]int(nil), combo...))
	for NextCombination(combo, 4) {
		all = append(all, append([]int(nil), combo...))
	}

	expected := [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}
	assert.Equal(t, expected, all)
}

func TestFirstCombination_ZeroAndFull(t *testing.T) {
	assert.Equal(t, []int{}, FirstCombination(5, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, FirstCombination(5, 5))
}

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sol(seed, target int, expression string) Solution {
	return Solution{
		Seed:       seed,
		Target:     target,
		Expression: expression,
		Complexity: len(expression),
	}
}

func TestMergeKeepsLowerComplexity(t *testing.T) {
	set := Set{}

	assert.True(t, set.Merge(sol(5, 10, "((5 + 5) - (5 - 5))")))
	assert.Equal(t, 1, set.Count())

	// Strictly shorter replaces.
	assert.True(t, set.Merge(sol(5, 10, "(55 / 5.5)")))
	assert.Equal(t, "(55 / 5.5)", set[5][10].Expression)

	// Equal complexity does not.
	assert.False(t, set.Merge(sol(5, 10, "(55 * 5.5)")))
	assert.Equal(t, "(55 / 5.5)", set[5][10].Expression)

	// Longer does not.
	assert.False(t, set.Merge(sol(5, 10, "((5 + 5) * (5 / 5))")))
	assert.Equal(t, "(55 / 5.5)", set[5][10].Expression)
}

func TestMergeSeparatesSeedsAndTargets(t *testing.T) {
	set := Set{}
	assert.True(t, set.Merge(sol(1, 4, "((1 + 1) + (1 + 1))")))
	assert.True(t, set.Merge(sol(2, 4, "(2 + (2 * (2 - 2)))")))
	assert.True(t, set.Merge(sol(1, 3, "(((1 + 1) + 1) * 1)")))
	assert.Equal(t, 3, set.Count())
}

func TestMissingTargets(t *testing.T) {
	set := Set{}
	assert.Equal(t, []int{1, 2, 3}, set.MissingTargets(5, 1, 3))

	set.Merge(sol(5, 2, "(5 / (5 % (5 - 5.5)))"))
	assert.Equal(t, []int{1, 3}, set.MissingTargets(5, 1, 3))

	set.Merge(sol(5, 1, "(5 / 5)"))
	set.Merge(sol(5, 3, "(5 - (5 + 5) / 5)"))
	assert.Empty(t, set.MissingTargets(5, 1, 3))
}

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitOf(t *testing.T) {
	assert.Equal(t, 2, DigitOf("(2 + 2)"))
	assert.Equal(t, 5, DigitOf("sqrt((55 / 5.5))"))
	assert.Equal(t, 0, DigitOf("sqrt(x)"))
}

func TestCleanLeavesCorrectlyFiledAlone(t *testing.T) {
	set := Set{}
	set.Merge(sol(3, 9, "((3 * 3) * (3 / 3))"))

	cleaned, moves := Clean(set)
	assert.Empty(t, moves)
	assert.Equal(t, set, cleaned)
}

func TestCleanMovesMisfiledSolutions(t *testing.T) {
	set := Set{}
	// A seed-2 expression filed under seed 1.
	set.Merge(sol(1, 4, "((2 + 2) * (2 / 2))"))

	cleaned, moves := Clean(set)
	assert.Equal(t, []Move{{FromSeed: 1, ToSeed: 2, Target: 4}}, moves)
	assert.Empty(t, cleaned[1])
	assert.Equal(t, "((2 + 2) * (2 / 2))", cleaned[2][4].Expression)
	assert.Equal(t, 2, cleaned[2][4].Seed)
}

func TestCleanCollisionShorterWins(t *testing.T) {
	set := Set{}
	set.Merge(sol(1, 4, "(2 + 2)"))                         // misfiled, short
	set.Merge(sol(2, 4, "((2 + 2) * (2 / 2))"))             // resident, long
	set.Merge(sol(1, 8, "((2 + 2) + ((2 + 2) * (2 / 2)))")) // misfiled, long
	set.Merge(sol(2, 8, "((2 + 2) + (2 + 2))"))             // resident, short

	cleaned, moves := Clean(set)
	assert.Len(t, moves, 2)

	// The shorter expression holds each contested slot.
	assert.Equal(t, "(2 + 2)", cleaned[2][4].Expression)
	assert.Equal(t, "((2 + 2) + (2 + 2))", cleaned[2][8].Expression)
	assert.Empty(t, cleaned[1])
}

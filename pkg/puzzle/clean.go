package puzzle

import (
	"strconv"
	"strings"
)

// Move records one solution re-homed during cleanup.
type Move struct {
	FromSeed int
	ToSeed   int
	Target   int
}

// DigitOf returns the first digit 1-9 that appears in the expression,
// or 0 if none does. Accepted expressions use a single digit, so the
// first hit identifies the seed.
func DigitOf(expression string) int {
	for seed := 1; seed <= 9; seed++ {
		if strings.Contains(expression, strconv.Itoa(seed)) {
			return seed
		}
	}
	return 0
}

// Clean re-homes solutions filed under the wrong seed bucket: every
// solution whose expression's digit differs from its bucket moves to
// the correct seed, kept there only if the slot is empty or the moved
// expression is shorter. Returns the cleaned set and the moves applied.
func Clean(set Set) (Set, []Move) {
	var moves []Move
	var displaced []Solution
	cleaned := Set{}

	// Settle correctly-filed solutions first so collisions are decided
	// against the resident entry, not against iteration order.
	for seed, targets := range set {
		for target, sol := range targets {
			correct := DigitOf(sol.Expression)
			if correct == 0 || correct == seed {
				cleaned.Merge(sol)
				continue
			}
			moves = append(moves, Move{FromSeed: seed, ToSeed: correct, Target: target})
			sol.Seed = correct
			displaced = append(displaced, sol)
		}
	}

	for _, sol := range displaced {
		if existing, ok := cleaned[sol.Seed][sol.Target]; ok {
			if len(sol.Expression) >= len(existing.Expression) {
				continue
			}
		}
		if _, ok := cleaned[sol.Seed]; !ok {
			cleaned[sol.Seed] = map[int]Solution{}
		}
		cleaned[sol.Seed][sol.Target] = sol
	}
	return cleaned, moves
}

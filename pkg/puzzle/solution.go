// Package puzzle holds the solution records produced by the search
// engine and their on-disk JSON form.
package puzzle

// Solution is the best expression found so far for a (seed, target)
// pair. Complexity is the character length of the canonical string;
// lower is better.
type Solution struct {
	Seed            int    `json:"seed"`
	Target          int    `json:"target"`
	Expression      string `json:"expression"`
	Complexity      int    `json:"complexity"`
	UniqueOperators int    `json:"unique_operators"`
}

// Set maps seed -> target -> best Solution.
type Set map[int]map[int]Solution

// Merge stores sol if no solution exists for its (seed, target) pair or
// if sol has strictly lower complexity. Reports whether sol was kept.
func (s Set) Merge(sol Solution) bool {
	targets, ok := s[sol.Seed]
	if !ok {
		targets = map[int]Solution{}
		s[sol.Seed] = targets
	}
	existing, ok := targets[sol.Target]
	if ok && existing.Complexity <= sol.Complexity {
		return false
	}
	targets[sol.Target] = sol
	return true
}

// Count returns the total number of stored solutions.
func (s Set) Count() int {
	n := 0
	for _, targets := range s {
		n += len(targets)
	}
	return n
}

// MissingTargets lists targets in [min, max] with no solution for seed,
// in ascending order.
func (s Set) MissingTargets(seed, min, max int) []int {
	var missing []int
	for t := min; t <= max; t++ {
		if _, ok := s[seed][t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

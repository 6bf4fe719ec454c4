package search

import "github.com/HamburgJ/four-nines-game/pkg/puzzle"

func init() {
	Register("random", func() Strategy { return &RandomStrategy{} })
}

// RandomStrategy samples leaf combinations uniformly and builds one
// randomized tree per attempt.
type RandomStrategy struct{}

func (s *RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) Search(g *Generator, maxAttempts int) *puzzle.Solution {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		combo := g.leaves.Random(g.rng)
		node := g.buildRandom(combo, 0)
		if sol := g.checkCandidate(node); sol != nil {
			return sol
		}
	}
	return nil
}

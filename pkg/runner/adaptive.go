package runner

import "github.com/HamburgJ/four-nines-game/pkg/search"

// AdaptiveConfig picks genetic parameters from the previous cycle's
// yield: more mutation when improvements dominate, a bigger population
// and tournament when the cycle came up empty.
func AdaptiveConfig(found, improved int) search.Config {
	cfg := search.DefaultConfig()
	cfg.MaxDepth = 10

	if improved > found {
		cfg.MutationRate = 0.4
	} else {
		cfg.MutationRate = 0.2
	}
	cfg.CrossoverRate = 0.9 - cfg.MutationRate

	total := found + improved
	if total == 0 {
		cfg.BinaryOpProb = 0.5
		cfg.PopulationSize = 100
		cfg.EliteSize = 10
		cfg.TournamentSize = 7
	} else {
		cfg.BinaryOpProb = 0.7
		cfg.PopulationSize = 50
		cfg.EliteSize = 5
		cfg.TournamentSize = 5
	}
	return cfg
}

package search

import "github.com/pkg/errors"

// Config holds all parameters for one generator instance. Strategy and
// depth limits are explicit per-run settings, never process globals.
type Config struct {
	Strategy       string  `mapstructure:"strategy"`
	TargetMin      int     `mapstructure:"target_min"`
	TargetMax      int     `mapstructure:"target_max"`
	PopulationSize int     `mapstructure:"population_size"`
	EliteSize      int     `mapstructure:"elite_size"`
	MutationRate   float64 `mapstructure:"mutation_rate"`
	CrossoverRate  float64 `mapstructure:"crossover_rate"`
	BinaryOpProb   float64 `mapstructure:"binary_op_prob"`
	TournamentSize int     `mapstructure:"tournament_size"`
	MaxDepth       int     `mapstructure:"max_depth"` // 0 = unlimited
	RandSeed       int64   `mapstructure:"rand_seed"` // 0 = time-seeded
}

// DefaultConfig returns the genetic strategy with its stock parameters.
func DefaultConfig() Config {
	return Config{
		Strategy:       "genetic",
		TargetMin:      1,
		TargetMax:      100,
		PopulationSize: 50,
		EliteSize:      5,
		MutationRate:   0.3,
		CrossoverRate:  0.7,
		BinaryOpProb:   0.7,
		TournamentSize: 5,
	}
}

func (c Config) validate() error {
	if c.TargetMin < 1 || c.TargetMin > c.TargetMax {
		return errors.Errorf("search: ill-formed target range [%d, %d]", c.TargetMin, c.TargetMax)
	}
	if c.PopulationSize < 2 {
		return errors.Errorf("search: population size %d too small", c.PopulationSize)
	}
	if c.EliteSize < 0 || c.EliteSize >= c.PopulationSize {
		return errors.Errorf("search: elite size %d out of range", c.EliteSize)
	}
	if c.TournamentSize < 1 {
		return errors.Errorf("search: tournament size %d out of range", c.TournamentSize)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return errors.Errorf("search: mutation rate %v out of range", c.MutationRate)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return errors.Errorf("search: crossover rate %v out of range", c.CrossoverRate)
	}
	if c.BinaryOpProb < 0 || c.BinaryOpProb > 1 {
		return errors.Errorf("search: binary op probability %v out of range", c.BinaryOpProb)
	}
	return nil
}

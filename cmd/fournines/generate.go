package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
	"github.com/HamburgJ/four-nines-game/pkg/search"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run one timed search for a single seed and merge the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd,
				"seed", "strategy", "target-min", "target-max",
				"attempts", "budget", "max-depth", "rand-seed"); err != nil {
				return err
			}
			return runGenerate(v)
		},
	}

	cmd.Flags().Int("seed", 9, "seed digit (1-9)")
	cmd.Flags().String("strategy", "genetic", "search strategy ("+joinNames()+")")
	cmd.Flags().Int("target-min", 1, "minimum target value")
	cmd.Flags().Int("target-max", 100, "maximum target value")
	cmd.Flags().Int("attempts", 1000, "attempt budget per search call")
	cmd.Flags().Duration("budget", 10*time.Second, "wall-clock budget for the run")
	cmd.Flags().Int("max-depth", 0, "maximum tree depth (0 = unlimited)")
	cmd.Flags().Int64("rand-seed", 0, "random seed (0 = time-seeded)")
	return cmd
}

func runGenerate(v *viper.Viper) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := search.DefaultConfig()
	cfg.Strategy = v.GetString("strategy")
	cfg.TargetMin = v.GetInt("target-min")
	cfg.TargetMax = v.GetInt("target-max")
	cfg.MaxDepth = v.GetInt("max-depth")
	cfg.RandSeed = v.GetInt64("rand-seed")

	seed := v.GetInt("seed")
	gen, err := search.NewGenerator(seed, cfg)
	if err != nil {
		return errors.Wrap(err, "configuring generator")
	}

	store := puzzle.NewStore(v.GetString("dir"))
	existing, err := store.Load()
	if err != nil {
		return err
	}
	gen.SetSolutions(existing[seed])

	log.Info("generating",
		zap.Int("seed", seed),
		zap.String("strategy", cfg.Strategy),
		zap.Duration("budget", v.GetDuration("budget")))

	attempts := v.GetInt("attempts")
	deadline := time.Now().Add(v.GetDuration("budget"))
	found := 0
	for time.Now().Before(deadline) {
		sol := gen.GeneratePuzzle(attempts)
		if sol == nil {
			continue
		}
		found++
		log.Info("solution",
			zap.Int("target", sol.Target),
			zap.String("expression", sol.Expression),
			zap.Int("complexity", sol.Complexity),
			zap.Int("unique_operators", sol.UniqueOperators))
	}

	for _, sol := range gen.Solutions() {
		existing.Merge(sol)
	}
	if err := store.SaveSeed(existing, seed); err != nil {
		return err
	}
	log.Info("done", zap.Int("found", found), zap.Int("stored", len(existing[seed])))
	return nil
}

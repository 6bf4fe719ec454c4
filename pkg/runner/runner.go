// Package runner cycles the search engine across all nine seeds on a
// wall-clock budget, persisting progress after every seed.
package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
	"github.com/HamburgJ/four-nines-game/pkg/search"
)

// attemptsPerStep is the candidate budget handed to the engine between
// cancellation checks.
const attemptsPerStep = 1000

// Settings configure a continuous run.
type Settings struct {
	TimePerSeed time.Duration
	TargetMin   int
	TargetMax   int
}

// Runner owns the accumulated solution set and walks seeds 1 through 9
// until its context is cancelled.
type Runner struct {
	settings  Settings
	store     *puzzle.Store
	log       *zap.Logger
	runID     string
	solutions puzzle.Set

	lastFound    int
	lastImproved int
}

// New loads any persisted solutions and prepares a runner.
func New(settings Settings, store *puzzle.Store, log *zap.Logger) (*Runner, error) {
	solutions, err := store.Load()
	if err != nil {
		return nil, err
	}
	if settings.TargetMin == 0 {
		settings.TargetMin = 1
	}
	if settings.TargetMax == 0 {
		settings.TargetMax = 100
	}
	return &Runner{
		settings:  settings,
		store:     store,
		log:       log,
		runID:     uuid.NewString(),
		solutions: solutions,
	}, nil
}

// Solutions exposes the accumulated set (for stats and tests).
func (r *Runner) Solutions() puzzle.Set { return r.solutions }

// Run cycles seeds until ctx is cancelled, spending TimePerSeed on each
// and saving after every seed. Cancellation is checked between search
// steps, never inside the engine.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("starting continuous generation",
		zap.String("run_id", r.runID),
		zap.Duration("time_per_seed", r.settings.TimePerSeed))

	seed := 1
	for {
		select {
		case <-ctx.Done():
			r.log.Info("stopping", zap.String("run_id", r.runID))
			return ctx.Err()
		default:
		}

		if err := r.runSeed(ctx, seed); err != nil {
			return err
		}
		seed = seed%9 + 1
	}
}

func (r *Runner) runSeed(ctx context.Context, seed int) error {
	cfg := AdaptiveConfig(r.lastFound, r.lastImproved)
	cfg.TargetMin = r.settings.TargetMin
	cfg.TargetMax = r.settings.TargetMax

	gen, err := search.NewGenerator(seed, cfg)
	if err != nil {
		return err
	}
	gen.SetSolutions(r.solutions[seed])

	r.log.Info("working on seed",
		zap.String("run_id", r.runID),
		zap.Int("seed", seed),
		zap.Float64("mutation_rate", cfg.MutationRate),
		zap.Float64("crossover_rate", cfg.CrossoverRate),
		zap.Int("population", cfg.PopulationSize))

	found, improved := 0, 0
	deadline := time.Now().Add(r.settings.TimePerSeed)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return r.finishSeed(seed, gen, found, improved)
		default:
		}

		sol := gen.GeneratePuzzle(attemptsPerStep)
		if sol == nil {
			continue
		}
		if _, ok := r.solutions[seed][sol.Target]; ok {
			improved++
			r.log.Info("improved solution",
				zap.Int("seed", seed), zap.Int("target", sol.Target),
				zap.String("expression", sol.Expression),
				zap.Int("complexity", sol.Complexity))
		} else {
			found++
			r.log.Info("new solution",
				zap.Int("seed", seed), zap.Int("target", sol.Target),
				zap.String("expression", sol.Expression),
				zap.Int("complexity", sol.Complexity))
		}
		r.solutions.Merge(*sol)
	}
	return r.finishSeed(seed, gen, found, improved)
}

func (r *Runner) finishSeed(seed int, gen *search.Generator, found, improved int) error {
	for _, sol := range gen.Solutions() {
		r.solutions.Merge(sol)
	}
	r.lastFound = found
	r.lastImproved = improved

	if err := r.store.SaveSeed(r.solutions, seed); err != nil {
		return err
	}

	missing := r.solutions.MissingTargets(seed, r.settings.TargetMin, r.settings.TargetMax)
	r.log.Info("seed cycle done",
		zap.String("run_id", r.runID),
		zap.Int("seed", seed),
		zap.Int("found", found),
		zap.Int("improved", improved),
		zap.Int("solved", len(r.solutions[seed])),
		zap.Int("missing", len(missing)),
		zap.Int("duplicate_streak", gen.DuplicateStreak()),
		zap.Int("total", r.solutions.Count()))
	return nil
}

package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

func TestAdaptiveConfigEmptyCycleWidensSearch(t *testing.T) {
	cfg := AdaptiveConfig(0, 0)
	assert.Equal(t, 10, cfg.MaxDepth)
	assert.Equal(t, 0.2, cfg.MutationRate)
	assert.InDelta(t, 0.7, cfg.CrossoverRate, 1e-9)
	assert.Equal(t, 0.5, cfg.BinaryOpProb)
	assert.Equal(t, 100, cfg.PopulationSize)
	assert.Equal(t, 10, cfg.EliteSize)
	assert.Equal(t, 7, cfg.TournamentSize)
}

func TestAdaptiveConfigImprovementsRaiseMutation(t *testing.T) {
	cfg := AdaptiveConfig(1, 5)
	assert.Equal(t, 0.4, cfg.MutationRate)
	assert.InDelta(t, 0.5, cfg.CrossoverRate, 1e-9)
	assert.Equal(t, 50, cfg.PopulationSize)

	cfg = AdaptiveConfig(5, 1)
	assert.Equal(t, 0.2, cfg.MutationRate)
	assert.InDelta(t, 0.7, cfg.CrossoverRate, 1e-9)
	assert.Equal(t, 0.7, cfg.BinaryOpProb)
}

func TestNewLoadsPersistedSolutions(t *testing.T) {
	store := puzzle.NewStore(t.TempDir())
	set := puzzle.Set{}
	set.Merge(puzzle.Solution{Seed: 5, Target: 1, Expression: "(5 / 5)", Complexity: 7, UniqueOperators: 1})
	require.NoError(t, store.Save(set))

	r, err := New(Settings{TimePerSeed: time.Second}, store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, r.Solutions().Count())
	assert.Equal(t, "(5 / 5)", r.Solutions()[5][1].Expression)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	store := puzzle.NewStore(t.TempDir())
	r, err := New(Settings{TimePerSeed: time.Second}, store, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSavesBeforeReturning(t *testing.T) {
	store := puzzle.NewStore(t.TempDir())
	r, err := New(Settings{TimePerSeed: 10 * time.Millisecond}, store, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = r.Run(ctx)
	assert.Error(t, err)

	// Whatever the first seed produced was persisted on the way out.
	_, loadErr := store.Load()
	assert.NoError(t, loadErr)
}

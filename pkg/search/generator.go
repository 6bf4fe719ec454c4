// Package search discovers minimal-length expressions that spend a seed
// digit exactly four times and hit integer targets, via random
// construction or a genetic algorithm.
package search

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
	"github.com/HamburgJ/four-nines-game/pkg/leaf"
	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

// Generator owns one seed's search state: leaf combinations, RNG,
// dedup set, adaptive operator weights and the best solution per
// target. Instances are not safe for concurrent use; run one per seed.
type Generator struct {
	cfg      Config
	seed     int
	leaves   *leaf.Generator
	rng      *rand.Rand
	strategy Strategy

	solutions       map[int]puzzle.Solution
	tried           map[string]struct{}
	duplicateStreak int

	unaryWeights  map[expr.UnaryOp]float64
	binaryWeights map[expr.BinaryOp]float64

	population []expr.Node
}

// NewGenerator builds a generator for one seed digit. Configuration
// problems (seed outside 1-9, bad ranges, unknown strategy) fail here.
func NewGenerator(seed int, cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	leaves, err := leaf.NewGenerator(seed)
	if err != nil {
		return nil, err
	}
	strategy, err := Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	randSeed := cfg.RandSeed
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg:           cfg,
		seed:          seed,
		leaves:        leaves,
		rng:           rand.New(rand.NewSource(randSeed)),
		strategy:      strategy,
		solutions:     map[int]puzzle.Solution{},
		tried:         map[string]struct{}{},
		unaryWeights:  map[expr.UnaryOp]float64{},
		binaryWeights: map[expr.BinaryOp]float64{},
	}
	for _, op := range expr.UnaryOps() {
		g.unaryWeights[op] = 1.0
	}
	for _, op := range expr.BinaryOps() {
		g.binaryWeights[op] = 1.0
	}
	// Basic arithmetic starts favored.
	for _, op := range []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv} {
		g.binaryWeights[op] = 2.0
	}
	return g, nil
}

// Seed returns the generator's seed digit.
func (g *Generator) Seed() int { return g.seed }

// GeneratePuzzle spends up to maxAttempts candidates looking for a new
// or improved solution. Returns nil when the budget runs out empty.
func (g *Generator) GeneratePuzzle(maxAttempts int) *puzzle.Solution {
	return g.strategy.Search(g, maxAttempts)
}

// Solutions returns a copy of the best solution per target found so far.
func (g *Generator) Solutions() map[int]puzzle.Solution {
	out := make(map[int]puzzle.Solution, len(g.solutions))
	for t, s := range g.solutions {
		out[t] = s
	}
	return out
}

// SetSolutions seeds the generator with previously persisted solutions
// so new finds must beat their complexity.
func (g *Generator) SetSolutions(sols map[int]puzzle.Solution) {
	for t, s := range sols {
		g.solutions[t] = s
	}
}

// DuplicateStreak reports how many duplicate candidates have been seen
// since the last accepted solution. Diagnostic only; it never halts a
// search.
func (g *Generator) DuplicateStreak() int { return g.duplicateStreak }

// checkCandidate is the acceptance test shared by both strategies:
// exactly four seed digits in the canonical string, an integer value
// whose magnitude lies in the target range, and a complexity strictly
// below any stored solution for that target. Negative values are
// recorded wrapped in an outer negation.
func (g *Generator) checkCandidate(node expr.Node) *puzzle.Solution {
	s := node.String()
	if _, dup := g.tried[s]; dup {
		g.duplicateStreak++
		return nil
	}
	g.tried[s] = struct{}{}

	v, err := node.Eval()
	if err != nil {
		return nil
	}
	if expr.CountDigit(s, g.seed) != leaf.DigitBudget {
		return nil
	}
	if !v.IsInteger() {
		return nil
	}
	abs := v.Abs()
	if abs.LessThan(decimal.NewFromInt(int64(g.cfg.TargetMin))) ||
		abs.GreaterThan(decimal.NewFromInt(int64(g.cfg.TargetMax))) {
		return nil
	}

	expression := s
	if v.IsNegative() {
		expression = "-(" + s + ")"
	}
	sol := puzzle.Solution{
		Seed:            g.seed,
		Target:          int(abs.IntPart()),
		Expression:      expression,
		Complexity:      len(expression),
		UniqueOperators: expr.UniqueOperators(expression),
	}

	if existing, ok := g.solutions[sol.Target]; ok && existing.Complexity <= sol.Complexity {
		return nil
	}
	g.solutions[sol.Target] = sol
	g.duplicateStreak = 0
	g.adaptWeights(sol.Expression)
	return &sol
}

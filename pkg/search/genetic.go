package search

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
	"github.com/HamburgJ/four-nines-game/pkg/leaf"
	"github.com/HamburgJ/four-nines-game/pkg/puzzle"
)

func init() {
	Register("genetic", func() Strategy { return &GeneticStrategy{} })
}

// injectionInterval is how often (in generations) the lowest-ranked
// individuals are replaced with fresh random trees.
const injectionInterval = 10

// injectionCount is how many individuals each injection replaces.
const injectionCount = 5

// GeneticStrategy evolves a persistent population of trees between
// calls; the population lives on the generator so successive budgets
// keep refining it.
type GeneticStrategy struct{}

func (s *GeneticStrategy) Name() string { return "genetic" }

func (s *GeneticStrategy) Search(g *Generator, maxAttempts int) *puzzle.Solution {
	if len(g.population) == 0 {
		g.population = make([]expr.Node, g.cfg.PopulationSize)
		for i := range g.population {
			g.population[i] = g.buildRandom(g.leaves.Random(g.rng), 0)
		}
	}

	generations := maxAttempts / g.cfg.PopulationSize
	for gen := 0; gen < generations; gen++ {
		g.evolvePopulation()

		for _, node := range g.population {
			sol := g.checkCandidate(node)
			if sol == nil {
				continue
			}
			// Keep the winner's genes in play for neighboring targets.
			g.population[0] = node.Clone()
			return sol
		}

		if gen%injectionInterval == 0 {
			for i := 0; i < injectionCount && i < len(g.population); i++ {
				g.population[len(g.population)-1-i] = g.buildRandom(g.leaves.Random(g.rng), 0)
			}
		}
	}
	return nil
}

// fitness scores a candidate: digit budget, integerness, and proximity
// to the target range (symmetric over sign). Failed evaluations score 0.
func (g *Generator) fitness(node expr.Node) float64 {
	v, err := node.Eval()
	if err != nil {
		return 0
	}
	s := node.String()
	minT := float64(g.cfg.TargetMin)
	maxT := float64(g.cfg.TargetMax)

	fit := 0.0
	digits := expr.CountDigit(s, g.seed)
	if digits == leaf.DigitBudget {
		fit += 100.0
	} else {
		fit -= math.Abs(float64(leaf.DigitBudget-digits)) * 20
	}

	rf, _ := v.Float64()
	if v.IsInteger() {
		fit += 50.0
		inRange := func(x float64) bool { return x >= minT && x <= maxT }
		if inRange(rf) || inRange(-rf) {
			fit += 200.0
		} else {
			posDist := math.Min(math.Abs(rf-minT), math.Abs(rf-maxT))
			negDist := math.Min(math.Abs(-rf-minT), math.Abs(-rf-maxT))
			fit += 100.0 / (1.0 + math.Min(posDist, negDist))
		}
	} else {
		frac, _ := v.Sub(v.Round(0)).Abs().Float64()
		if frac < 1 {
			fit += 25.0 / (1.0 + frac)
		}
	}

	if v.Abs().GreaterThan(decimal.New(1, 6)) {
		fit -= 50.0
	}
	return math.Max(0, fit)
}

// evolvePopulation produces the next generation: elites survive
// unmodified, the rest come from tournament-selected parents through
// crossover and mutation.
func (g *Generator) evolvePopulation() {
	n := len(g.population)
	fitnesses := make([]float64, n)
	for i, node := range g.population {
		fitnesses[i] = g.fitness(node)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(a, b int) bool {
		return fitnesses[indices[a]] > fitnesses[indices[b]]
	})

	next := make([]expr.Node, 0, n)
	for i := 0; i < g.cfg.EliteSize && i < n; i++ {
		next = append(next, g.population[indices[i]].Clone())
	}

	for len(next) < n {
		p1 := g.tournamentSelect(fitnesses)
		p2 := g.tournamentSelect(fitnesses)
		c1, c2 := g.crossover(p1, p2)
		g.mutate(c1)
		g.mutate(c2)
		next = append(next, c1)
		if len(next) < n {
			next = append(next, c2)
		}
	}
	g.population = next
}

// tournamentSelect returns the fittest of k randomly sampled
// individuals.
func (g *Generator) tournamentSelect(fitnesses []float64) expr.Node {
	bestIdx := g.rng.Intn(len(g.population))
	for i := 1; i < g.cfg.TournamentSize; i++ {
		idx := g.rng.Intn(len(g.population))
		if fitnesses[idx] > fitnesses[bestIdx] {
			bestIdx = idx
		}
	}
	return g.population[bestIdx]
}

// crossover clones both parents and, with the configured probability,
// swaps clones of one non-root subtree from each. Subtrees are
// addressed by structural path; the parents are never touched.
func (g *Generator) crossover(a, b expr.Node) (expr.Node, expr.Node) {
	c1 := a.Clone()
	c2 := b.Clone()
	if g.rng.Float64() >= g.cfg.CrossoverRate {
		return c1, c2
	}

	paths1 := SubtreePaths(c1)
	paths2 := SubtreePaths(c2)
	if len(paths1) == 0 || len(paths2) == 0 {
		return c1, c2
	}
	p1 := paths1[g.rng.Intn(len(paths1))]
	p2 := paths2[g.rng.Intn(len(paths2))]

	sub1 := NodeAt(c1, p1).Clone()
	sub2 := NodeAt(c2, p2).Clone()
	ReplaceAt(c1, p1, sub2)
	ReplaceAt(c2, p2, sub1)
	return c1, c2
}

// mutate applies an in-place operator mutation with the configured
// probability: either swap the operator at this node for another of the
// same arity, or recurse into the children.
func (g *Generator) mutate(node expr.Node) {
	if g.rng.Float64() >= g.cfg.MutationRate {
		return
	}
	switch n := node.(type) {
	case *expr.BinaryNode:
		if g.rng.Float64() < 0.5 {
			n.Op = g.randomBinaryOp()
		} else {
			g.mutate(n.Left)
			g.mutate(n.Right)
		}
	case *expr.UnaryNode:
		if g.rng.Float64() < 0.5 {
			n.Op = g.randomUnaryOp()
		} else {
			g.mutate(n.Operand)
		}
	}
}

package search

import (
	"github.com/shopspring/decimal"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
	"github.com/HamburgJ/four-nines-game/pkg/leaf"
)

// terminateProb ends recursive construction early so short expressions
// stay reachable.
const terminateProb = 0.1

// softValueCap is the construction-time bound on intermediate values;
// candidates beyond it get one retry with a lower-risk operator before
// the guaranteed-safe fallback. The evaluator's own 1e20 bound still
// applies at acceptance time.
var softValueCap = decimal.New(1, 10) // 1e10

// buildRandom constructs a random tree over the literal sequence. It
// always returns a tree; construction failures degrade to simpler
// shapes rather than propagating.
func (g *Generator) buildRandom(lits leaf.Combination, depth int) expr.Node {
	if len(lits) == 1 ||
		(g.cfg.MaxDepth > 0 && depth >= g.cfg.MaxDepth) ||
		g.rng.Float64() < terminateProb {
		return &expr.NumberNode{Value: lits[0]}
	}

	useBinary := len(lits) >= 2 && g.rng.Float64() < g.cfg.BinaryOpProb
	if node, ok := g.tryBuild(lits, useBinary, depth); ok {
		return node
	}

	// Guaranteed-safe fallback: add or subtract an even split.
	if len(lits) >= 2 {
		mid := len(lits) / 2
		op := expr.OpAdd
		if g.rng.Intn(2) == 1 {
			op = expr.OpSub
		}
		return &expr.BinaryNode{
			Op:    op,
			Left:  g.buildRandom(lits[:mid], depth+1),
			Right: g.buildRandom(lits[mid:], depth+1),
		}
	}
	return &expr.NumberNode{Value: lits[0]}
}

// tryBuild attempts one randomized construction, retrying oversized
// ^ and * results once with a lower-risk operator.
func (g *Generator) tryBuild(lits leaf.Combination, useBinary bool, depth int) (expr.Node, bool) {
	if useBinary {
		op := g.randomBinaryOp()
		split := 1 + g.rng.Intn(len(lits)-1)
		left := g.buildRandom(lits[:split], depth+1)
		right := g.buildRandom(lits[split:], depth+1)

		node := &expr.BinaryNode{Op: op, Left: left, Right: right}
		v, err := node.Eval()
		if err == nil && v.Abs().LessThanOrEqual(softValueCap) {
			return node, true
		}
		if op == expr.OpPow || op == expr.OpMul {
			lowRisk := []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpDiv}
			retry := &expr.BinaryNode{Op: lowRisk[g.rng.Intn(len(lowRisk))], Left: left, Right: right}
			if v, err := retry.Eval(); err == nil && v.Abs().LessThanOrEqual(softValueCap) {
				return retry, true
			}
		}
		return nil, false
	}

	node := &expr.UnaryNode{Op: g.randomUnaryOp(), Operand: g.buildRandom(lits, depth+1)}
	v, err := node.Eval()
	if err != nil || v.Abs().GreaterThan(softValueCap) {
		return nil, false
	}
	return node, true
}

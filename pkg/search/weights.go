package search

import (
	"strings"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
)

const (
	weightLearningRate = 0.1
	weightFloor        = 0.1
	weightCeil         = 5.0
)

// randomUnaryOp picks a unary operator proportionally to its weight.
func (g *Generator) randomUnaryOp() expr.UnaryOp {
	ops := expr.UnaryOps()
	total := 0.0
	for _, op := range ops {
		total += g.unaryWeights[op]
	}
	r := g.rng.Float64() * total
	for _, op := range ops {
		r -= g.unaryWeights[op]
		if r < 0 {
			return op
		}
	}
	return ops[len(ops)-1]
}

// randomBinaryOp picks a binary operator proportionally to its weight.
func (g *Generator) randomBinaryOp() expr.BinaryOp {
	ops := expr.BinaryOps()
	total := 0.0
	for _, op := range ops {
		total += g.binaryWeights[op]
	}
	r := g.rng.Float64() * total
	for _, op := range ops {
		r -= g.binaryWeights[op]
		if r < 0 {
			return op
		}
	}
	return ops[len(ops)-1]
}

// adaptWeights nudges operator selection toward the operators present
// in an accepted expression: present ops gain, absent ops decay, all
// clamped to [0.1, 5.0].
func (g *Generator) adaptWeights(expression string) {
	for _, op := range expr.UnaryOps() {
		g.bumpUnary(op, unaryPresent(expression, op))
	}
	for _, op := range expr.BinaryOps() {
		g.bumpBinary(op, strings.Contains(expression, " "+op.Symbol()+" "))
	}
}

func (g *Generator) bumpUnary(op expr.UnaryOp, present bool) {
	g.unaryWeights[op] = bump(g.unaryWeights[op], present)
}

func (g *Generator) bumpBinary(op expr.BinaryOp, present bool) {
	g.binaryWeights[op] = bump(g.binaryWeights[op], present)
}

func bump(w float64, present bool) float64 {
	if present {
		w *= 1 + weightLearningRate
	} else {
		w *= 1 - weightLearningRate*0.5
	}
	if w < weightFloor {
		return weightFloor
	}
	if w > weightCeil {
		return weightCeil
	}
	return w
}

// unaryPresent detects a unary operator in a canonical string. Negation
// is any "-" that is not the space-padded binary subtraction.
func unaryPresent(s string, op expr.UnaryOp) bool {
	switch op {
	case expr.OpNeg:
		return strings.Contains(strings.ReplaceAll(s, " - ", " "), "-")
	default:
		return strings.Contains(s, op.Symbol())
	}
}

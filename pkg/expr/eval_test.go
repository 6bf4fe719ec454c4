package expr

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, n Node) decimal.Decimal {
	t.Helper()
	v, err := n.Eval()
	require.NoError(t, err)
	return v
}

func failKind(t *testing.T, n Node) FailureKind {
	t.Helper()
	_, err := n.Eval()
	require.Error(t, err)
	var ee *EvalError
	require.True(t, errors.As(err, &ee), "expected EvalError, got %v", err)
	return ee.Kind
}

func TestEvalArithmetic(t *testing.T) {
	add := &BinaryNode{Op: OpAdd, Left: Num("0.1"), Right: Num("0.2")}
	assert.Equal(t, "0.3", mustEval(t, add).String())

	sub := &BinaryNode{Op: OpSub, Left: Num("5"), Right: Num("8")}
	assert.Equal(t, "-3", mustEval(t, sub).String())

	mul := &BinaryNode{Op: OpMul, Left: Num("1.5"), Right: Num("4")}
	assert.Equal(t, "6", mustEval(t, mul).String())
}

func TestEvalDivision(t *testing.T) {
	exact := &BinaryNode{Op: OpDiv, Left: Num("10"), Right: Num("4")}
	assert.Equal(t, "2.5", mustEval(t, exact).String())

	repeating := &BinaryNode{Op: OpDiv, Left: Num("1"), Right: Num("3")}
	assert.Equal(t, "0.3333333333", mustEval(t, repeating).String())

	concat := &BinaryNode{Op: OpDiv, Left: Num("55"), Right: Num("5.5")}
	v := mustEval(t, concat)
	assert.True(t, v.IsInteger())
	assert.Equal(t, "10", v.String())

	byZero := &BinaryNode{Op: OpDiv, Left: Num("1"), Right: Num("0")}
	assert.Equal(t, FailZeroDivisor, failKind(t, byZero))
}

func TestEvalSqrt(t *testing.T) {
	assert.Equal(t, "4", mustEval(t, &UnaryNode{Op: OpSqrt, Operand: Num("16")}).String())
	assert.Equal(t, "1.414213562", mustEval(t, &UnaryNode{Op: OpSqrt, Operand: Num("2")}).String())

	// Fixed points return without computing.
	assert.Equal(t, "0", mustEval(t, &UnaryNode{Op: OpSqrt, Operand: Num("0")}).String())
	assert.Equal(t, "1", mustEval(t, &UnaryNode{Op: OpSqrt, Operand: Num("1")}).String())

	neg := &UnaryNode{Op: OpSqrt, Operand: Num("-4")}
	assert.Equal(t, FailDomain, failKind(t, neg))
}

func TestEvalFactorial(t *testing.T) {
	assert.Equal(t, "120", mustEval(t, &UnaryNode{Op: OpFactorial, Operand: Num("5")}).String())
	assert.Equal(t, "1", mustEval(t, &UnaryNode{Op: OpFactorial, Operand: Num("0")}).String())
	assert.Equal(t, "1", mustEval(t, &UnaryNode{Op: OpFactorial, Operand: Num("1")}).String())
	assert.Equal(t, "2432902008176640000",
		mustEval(t, &UnaryNode{Op: OpFactorial, Operand: Num("20")}).String())

	assert.Equal(t, FailDomain, failKind(t, &UnaryNode{Op: OpFactorial, Operand: Num("2.5")}))
	assert.Equal(t, FailDomain, failKind(t, &UnaryNode{Op: OpFactorial, Operand: Num("-3")}))
	assert.Equal(t, FailRange, failKind(t, &UnaryNode{Op: OpFactorial, Operand: Num("21")}))
}

func TestEvalPow(t *testing.T) {
	assert.Equal(t, "1024", mustEval(t, &BinaryNode{Op: OpPow, Left: Num("2"), Right: Num("10")}).String())
	assert.Equal(t, "-8", mustEval(t, &BinaryNode{Op: OpPow, Left: Num("-2"), Right: Num("3")}).String())
	assert.Equal(t, "0.25", mustEval(t, &BinaryNode{Op: OpPow, Left: Num("2"), Right: Num("-2")}).String())
	assert.Equal(t, "3", mustEval(t, &BinaryNode{Op: OpPow, Left: Num("9"), Right: Num("0.5")}).String())

	assert.Equal(t, FailRange, failKind(t, &BinaryNode{Op: OpPow, Left: Num("2"), Right: Num("21")}))
	assert.Equal(t, FailRange, failKind(t, &BinaryNode{Op: OpPow, Left: Num("101"), Right: Num("2")}))
	assert.Equal(t, FailRange, failKind(t, &BinaryNode{Op: OpPow, Left: Num("0"), Right: Num("-1")}))
	assert.Equal(t, FailDomain, failKind(t, &BinaryNode{Op: OpPow, Left: Num("-2"), Right: Num("0.5")}))
}

func TestEvalPowRejectsLargeNegativeExponents(t *testing.T) {
	// The exponent bound is symmetric; a huge negative integer exponent
	// must fail immediately instead of multiplying |e| times.
	assert.Equal(t, FailRange, failKind(t, &BinaryNode{Op: OpPow, Left: Num("2"), Right: Num("-21")}))
	assert.Equal(t, FailRange, failKind(t, &BinaryNode{Op: OpPow, Left: Num("2"), Right: Num("-10000000")}))

	// (5 ^ -((5 ^ (5 + 5)))): the exponent evaluates to -9765625.
	n := &BinaryNode{
		Op:   OpPow,
		Left: Num("5"),
		Right: &UnaryNode{Op: OpNeg, Operand: &BinaryNode{
			Op:    OpPow,
			Left:  Num("5"),
			Right: &BinaryNode{Op: OpAdd, Left: Num("5"), Right: Num("5")},
		}},
	}
	assert.Equal(t, FailRange, failKind(t, n))
}

func TestEvalPowOverflowInsideLoop(t *testing.T) {
	// Within the exponent and base limits the exact product can still
	// pass 1e20; the loop fails rather than growing further.
	assert.Equal(t, FailOverflow, failKind(t, &BinaryNode{Op: OpPow, Left: Num("100"), Right: Num("20")}))
	assert.Equal(t, FailOverflow, failKind(t, &BinaryNode{Op: OpPow, Left: Num("100"), Right: Num("-20")}))
}

func TestEvalMod(t *testing.T) {
	assert.Equal(t, "1", mustEval(t, &BinaryNode{Op: OpMod, Left: Num("7"), Right: Num("3")}).String())

	assert.Equal(t, FailDomain, failKind(t, &BinaryNode{Op: OpMod, Left: Num("5.5"), Right: Num("2")}))
	assert.Equal(t, FailZeroDivisor, failKind(t, &BinaryNode{Op: OpMod, Left: Num("7"), Right: Num("0")}))
}

func TestEvalDoubleNegationRejected(t *testing.T) {
	for _, operand := range []Node{
		Num("5"),
		&BinaryNode{Op: OpAdd, Left: Num("1"), Right: Num("1")},
	} {
		n := &UnaryNode{Op: OpNeg, Operand: &UnaryNode{Op: OpNeg, Operand: operand}}
		assert.Equal(t, FailDoubleNegation, failKind(t, n))
	}

	// A negation separated by another node is fine.
	ok := &UnaryNode{Op: OpNeg, Operand: &UnaryNode{
		Op:      OpSqrt,
		Operand: &UnaryNode{Op: OpNeg, Operand: Num("-4")},
	}}
	assert.Equal(t, "-2", mustEval(t, ok).String())
}

func TestEvalMagnitudeBound(t *testing.T) {
	big := &BinaryNode{Op: OpMul, Left: Num("10000000000"), Right: Num("100000000000")}
	assert.Equal(t, FailOverflow, failKind(t, big))

	// Exactly at the bound passes.
	atBound := &BinaryNode{Op: OpMul, Left: Num("10000000000"), Right: Num("10000000000")}
	assert.Equal(t, "100000000000000000000", mustEval(t, atBound).String())
}

func TestEvalErrorShortCircuits(t *testing.T) {
	// A failing subtree fails the whole expression.
	n := &BinaryNode{
		Op:   OpAdd,
		Left: &BinaryNode{Op: OpDiv, Left: Num("1"), Right: Num("0")},
		Right: Num("5"),
	}
	_, err := n.Eval()
	assert.True(t, IsEvalError(err))
}

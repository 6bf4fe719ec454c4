package expr

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// workingPrec is the number of significant digits carried through
	// inexact operations (division, sqrt, non-integer powers).
	workingPrec = 10

	maxFactorial = 20
	maxExponent  = 20
	maxPowBase   = 100

	// divScale is the scale used before re-quantizing a quotient.
	divScale = 20
)

var (
	decZero = decimal.Zero
	decOne  = decimal.NewFromInt(1)
	// maxMagnitude bounds every intermediate and final value.
	maxMagnitude = decimal.New(1, 20) // 1e20
)

func (n *NumberNode) Eval() (decimal.Decimal, error) {
	return n.Value, nil
}

func (u *UnaryNode) Eval() (decimal.Decimal, error) {
	// Double negation is a structural rule, rejected before any
	// arithmetic happens.
	if u.Op == OpNeg {
		if inner, ok := u.Operand.(*UnaryNode); ok && inner.Op == OpNeg {
			return decZero, evalErr(FailDoubleNegation, "double negation")
		}
	}

	v, err := u.Operand.Eval()
	if err != nil {
		return decZero, err
	}

	switch u.Op {
	case OpSqrt:
		// Fixed points, returned without computing.
		if v.Equal(decZero) || v.Equal(decOne) {
			return v, nil
		}
		if v.IsNegative() {
			return decZero, evalErr(FailDomain, "square root of negative value %s", v)
		}
		f, _ := v.Float64()
		r := math.Sqrt(f)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return decZero, evalErr(FailDomain, "square root of %s is not finite", v)
		}
		return checkMagnitude(quantize(decimal.NewFromFloat(r)))

	case OpFactorial:
		// Fixed point at 1.
		if v.Equal(decOne) {
			return v, nil
		}
		if !v.IsInteger() {
			return decZero, evalErr(FailDomain, "factorial of non-integer %s", v)
		}
		if v.IsNegative() {
			return decZero, evalErr(FailDomain, "factorial of negative value %s", v)
		}
		if v.GreaterThan(decimal.NewFromInt(maxFactorial)) {
			return decZero, evalErr(FailRange, "factorial input %s exceeds %d", v, maxFactorial)
		}
		prod := int64(1)
		for i := int64(2); i <= v.IntPart(); i++ {
			prod *= i
		}
		return checkMagnitude(decimal.NewFromInt(prod))

	case OpNeg:
		return v.Neg(), nil
	}
	return decZero, evalErr(FailDomain, "unknown unary operator %d", u.Op)
}

func (b *BinaryNode) Eval() (decimal.Decimal, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return decZero, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return decZero, err
	}

	switch b.Op {
	case OpAdd:
		return checkMagnitude(l.Add(r))
	case OpSub:
		return checkMagnitude(l.Sub(r))
	case OpMul:
		return checkMagnitude(l.Mul(r))
	case OpDiv:
		if r.IsZero() {
			return decZero, evalErr(FailZeroDivisor, "division by zero")
		}
		return checkMagnitude(quantize(l.DivRound(r, divScale)))
	case OpPow:
		return evalPow(l, r)
	case OpMod:
		if r.IsZero() {
			return decZero, evalErr(FailZeroDivisor, "modulo by zero")
		}
		if !l.IsInteger() || !r.IsInteger() {
			return decZero, evalErr(FailDomain, "modulo requires integer operands")
		}
		return checkMagnitude(l.Mod(r))
	}
	return decZero, evalErr(FailDomain, "unknown binary operator %d", b.Op)
}

func evalPow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	if exp.Abs().GreaterThan(decimal.NewFromInt(maxExponent)) {
		return decZero, evalErr(FailRange, "exponent %s exceeds %d", exp, maxExponent)
	}
	if base.Abs().GreaterThan(decimal.NewFromInt(maxPowBase)) {
		return decZero, evalErr(FailRange, "base %s too large for exponentiation", base)
	}
	if base.IsNegative() && !exp.IsInteger() {
		return decZero, evalErr(FailDomain, "negative base %s with non-integer exponent %s", base, exp)
	}

	if exp.IsInteger() {
		e := exp.IntPart()
		neg := e < 0
		if neg {
			e = -e
		}
		// Repeated multiplication keeps the sign exact for negative
		// bases. The bound is checked every step so exact decimals
		// cannot grow without limit.
		result := decOne
		for i := int64(0); i < e; i++ {
			result = result.Mul(base)
			if result.Abs().GreaterThan(maxMagnitude) {
				return decZero, evalErr(FailOverflow, "value %s exceeds maximum allowed size", result)
			}
		}
		if neg {
			if result.IsZero() {
				return decZero, evalErr(FailRange, "zero base with negative exponent")
			}
			result = quantize(decOne.DivRound(result, divScale))
		}
		return checkMagnitude(quantize(result))
	}

	if base.IsZero() {
		return decZero, evalErr(FailRange, "zero base with fractional exponent")
	}
	bf, _ := base.Abs().Float64()
	ef, _ := exp.Float64()
	f := math.Exp(ef * math.Log(bf))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decZero, evalErr(FailRange, "exponentiation result out of range")
	}
	result := quantize(decimal.NewFromFloat(f))
	if base.IsNegative() && exp.IntPart()%2 == 1 {
		result = result.Neg()
	}
	return checkMagnitude(result)
}

// checkMagnitude enforces the 1e20 bound on every computed value.
func checkMagnitude(v decimal.Decimal) (decimal.Decimal, error) {
	if v.Abs().GreaterThan(maxMagnitude) {
		return decZero, evalErr(FailOverflow, "value %s exceeds maximum allowed size", v)
	}
	return v, nil
}

// quantize rounds v to the working precision of 10 significant digits.
func quantize(v decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return v
	}
	f, _ := v.Abs().Float64()
	lead := int32(math.Floor(math.Log10(f)))
	return v.Round(workingPrec - 1 - lead)
}

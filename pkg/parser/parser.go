// Package parser rebuilds expression trees from their canonical
// strings, exactly inverting the renderer in pkg/expr, and derives
// structural hints from the result.
package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
)

// ParseError reports a malformed canonical string. Batch callers log it
// per expression and keep going.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "parse " + `"` + e.Input + `"` + ": " + e.Reason
}

func parseErr(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}

// Parse converts a canonical string back into an expression tree.
func Parse(input string) (expr.Node, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, parseErr(input, "empty expression")
	}
	return parse(s)
}

func parse(s string) (expr.Node, error) {
	s, err := stripOuterParens(s)
	if err != nil {
		return nil, err
	}

	// sqrt(...) spanning the whole string.
	if strings.HasPrefix(s, "sqrt(") {
		if end := matchParen(s, 4); end == len(s)-1 {
			inner := strings.TrimSpace(s[5:end])
			if inner == "" {
				return nil, parseErr(s, "empty sqrt()")
			}
			operand, err := parse(inner)
			if err != nil {
				return nil, err
			}
			return &expr.UnaryNode{Op: expr.OpSqrt, Operand: operand}, nil
		}
	}

	// Trailing factorial. The renderer always parenthesizes factorials,
	// so a root-level trailing '!' can only belong to the root.
	if strings.HasSuffix(s, "!") {
		inner := strings.TrimSpace(s[:len(s)-1])
		if inner == "" {
			return nil, parseErr(s, "empty factorial")
		}
		operand, err := parse(inner)
		if err != nil {
			return nil, err
		}
		return &expr.UnaryNode{Op: expr.OpFactorial, Operand: operand}, nil
	}

	// A leading minus directly on a literal is a negative number.
	if len(s) >= 2 && s[0] == '-' && (isDigit(s[1]) || s[1] == '.') {
		if d, err := decimal.NewFromString(s); err == nil {
			return &expr.NumberNode{Value: d}, nil
		}
	}

	// Root-level binary operator, lowest precedence band first,
	// scanned right to left at paren depth 0.
	if op, pos, ok := findRootOperator(s); ok {
		left := strings.TrimSpace(s[:pos])
		right := strings.TrimSpace(s[pos+1:])
		if left == "" || right == "" {
			return nil, parseErr(s, "missing operand for operator "+op.Symbol())
		}
		l, err := parse(left)
		if err != nil {
			return nil, err
		}
		r, err := parse(right)
		if err != nil {
			return nil, err
		}
		return &expr.BinaryNode{Op: op, Left: l, Right: r}, nil
	}

	// No binary operator: a remaining leading minus is unary negation.
	if s[0] == '-' {
		inner := strings.TrimSpace(s[1:])
		if inner == "" {
			return nil, parseErr(s, "empty negation")
		}
		operand, err := parse(inner)
		if err != nil {
			return nil, err
		}
		return &expr.UnaryNode{Op: expr.OpNeg, Operand: operand}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, parseErr(s, "invalid number")
	}
	return &expr.NumberNode{Value: d}, nil
}

// stripOuterParens repeatedly removes balanced outer parentheses that
// wrap the whole string.
func stripOuterParens(s string) (string, error) {
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		if matchParen(s, 0) != len(s)-1 {
			break
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return "", parseErr(s, "empty parentheses")
		}
		s = inner
	}
	return s, nil
}

// matchParen returns the index of the ')' matching the '(' at open, or
// -1 if unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// precedenceBands lists binary operators lowest band first; the first
// band with a root-level hit owns the split.
var precedenceBands = [][]byte{
	{'+', '-'},
	{'*', '/', '%'},
	{'^'},
}

var binaryBySymbol = map[byte]expr.BinaryOp{
	'+': expr.OpAdd,
	'-': expr.OpSub,
	'*': expr.OpMul,
	'/': expr.OpDiv,
	'^': expr.OpPow,
	'%': expr.OpMod,
}

// findRootOperator locates the split point: the rightmost depth-0
// occurrence in the lowest-precedence band present. A '+' or '-' whose
// preceding non-space character is an operator or '(' (or that starts
// the string) is a unary sign and is skipped.
func findRootOperator(s string) (expr.BinaryOp, int, bool) {
	for _, band := range precedenceBands {
		depth := 0
		for i := len(s) - 1; i >= 0; i-- {
			c := s[i]
			switch c {
			case ')':
				depth++
				continue
			case '(':
				depth--
				continue
			}
			if depth != 0 || !inBand(band, c) {
				continue
			}
			if (c == '-' || c == '+') && isUnarySign(s, i) {
				continue
			}
			return binaryBySymbol[c], i, true
		}
	}
	return 0, 0, false
}

func inBand(band []byte, c byte) bool {
	for _, b := range band {
		if b == c {
			return true
		}
	}
	return false
}

func isUnarySign(s string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if s[j] == ' ' {
			continue
		}
		return strings.IndexByte("(+-*/^%", s[j]) >= 0
	}
	return true // string start
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

package expr

import (
	"strconv"
	"strings"
)

func (n *NumberNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int  { return 1 + u.Operand.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (n *NumberNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int  { return 1 + u.Operand.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// CountDigit counts occurrences of the digit in a canonical string.
// Concatenated literals contribute once per character ("11" counts 2),
// which is the authoritative digit-usage rule for accepting solutions.
func CountDigit(s string, digit int) int {
	return strings.Count(s, strconv.Itoa(digit))
}

// operatorTokens are the textual forms an operator can take in a
// canonical string. Negation shows up as "-", same as subtraction.
var operatorTokens = []string{"!", "sqrt", "+", "-", "*", "/", "^", "%"}

// UniqueOperators counts the distinct operator tokens present in a
// canonical string.
func UniqueOperators(s string) int {
	n := 0
	for _, tok := range operatorTokens {
		if strings.Contains(s, tok) {
			n++
		}
	}
	return n
}

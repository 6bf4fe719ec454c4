package expr

import "fmt"

// String methods render the canonical form: fully parenthesized infix
// with no precedence-based elision. The parser inverts exactly this.

func (n *NumberNode) String() string {
	return n.Value.String()
}

func (u *UnaryNode) String() string {
	operand := u.Operand.String()
	switch u.Op {
	case OpFactorial:
		return fmt.Sprintf("(%s!)", operand)
	case OpNeg:
		// Bare literals skip the extra parentheses.
		if _, ok := u.Operand.(*NumberNode); ok {
			return "-" + operand
		}
		return fmt.Sprintf("-(%s)", operand)
	default:
		return fmt.Sprintf("sqrt(%s)", operand)
	}
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Symbol(), b.Right.String())
}

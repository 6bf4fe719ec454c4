package expr

import "github.com/shopspring/decimal"

// Node is the interface for all expression tree nodes.
type Node interface {
	Eval() (decimal.Decimal, error)
	String() string
	Clone() Node
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpFactorial UnaryOp = iota
	OpSqrt
	OpNeg
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
)

var unaryOpSymbols = map[UnaryOp]string{
	OpFactorial: "!",
	OpSqrt:      "sqrt",
	OpNeg:       "-",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
	OpMod: "%",
}

// Symbol returns the operator's textual form ("-" for negation).
func (op UnaryOp) Symbol() string { return unaryOpSymbols[op] }

// Symbol returns the operator's infix symbol.
func (op BinaryOp) Symbol() string { return binaryOpSymbols[op] }

// UnaryOps lists all unary operators in a stable order.
func UnaryOps() []UnaryOp { return []UnaryOp{OpFactorial, OpSqrt, OpNeg} }

// BinaryOps lists all binary operators in a stable order.
func BinaryOps() []BinaryOp {
	return []BinaryOp{OpAdd, OpSub, OpMul, OpDiv, OpPow, OpMod}
}

// NumberNode is a leaf holding a decimal literal.
type NumberNode struct {
	Value decimal.Decimal
}

// UnaryNode applies a unary operation to an operand it owns.
type UnaryNode struct {
	Op      UnaryOp
	Operand Node
}

// BinaryNode applies a binary operation to two children it owns.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// Num is a convenience constructor for literal leaves.
func Num(s string) *NumberNode {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("expr: bad literal " + s)
	}
	return &NumberNode{Value: d}
}

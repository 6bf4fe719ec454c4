package search

import "github.com/HamburgJ/four-nines-game/pkg/expr"

// Step addresses one child slot of a node.
type Step int

const (
	StepLeft Step = iota
	StepRight
	StepOperand
)

// Path is a sequence of steps from the root to a subtree. Crossover
// works on paths computed by traversal, so trees never carry parent
// pointers.
type Path []Step

// SubtreePaths returns the path of every non-root subtree, in preorder.
func SubtreePaths(root expr.Node) []Path {
	var out []Path
	var walk func(n expr.Node, p Path)
	walk = func(n expr.Node, p Path) {
		if len(p) > 0 {
			cp := make(Path, len(p))
			copy(cp, p)
			out = append(out, cp)
		}
		switch n := n.(type) {
		case *expr.UnaryNode:
			walk(n.Operand, append(p, StepOperand))
		case *expr.BinaryNode:
			walk(n.Left, append(p, StepLeft))
			walk(n.Right, append(p, StepRight))
		}
	}
	walk(root, nil)
	return out
}

// NodeAt returns the subtree at path. Paths come from SubtreePaths on
// the same tree shape, so a mismatch is a programming error.
func NodeAt(root expr.Node, path Path) expr.Node {
	n := root
	for _, step := range path {
		switch cur := n.(type) {
		case *expr.UnaryNode:
			n = cur.Operand
		case *expr.BinaryNode:
			if step == StepRight {
				n = cur.Right
			} else {
				n = cur.Left
			}
		default:
			return n
		}
	}
	return n
}

// ReplaceAt rebuilds the child link at path to point at repl. The root
// itself is never replaced; paths are non-empty by construction.
func ReplaceAt(root expr.Node, path Path, repl expr.Node) {
	if len(path) == 0 {
		return
	}
	parent := NodeAt(root, path[:len(path)-1])
	switch p := parent.(type) {
	case *expr.UnaryNode:
		p.Operand = repl
	case *expr.BinaryNode:
		if path[len(path)-1] == StepRight {
			p.Right = repl
		} else {
			p.Left = repl
		}
	}
}

package parser

import (
	"sort"

	"github.com/HamburgJ/four-nines-game/pkg/expr"
)

// Hints are the structural facts derivable from a persisted expression
// without the original tree: which literals appear, which operators,
// and the non-trivial subexpressions ranked shortest first.
type Hints struct {
	LeafValues []string `json:"leaf_values"`
	Operators  []string `json:"operators"`
	Subtrees   []string `json:"subtrees"`
}

// minSubtreeLen filters out trivial subexpressions like "(1)".
const minSubtreeLen = 4

// Extract re-parses a canonical string and derives its hints.
func Extract(expression string) (Hints, error) {
	root, err := Parse(expression)
	if err != nil {
		return Hints{}, err
	}
	return Hints{
		LeafValues: leafValues(root),
		Operators:  operators(root),
		Subtrees:   subtrees(root, expression),
	}, nil
}

// leafValues returns the distinct literal strings, sorted.
func leafValues(root expr.Node) []string {
	seen := map[string]struct{}{}
	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		switch n := n.(type) {
		case *expr.NumberNode:
			seen[n.String()] = struct{}{}
		case *expr.UnaryNode:
			walk(n.Operand)
		case *expr.BinaryNode:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root)
	return sortedKeys(seen)
}

// operators returns the distinct operator symbols, sorted; negation
// reports as "-".
func operators(root expr.Node) []string {
	seen := map[string]struct{}{}
	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		switch n := n.(type) {
		case *expr.UnaryNode:
			seen[n.Op.Symbol()] = struct{}{}
			walk(n.Operand)
		case *expr.BinaryNode:
			seen[n.Op.Symbol()] = struct{}{}
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root)
	return sortedKeys(seen)
}

// subtrees returns every distinct non-trivial subexpression except the
// full expression itself, ordered by increasing length then lexically
// for determinism.
func subtrees(root expr.Node, full string) []string {
	seen := map[string]struct{}{}
	rendered := root.String()
	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		switch n := n.(type) {
		case *expr.UnaryNode:
			s := n.String()
			if len(s) >= minSubtreeLen && s != full && s != rendered {
				seen[s] = struct{}{}
			}
			walk(n.Operand)
		case *expr.BinaryNode:
			s := n.String()
			if len(s) >= minSubtreeLen && s != full && s != rendered {
				seen[s] = struct{}{}
			}
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root)

	out := sortedKeys(seen)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) < len(out[j])
	})
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

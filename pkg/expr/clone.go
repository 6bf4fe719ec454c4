package expr

func (n *NumberNode) Clone() Node {
	return &NumberNode{Value: n.Value}
}

func (u *UnaryNode) Clone() Node {
	return &UnaryNode{
		Op:      u.Op,
		Operand: u.Operand.Clone(),
	}
}

func (b *BinaryNode) Clone() Node {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

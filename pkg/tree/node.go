// Package tree answers structural questions about binary trees of ints:
// height, balance factor, perfectness and max-heap validity.
//
// A tree is a *Node and the nil *Node is the empty tree, so every method
// may be called on nil. None of the queries modify the tree.
package tree

// Node is a binary tree node. Each node owns its children exclusively.
type Node struct {
	Value       int
	Left, Right *Node
}

func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return max(n.Left.Height(), n.Right.Height()) + 1
}

// BalanceFactor is positive when the left subtree is taller and negative
// when the right one is.
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.Left.Height() - n.Right.Height()
}

func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return n.Left.Size() + n.Right.Size() + 1
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

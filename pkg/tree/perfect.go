package tree

// IsPerfect reports whether every internal node has two children and every
// leaf sits at the same depth. The empty tree is not perfect.
func (n *Node) IsPerfect() bool {
	if n == nil {
		return false
	}
	return n.perfectAt(n.Height(), 0)
}

// perfectAt treats a nil subtree as perfect; only the root may not be nil.
func (n *Node) perfectAt(height, depth int) bool {
	if n == nil {
		return true
	}
	if n.isLeaf() {
		return depth+1 == height
	}
	if n.Left == nil || n.Right == nil {
		return false
	}
	return n.Left.perfectAt(height, depth+1) && n.Right.perfectAt(height, depth+1)
}

// IsMaxHeap reports whether the root is at least as large as its children
// and the tree is perfect. Ordering is only checked at the root.
func (n *Node) IsMaxHeap() bool {
	if n == nil {
		return false
	}
	if n.Left != nil && n.Left.Value > n.Value {
		return false
	}
	if n.Right != nil && n.Right.Value > n.Value {
		return false
	}
	return n.IsPerfect()
}

package tree

type visit struct {
	id    NodeID
	depth int
}

// walk calls fn for every node under root in pre-order with its depth.
// Returning false from fn stops the walk.
func (a *Arena) walk(root NodeID, fn func(id NodeID, depth int) bool) {
	if !a.valid(root) {
		return
	}
	stack := []visit{{id: root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(v.id, v.depth) {
			return
		}
		e := a.nodes[v.id]
		if e.right != Nil {
			stack = append(stack, visit{id: e.right, depth: v.depth + 1})
		}
		if e.left != Nil {
			stack = append(stack, visit{id: e.left, depth: v.depth + 1})
		}
	}
}

// Height is the number of nodes on the longest path from id down to a leaf.
func (a *Arena) Height(id NodeID) int {
	h := 0
	a.walk(id, func(_ NodeID, depth int) bool {
		h = max(h, depth+1)
		return true
	})
	return h
}

func (a *Arena) BalanceFactor(id NodeID) int {
	if !a.valid(id) {
		return 0
	}
	e := a.nodes[id]
	return a.Height(e.left) - a.Height(e.right)
}

func (a *Arena) Size(id NodeID) int {
	n := 0
	a.walk(id, func(NodeID, int) bool {
		n++
		return true
	})
	return n
}

// IsPerfect follows Node.IsPerfect: an absent root is not perfect.
func (a *Arena) IsPerfect(id NodeID) bool {
	if !a.valid(id) {
		return false
	}
	height := a.Height(id)
	perfect := true
	a.walk(id, func(id NodeID, depth int) bool {
		e := a.nodes[id]
		switch {
		case e.left == Nil && e.right == Nil:
			perfect = depth+1 == height
		case e.left == Nil || e.right == Nil:
			perfect = false
		}
		return perfect
	})
	return perfect
}

func (a *Arena) IsMaxHeap(id NodeID) bool {
	if !a.valid(id) {
		return false
	}
	e := a.nodes[id]
	if e.left != Nil && a.nodes[e.left].value > e.value {
		return false
	}
	if e.right != Nil && a.nodes[e.right].value > e.value {
		return false
	}
	return a.IsPerfect(id)
}

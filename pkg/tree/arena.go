package tree

import (
	"errors"
	"fmt"
)

// NodeID addresses a node inside an Arena.
type NodeID int32

// Nil is the absent node.
const Nil NodeID = -1

var (
	ErrUnknownNode  = errors.New("unknown node")
	ErrAlreadyOwned = errors.New("node already has a parent")
)

type entry struct {
	value       int
	left, right NodeID
	owned       bool
}

// Arena holds trees as a flat slice of nodes linked by index. Its queries
// walk the tree with an explicit stack, so tree height is bounded by memory
// rather than by the goroutine stack.
type Arena struct {
	nodes []entry
}

func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]entry, 0, capacity)}
}

// Add links a new node above the given children. A child must already be in
// the arena and must not belong to another parent, so arenas only ever hold
// acyclic, unshared trees.
func (a *Arena) Add(value int, left, right NodeID) (NodeID, error) {
	if left != Nil && left == right {
		return Nil, fmt.Errorf("node %d: %w", right, ErrAlreadyOwned)
	}
	for _, child := range [2]NodeID{left, right} {
		if child == Nil {
			continue
		}
		if !a.valid(child) {
			return Nil, fmt.Errorf("node %d: %w", child, ErrUnknownNode)
		}
		if a.nodes[child].owned {
			return Nil, fmt.Errorf("node %d: %w", child, ErrAlreadyOwned)
		}
	}
	for _, child := range [2]NodeID{left, right} {
		if child != Nil {
			a.nodes[child].owned = true
		}
	}
	a.nodes = append(a.nodes, entry{value: value, left: left, right: right})
	return NodeID(len(a.nodes) - 1), nil
}

func (a *Arena) Len() int {
	return len(a.nodes)
}

func (a *Arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// Value returns the value stored at id, or 0 for an absent node.
func (a *Arena) Value(id NodeID) int {
	if !a.valid(id) {
		return 0
	}
	return a.nodes[id].value
}

func (a *Arena) Left(id NodeID) NodeID {
	if !a.valid(id) {
		return Nil
	}
	return a.nodes[id].left
}

func (a *Arena) Right(id NodeID) NodeID {
	if !a.valid(id) {
		return Nil
	}
	return a.nodes[id].right
}

// FromNode copies a pointer tree into a new arena and returns the root.
func FromNode(root *Node) (*Arena, NodeID) {
	a := NewArena(0)
	if root == nil {
		return a, Nil
	}
	type frame struct {
		n        *Node
		expanded bool
	}
	ids := make(map[*Node]NodeID)
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.expanded {
			top.expanded = true
			n := top.n
			if n.Right != nil {
				stack = append(stack, frame{n: n.Right})
			}
			if n.Left != nil {
				stack = append(stack, frame{n: n.Left})
			}
			continue
		}
		n := top.n
		stack = stack[:len(stack)-1]
		left, right := Nil, Nil
		if n.Left != nil {
			left = ids[n.Left]
		}
		if n.Right != nil {
			right = ids[n.Right]
		}
		// Children were appended by this loop and are unowned, so Add cannot fail.
		id, err := a.Add(n.Value, left, right)
		if err != nil {
			panic(err)
		}
		ids[n] = id
	}
	return a, ids[root]
}

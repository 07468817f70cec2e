package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(v int) *Node {
	return &Node{Value: v}
}

func branch(v int, left, right *Node) *Node {
	return &Node{Value: v, Left: left, Right: right}
}

// perfectTree builds a perfect tree of the given height whose values
// decrease with depth, so it is also a max-heap.
func perfectTree(height int) *Node {
	if height == 0 {
		return nil
	}
	return branch(height*10, perfectTree(height-1), perfectTree(height-1))
}

// skewed builds a left-leaning chain of the given length.
func skewed(length int) *Node {
	var root *Node
	for i := 0; i < length; i++ {
		root = &Node{Value: i, Left: root}
	}
	return root
}

func TestNode_Height(t *testing.T) {
	tests := []struct {
		name   string
		tree   *Node
		expect int
	}{
		{"nil", nil, 0},
		{"leaf", leaf(5), 1},
		{"left only", branch(10, leaf(5), nil), 2},
		{"right only", branch(10, nil, leaf(5)), 2},
		{"full", branch(10, leaf(5), leaf(3)), 2},
		{"uneven", branch(1, branch(2, branch(3, leaf(4), nil), nil), leaf(5)), 4},
		{"chain", skewed(50), 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.tree.Height())
		})
	}
}

func TestNode_HeightIsZeroOnlyForNil(t *testing.T) {
	for _, tr := range []*Node{leaf(0), branch(0, nil, leaf(0)), perfectTree(3)} {
		assert.Positive(t, tr.Height())
	}
	var empty *Node
	assert.Zero(t, empty.Height())
}

func TestNode_BalanceFactor(t *testing.T) {
	tests := []struct {
		name   string
		tree   *Node
		expect int
	}{
		{"nil", nil, 0},
		{"leaf", leaf(5), 0},
		{"left heavy", branch(10, branch(5, leaf(1), nil), nil), 2},
		{"right heavy", branch(10, nil, leaf(5)), -1},
		{"even", perfectTree(3), 0},
		{"mixed", branch(1, branch(2, leaf(3), leaf(4)), leaf(5)), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.tree.BalanceFactor())
			if tc.tree != nil {
				assert.Equal(t, tc.tree.Left.Height()-tc.tree.Right.Height(), tc.tree.BalanceFactor())
			}
		})
	}
}

func TestNode_Size(t *testing.T) {
	var empty *Node
	assert.Zero(t, empty.Size())
	assert.Equal(t, 1, leaf(1).Size())
	assert.Equal(t, 3, branch(10, leaf(5), leaf(3)).Size())
	assert.Equal(t, 20, skewed(20).Size())
}

func TestNode_SingleNode(t *testing.T) {
	n := leaf(5)
	assert.True(t, n.IsMaxHeap())
	assert.True(t, n.IsPerfect())
	assert.Equal(t, 1, n.Height())
	assert.Equal(t, 0, n.BalanceFactor())
}

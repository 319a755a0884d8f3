package avltree

import (
	"github.com/pkg/errors"
)

// Node is a tree node holding an immutable payload.
// Its children are owned by the node, parent is a back-reference kept in
// sync by the link setters.
type Node[T any] struct {
	data   T
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// newNode creates a detached node.
func newNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// Data returns the payload of the node.
func (n *Node[T]) Data() T {
	return n.data
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Child returns the child on the given side.
func (n *Node[T]) Child(dir Dir) *Node[T] {
	if dir == Left {
		return n.left
	}
	return n.right
}

// Parent returns the parent node, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Grandparent returns the parent of the parent, or nil.
func (n *Node[T]) Grandparent() *Node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// Sibling returns the other child of the parent, or nil.
func (n *Node[T]) Sibling() *Node[T] {
	if n.parent == nil {
		return nil
	}
	if n.parent.left == n {
		return n.parent.right
	}
	return n.parent.left
}

// Uncle returns the sibling of the parent, or nil.
func (n *Node[T]) Uncle() *Node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.Sibling()
}

// Depth returns the number of edges between the node and its root.
func (n *Node[T]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Min returns the leftmost node of the subtree.
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree.
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Size returns the number of nodes in the subtree, 0 for nil.
func (n *Node[T]) Size() int {
	size := 0
	n.eachLevel(func(level []*Node[T]) {
		size += len(level)
	})
	return size
}

// Height returns the number of edges on the longest downward path.
// A leaf has height 0, a nil node -1.
func (n *Node[T]) Height() int {
	height := -1
	n.eachLevel(func([]*Node[T]) {
		height++
	})
	return height
}

// Width returns the largest number of nodes on one level of the subtree.
func (n *Node[T]) Width() int {
	width := 0
	n.eachLevel(func(level []*Node[T]) {
		if len(level) > width {
			width = len(level)
		}
	})
	return width
}

// eachLevel walks the subtree breadth first and calls fn once per level.
func (n *Node[T]) eachLevel(fn func(level []*Node[T])) {
	if n == nil {
		return
	}
	level := []*Node[T]{n}
	for len(level) > 0 {
		fn(level)
		next := make([]*Node[T], 0, 2*len(level))
		for _, node := range level {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		level = next
	}
}

// setLeft links child as the left child of n.
func (n *Node[T]) setLeft(child *Node[T]) {
	n.setChild(Left, child)
}

// setRight links child as the right child of n.
func (n *Node[T]) setRight(child *Node[T]) {
	n.setChild(Right, child)
}

// setChild replaces the child on the given side.
// The old child loses its parent, the new one is taken out of its previous
// slot first so that no node is ever held by two parents.
func (n *Node[T]) setChild(dir Dir, child *Node[T]) {
	if child != nil {
		n.checkLink(child)
		child.detach()
	}
	slot := &n.left
	if dir == Right {
		slot = &n.right
	}
	if *slot != nil {
		(*slot).parent = nil
	}
	*slot = child
	if child != nil {
		child.parent = n
	}
}

// checkLink panics when linking child below n would create a cycle.
func (n *Node[T]) checkLink(child *Node[T]) {
	for p := n; p != nil; p = p.parent {
		if p == child {
			panic(errors.Wrapf(ErrInvalidLink, "%v can not be a child of %v", child.data, n.data))
		}
	}
}

// detach takes n out of its parent's child slot.
func (n *Node[T]) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if p.left == n {
		p.left = nil
	} else if p.right == n {
		p.right = nil
	}
	n.parent = nil
}

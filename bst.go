package avltree

// BSTree - unbalanced binary search tree with parent links.
type BSTree[T any] struct {
	root *Node[T]
	cmp  Comparator[T]
}

// NewBST returns an empty unbalanced tree ordered by cmp.
func NewBST[T any](cmp Comparator[T]) *BSTree[T] {
	if cmp == nil {
		panic("avltree: nil comparator")
	}
	return &BSTree[T]{root: nil, cmp: cmp}
}

// Root returns the root node, or nil for an empty tree.
func (t *BSTree[T]) Root() *Node[T] {
	return t.root
}

// Comparator returns the ordering of the tree.
func (t *BSTree[T]) Comparator() Comparator[T] {
	return t.cmp
}

// Size returns the number of nodes in the tree.
func (t *BSTree[T]) Size() int {
	return t.root.Size()
}

// Height returns the height of the tree, -1 when empty.
func (t *BSTree[T]) Height() int {
	return t.root.Height()
}

// Width returns the widest level of the tree.
func (t *BSTree[T]) Width() int {
	return t.root.Width()
}

// Min returns the node with the lowest key, or nil.
func (t *BSTree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node with the highest key, or nil.
func (t *BSTree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Find returns the node that compares equal to key, or nil if not found.
func (t *BSTree[T]) Find(key T) *Node[T] {
	return t.find(key, false)
}

// Contains reports whether a node equal to key is in the tree.
func (t *BSTree[T]) Contains(key T) bool {
	return t.find(key, false) != nil
}

// Insert returns the node equal to key, creating it when missing.
func (t *BSTree[T]) Insert(key T) *Node[T] {
	return t.find(key, true)
}

// find descends from the root towards key.
// With upsert a missing key is linked in where the descent ended.
func (t *BSTree[T]) find(key T, upsert bool) *Node[T] {
	if t.root == nil {
		if upsert {
			t.root = newNode(key)
		}
		return t.root
	}

	current := t.root
	for {
		dir, err := Direction(t.cmp(current.data, key))
		if err != nil {
			return current
		}
		next := current.Child(dir)
		if next == nil {
			if !upsert {
				return nil
			}
			node := newNode(key)
			current.setChild(dir, node)
			return node
		}
		current = next
	}
}

// Delete removes the node equal to key.
// The result carries the anchor from which a balancing pass should start.
func (t *BSTree[T]) Delete(key T) DeleteResult[T] {
	node := t.find(key, false)
	if node == nil {
		return DeleteResult[T]{}
	}

	left, right, parent := node.left, node.right, node.parent

	switch {
	case left == nil && right == nil:
		t.replace(node, nil)
		return DeleteResult[T]{Anchor: parent, Success: true}
	case left == nil:
		t.replace(node, right)
		return DeleteResult[T]{Anchor: right, Success: true}
	case right == nil:
		t.replace(node, left)
		return DeleteResult[T]{Anchor: left, Success: true}
	}

	successor := right.Min()
	anchor := successor
	if successor != right {
		// successor is a left child: its right subtree takes its place
		anchor = successor.parent
		anchor.setLeft(successor.right)
		successor.setRight(right)
	}
	successor.setLeft(left)
	t.replace(node, successor)

	return DeleteResult[T]{Anchor: anchor, Success: true}
}

// replace puts other (possibly nil) in the slot held by node.
// node is left without a parent.
func (t *BSTree[T]) replace(node, other *Node[T]) {
	if other != nil {
		other.detach()
	}
	parent := node.parent
	if parent == nil {
		t.root = other
		if other != nil {
			other.parent = nil
		}
		return
	}
	parent.setChild(mustChildDir(parent, node), other)
}

// Iterator returns a fresh in-order iterator over the tree.
func (t *BSTree[T]) Iterator() *Iterator[T] {
	return NewIterator(t.root)
}

// Each iterates the whole tree in order,
// and will call the given callback for each tree node.
func (t *BSTree[T]) Each(callback Callback[T]) {
	for it := t.Iterator(); it.Next(); {
		callback(it.Node())
	}
}

// ToSlice returns the payloads of the tree in order.
func (t *BSTree[T]) ToSlice() []T {
	values := make([]T, 0)
	t.Each(func(node *Node[T]) {
		values = append(values, node.data)
	})
	return values
}

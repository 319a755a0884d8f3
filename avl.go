package avltree

// Stats - rebalancing counters of an AVLTree.
type Stats struct {
	Rotations  int // single rotations, a double rotation counts twice
	Rebalances int // walk steps that rotated
}

// AVLTree - binary search tree kept height balanced by rotations.
// Structural changes are made by the wrapped BSTree, balance is restored
// afterwards by walking up from the lowest changed node.
type AVLTree[T any] struct {
	bst   BSTree[T]
	stats Stats
}

// NewWithComparator - creates an empty AVL tree ordered by cmp.
func NewWithComparator[T any](cmp Comparator[T]) *AVLTree[T] {
	return &AVLTree[T]{bst: *NewBST(cmp)}
}

// Balance returns height(left) - height(right) of the node.
func Balance[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Insert returns the node equal to key, creating it when missing.
func (t *AVLTree[T]) Insert(key T) *Node[T] {
	node := t.bst.Insert(key)
	t.rebalance(node.parent, true)
	return node
}

// Delete removes the node equal to key and rebalances the tree.
func (t *AVLTree[T]) Delete(key T) DeleteResult[T] {
	res := t.bst.Delete(key)
	if !res.Success || res.Anchor == nil {
		return res
	}
	t.rebalance(res.Anchor, false)
	return res
}

// rebalance walks from node up to the root rotating where the balance
// factor left [-1, 1]. With stop the walk ends at the first balanced node,
// which is enough after an insertion.
func (t *AVLTree[T]) rebalance(node *Node[T], stop bool) {
	for next := node; next != nil; {
		parent := next.parent
		balance := Balance(next)

		switch {
		case stop && balance == 0:
			return
		case balance < -1:
			if Balance(next.right) > 0 {
				t.rotate(next.right, Right)
			}
			t.rotate(next, Left)
			t.stats.Rebalances++
		case balance > 1:
			if Balance(next.left) < 0 {
				t.rotate(next.left, Left)
			}
			t.rotate(next, Right)
			t.stats.Rebalances++
		}

		next = parent
	}
}

// rotate moves the child opposite to dir into the place of node, node
// becomes its child on the dir side.
func (t *AVLTree[T]) rotate(node *Node[T], dir Dir) {
	pivot := node.Child(dir.Opposite())
	if pivot == nil {
		return
	}
	node.setChild(dir.Opposite(), nil)
	t.bst.replace(node, pivot)

	inner := pivot.Child(dir)
	pivot.setChild(dir, node)
	node.setChild(dir.Opposite(), inner)

	t.stats.Rotations++
}

// Stats returns the rebalancing counters accumulated so far.
func (t *AVLTree[T]) Stats() Stats {
	return t.stats
}

// Find returns the node that compares equal to key, or nil if not found.
func (t *AVLTree[T]) Find(key T) *Node[T] { return t.bst.Find(key) }

// Contains reports whether a node equal to key is in the tree.
func (t *AVLTree[T]) Contains(key T) bool { return t.bst.Contains(key) }

// Root returns the root node, or nil for an empty tree.
func (t *AVLTree[T]) Root() *Node[T] { return t.bst.Root() }

// Comparator returns the ordering of the tree.
func (t *AVLTree[T]) Comparator() Comparator[T] { return t.bst.Comparator() }

// Size returns the number of nodes in the tree.
func (t *AVLTree[T]) Size() int { return t.bst.Size() }

// Height returns the height of the tree, -1 when empty.
func (t *AVLTree[T]) Height() int { return t.bst.Height() }

// Width returns the widest level of the tree.
func (t *AVLTree[T]) Width() int { return t.bst.Width() }

// Min returns the node with the lowest key, or nil.
func (t *AVLTree[T]) Min() *Node[T] { return t.bst.Min() }

// Max returns the node with the highest key, or nil.
func (t *AVLTree[T]) Max() *Node[T] { return t.bst.Max() }

// Iterator returns a fresh in-order iterator over the tree.
func (t *AVLTree[T]) Iterator() *Iterator[T] { return t.bst.Iterator() }

// Each calls callback for every node in order.
func (t *AVLTree[T]) Each(callback Callback[T]) { t.bst.Each(callback) }

// ToSlice returns the payloads of the tree in order.
func (t *AVLTree[T]) ToSlice() []T { return t.bst.ToSlice() }

package avltree

// IsAVL reports whether every node of the tree has a balance factor in [-1, 1].
func IsAVL[T any](tree Tree[T]) bool {
	for it := tree.Iterator(); it.Next(); {
		if b := Balance(it.Node()); b < -1 || b > 1 {
			return false
		}
	}
	return true
}

// IsLinked checks the parent pointers for consistency.
func IsLinked[T any](tree Tree[T]) bool {
	root := tree.Root()
	if root == nil {
		return true
	}
	return root.parent == nil && checkUp(root)
}

// checkUp verifies every child of n points back at its holder.
func checkUp[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.left != nil && n.left.parent != n {
		return false
	}
	if n.right != nil && n.right.parent != n {
		return false
	}
	return checkUp(n.left) && checkUp(n.right)
}

// IsOrdered reports whether an in-order walk yields strictly increasing keys.
func IsOrdered[T any](tree Tree[T]) bool {
	cmp := tree.Comparator()
	var prev *Node[T]
	for it := tree.Iterator(); it.Next(); {
		node := it.Node()
		if prev != nil && cmp(prev.data, node.data) >= 0 {
			return false
		}
		prev = node
	}
	return true
}

package avltree

// Iterator walks a subtree in order using only the parent/child links.
// It traverses once; create a new one to start over.
// Changing the tree while an iterator is in use leaves its further output undefined.
//
// The usual usage of an Iterator is like this:
//
//	for it := tree.Iterator(); it.Next(); {
//		node := it.Node()
//		... do stuff with node, or break ...
//	}
type Iterator[T any] struct {
	root   *Node[T]
	cursor *Node[T]
	done   bool
}

// NewIterator returns an iterator over the subtree rooted at root.
func NewIterator[T any](root *Node[T]) *Iterator[T] {
	return &Iterator[T]{root: root}
}

// Next advances to the next node and reports whether there is one.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.root == nil {
		it.done = true
		return false
	}

	if it.cursor == nil || it.cursor.right != nil {
		from := it.root
		if it.cursor != nil {
			from = it.cursor.right
		}
		it.cursor = from.Min()
		return true
	}

	for it.cursor != it.root && it.cursor.parent != nil && it.cursor.parent.right == it.cursor {
		it.cursor = it.cursor.parent
	}

	if it.cursor == it.root || it.cursor.parent == nil {
		it.done = true
		it.cursor = nil
		return false
	}

	it.cursor = it.cursor.parent
	return true
}

// Node returns the current node. Only valid after Next returned true.
func (it *Iterator[T]) Node() *Node[T] {
	return it.cursor
}

// Done reports whether the iterator is exhausted.
func (it *Iterator[T]) Done() bool {
	return it.done
}

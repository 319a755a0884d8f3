// Package avltree implements a binary search tree with parent links and an
// AVL balanced tree built on top of it.
//
// A tree is not safe for concurrent use. Access it from a single goroutine
// or guard it with a mutex.
package avltree

import (
	"golang.org/x/exp/constraints"
)

// Comparator - three-way ordering of two keys.
// Returns a negative number when a sorts before b, positive when after, 0 for equal keys.
type Comparator[T any] func(a, b T) int

// Callback - callback function that is passed in Each.
type Callback[T any] func(node *Node[T])

// DeleteResult is the outcome of a Delete.
// Anchor is the lowest node whose subtree changed, nil when nothing was
// removed or the tree became empty.
type DeleteResult[T any] struct {
	Anchor  *Node[T]
	Success bool
}

// Tree - ordered tree interface, implemented by *BSTree and *AVLTree.
type Tree[T any] interface {
	Find(key T) *Node[T]
	Insert(key T) *Node[T]
	Delete(key T) DeleteResult[T]
	Contains(key T) bool
	Root() *Node[T]
	Comparator() Comparator[T]
	Size() int
	Height() int
	Width() int
	Min() *Node[T]
	Max() *Node[T]
	Iterator() *Iterator[T]
	Each(cb Callback[T])
	ToSlice() []T
}

var (
	_ Tree[int] = (*BSTree[int])(nil)
	_ Tree[int] = (*AVLTree[int])(nil)
)

// Ordered is the default comparator for ordered types.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// New - creates an empty AVL tree using the natural order of T.
func New[T constraints.Ordered]() *AVLTree[T] {
	return NewWithComparator[T](Ordered[T])
}

// From builds an AVL tree by inserting every element of seq in order.
// Later duplicates are discarded.
func From[T constraints.Ordered](seq []T) *AVLTree[T] {
	return FromComparator(seq, Ordered[T])
}

// FromComparator is From with an explicit comparator.
func FromComparator[T any](seq []T, cmp Comparator[T]) *AVLTree[T] {
	tree := NewWithComparator(cmp)
	for _, v := range seq {
		tree.Insert(v)
	}
	return tree
}

// NewOrderedBST - creates an empty unbalanced tree using the natural order of T.
func NewOrderedBST[T constraints.Ordered]() *BSTree[T] {
	return NewBST[T](Ordered[T])
}

// BSTFrom builds an unbalanced tree by inserting every element of seq in order.
func BSTFrom[T any](seq []T, cmp Comparator[T]) *BSTree[T] {
	tree := NewBST(cmp)
	for _, v := range seq {
		tree.Insert(v)
	}
	return tree
}

package avltree

import (
	"github.com/pkg/errors"
)

// Dir - side of a parent on which a child hangs.
type Dir uint8

// Sides of a node.
const (
	Left Dir = iota
	Right
)

// String returns "left" or "right".
func (d Dir) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (d Dir) Opposite() Dir {
	return d ^ 1
}

// Direction maps the result of comparator(current, key) to the side a search
// descends to: negative goes right, positive goes left.
func Direction(cmp int) (Dir, error) {
	switch {
	case cmp < 0:
		return Right, nil
	case cmp > 0:
		return Left, nil
	}
	return Left, ErrTie
}

// ChildDir returns the side of parent that holds child.
func ChildDir[T any](parent, child *Node[T]) (Dir, error) {
	if parent == nil || child == nil {
		return Left, ErrNotNode
	}
	switch {
	case child.parent != parent:
	case parent.left == child:
		return Left, nil
	case parent.right == child:
		return Right, nil
	}
	return Left, errors.Wrapf(ErrNotLinked, "child %v of %v", child.data, parent.data)
}

// mustChildDir is ChildDir for links the caller has just read.
func mustChildDir[T any](parent, child *Node[T]) Dir {
	dir, err := ChildDir(parent, child)
	if err != nil {
		panic(err)
	}
	return dir
}

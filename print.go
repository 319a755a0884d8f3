package avltree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes an ASCII picture of the tree to w, right subtrees above
// their parent and left subtrees below.
func Fprint[T any](w io.Writer, tree Tree[T]) error {
	return fprint(w, tree.Root(), "", rootBranch)
}

func fprint[T any](w io.Writer, n *Node[T], prefix string, br branch) error {
	if n == nil {
		return nil
	}
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		if err := fprint(w, n.right, prefix+pad, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v %+d\n", prefix, edge, n.data, Balance(n)); err != nil {
		return err
	}

	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		return fprint(w, n.left, prefix+pad, leftBranch)
	}
	return nil
}

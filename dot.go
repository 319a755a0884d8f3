package avltree

import (
	"fmt"

	"github.com/emicklei/dot"
)

// Dot renders the tree as a Graphviz digraph.
// Nodes are labelled with key, height and balance, edges with l or r.
func Dot[T any](tree Tree[T]) string {
	graph := dot.NewGraph(dot.Directed)

	ids := 0
	var traverse func(node *Node[T], parent *dot.Node, direction string)
	traverse = func(node *Node[T], parent *dot.Node, direction string) {
		ids++
		n := graph.Node(fmt.Sprintf("n%d", ids)).
			Label(fmt.Sprintf("%v H:%d B:%+d", node.data, node.Height(), Balance(node)))
		if parent != nil {
			parent.Edge(n, direction)
		}
		if node.left != nil {
			traverse(node.left, &n, "l")
		}
		if node.right != nil {
			traverse(node.right, &n, "r")
		}
	}

	if root := tree.Root(); root != nil {
		traverse(root, nil, "")
	}

	return graph.String()
}

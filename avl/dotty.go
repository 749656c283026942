package avl

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with key and balance factor.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	if t != nil && t.root != nil {
		var walk func(n *node[K, V])
		walk = func(n *node[K, V]) {
			ID := ids.alloc(n)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%v\\n%+d\" %s];\n", ID, n.key, balanceFactor(n), nodeDotStyles(n))
			for i, child := range [2]*node[K, V]{n.left, n.right} {
				if child == nil {
					if n.left != nil || n.right != nil {
						nilid := fmt.Sprintf("n%d_%d", ID, i)
						nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
						edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", ID, nilid)
					}
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				walk(child)
			}
		}
		walk(t.root)
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=circle"
	if n.left == nil && n.right == nil {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=\"" + hexcolors[min(n.height, len(hexcolors)-1)] + "\""
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

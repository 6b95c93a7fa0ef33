package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benz9527/xtree/lib/infra"
)

func plainLabel[K infra.OrderedKey](n *node[K]) string {
	return fmt.Sprint(n.key)
}

func colorLabel[K infra.OrderedKey](n *node[K]) string {
	if n.color == Red {
		return fmt.Sprintf("%v,R", n.key)
	}
	return fmt.Sprintf("%v,B", n.key)
}

// printTree prints the shape as (left)label(right), the nil
// subtrees are omitted. For example, "(10,R)20,B(30,R)".
func printTree[K infra.OrderedKey](root *node[K], label func(*node[K]) string) string {
	if root == nil {
		return ""
	}
	builder := strings.Builder{}
	var helper func(n *node[K])
	helper = func(n *node[K]) {
		if n.left != nil {
			builder.WriteString("(")
			helper(n.left)
			builder.WriteString(")")
		}
		builder.WriteString(label(n))
		if n.right != nil {
			builder.WriteString("(")
			helper(n.right)
			builder.WriteString(")")
		}
	}
	helper(root)
	return builder.String()
}

// graphviz exports the shape in dot format. The nodes are numbered
// by discovery order so that duplicated keys are still distinct vertices.
func graphviz[K infra.OrderedKey](root *node[K]) string {
	builder := strings.Builder{}
	builder.WriteString("digraph RBTree {\n")
	if root == nil {
		builder.WriteString("}\n")
		return builder.String()
	}

	type item struct {
		n  *node[K]
		id int
	}
	id := 0
	stack := []item{{n: root, id: id}}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]

		color := "grey"
		if aux.n.color == Red {
			color = "red"
		}
		_, _ = fmt.Fprintf(&builder, "node%d [label=%s, style=filled, color=%s]\n",
			aux.id, strconv.Quote(fmt.Sprint(aux.n.key)), color)

		children := make([]item, 0, 2)
		for _, child := range []*node[K]{aux.n.left, aux.n.right} {
			if child == nil {
				continue
			}
			id++
			children = append(children, item{n: child, id: id})
			_, _ = fmt.Fprintf(&builder, "node%d -> node%d\n", aux.id, id)
		}
		// Left child pops first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	builder.WriteString("}\n")
	return builder.String()
}

package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

var _ Node[int] = (*node[int])(nil)

// The left and right links own the subtrees. The parent link
// is only used to navigate upward and never owns anything.
type node[K infra.OrderedKey] struct {
	parent *node[K]
	left   *node[K]
	right  *node[K]
	key    K
	color  Color
}

func (n *node[K]) Key() K {
	return n.key
}

func (n *node[K]) Color() Color {
	return n.color
}

// Avoid returning a typed nil pointer wrapped in a non-nil interface.

func (n *node[K]) Left() Node[K] {
	if n == nil || n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[K]) Right() Node[K] {
	if n == nil || n.right == nil {
		return nil
	}
	return n.right
}

func (n *node[K]) Parent() Node[K] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node[K]) Next() Node[K] {
	if next := n.next(); next != nil {
		return next
	}
	return nil
}

func (n *node[K]) Prev() Node[K] {
	if prev := n.prev(); prev != nil {
		return prev
	}
	return nil
}

func (n *node[K]) isRed() bool {
	return n != nil && n.color == Red
}

// Nil children are black leaves.
func (n *node[K]) isBlack() bool {
	return n == nil || n.color == Black
}

func (n *node[K]) isRoot() bool {
	return n != nil && n.parent == nil
}

func (n *node[K]) direction() Direction {
	if n == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] nil node without direction")
	}
	if n.parent == nil {
		return Root
	}
	if n == n.parent.left {
		return Left
	}
	return Right
}

func (n *node[K]) grandparent() *node[K] {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

func (n *node[K]) sibling() *node[K] {
	p := n.parent
	if p == nil {
		return nil
	}
	if p.left != n {
		return p.left
	}
	return p.right
}

// siblingBeforeDeletion is only valid for a node that has been
// detached from its parent (the parent link is kept) and whose
// sibling is known to exist. The vacated slot is nil, so the
// sibling is the non-nil child of the parent.
func (n *node[K]) siblingBeforeDeletion() *node[K] {
	p := n.parent
	if p == nil {
		return nil
	}
	if p.left != nil && p.left != n {
		return p.left
	}
	return p.right
}

func (n *node[K]) uncle() *node[K] {
	if n.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

/*
n is the right child of P and moves up.

	     |                       |
	     P                       N
	    / \    rotateLeft(N)    / \
	   L   N   ============>   P   Nr
	      / \                 / \
	    Nl   Nr              L   Nl
*/
func (n *node[K]) rotateLeft() {
	if n == nil || n.parent == nil || n.parent.right != n {
		// impossible run to here
		panic( /* debug assertion */ "[tree] rotate left requires the node to be a right child")
	}

	p := n.parent
	gp := p.parent
	inner := n.left

	p.right = inner
	if inner != nil {
		inner.parent = p
	}
	n.left = p
	p.parent = n
	n.parent = gp

	if gp != nil {
		if gp.left == p {
			gp.left = n
		} else {
			gp.right = n
		}
	}
}

/*
n is the left child of P and moves up.

	       |                     |
	       P                     N
	      / \  rotateRight(N)   / \
	     N   R  ===========>   Nl  P
	    / \                       / \
	  Nl   Nr                   Nr   R
*/
func (n *node[K]) rotateRight() {
	if n == nil || n.parent == nil || n.parent.left != n {
		// impossible run to here
		panic( /* debug assertion */ "[tree] rotate right requires the node to be a left child")
	}

	p := n.parent
	gp := p.parent
	inner := n.right

	p.left = inner
	if inner != nil {
		inner.parent = p
	}
	n.right = p
	p.parent = n
	n.parent = gp

	if gp != nil {
		if gp.left == p {
			gp.left = n
		} else {
			gp.right = n
		}
	}
}

func (n *node[K]) minimum() *node[K] {
	aux := n
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (n *node[K]) maximum() *node[K] {
	aux := n
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The next node of the current node is its successor in sorted order.
func (n *node[K]) next() *node[K] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.minimum()
	}

	x, aux := n, n.parent
	// Backtrack to the first ancestor reached from its left subtree.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

// The prev node of the current node is its predecessor in sorted order.
func (n *node[K]) prev() *node[K] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return n.left.maximum()
	}

	x, aux := n, n.parent
	for aux != nil && x == aux.left {
		x = aux
		aux = aux.parent
	}
	return aux
}

// height counts the nodes on the longest root-to-leaf path.
func (n *node[K]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// unlink detaches n from its parent slot and clears its own links.
func (n *node[K]) unlink() {
	if p := n.parent; p != nil {
		if p.left == n {
			p.left = nil
		} else if p.right == n {
			p.right = nil
		}
	}
	n.parent, n.left, n.right = nil, nil, nil
}

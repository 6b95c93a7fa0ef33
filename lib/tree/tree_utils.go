package tree

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// tree rule validation utilities.

// Preorder traversal, stops at the first error.
func walk[K infra.OrderedKey](root Node[K], fn func(n Node[K]) error) error {
	if root == nil {
		return nil
	}
	stack := make([]Node[K], 0, 32)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if err := fn(aux); err != nil {
			return err
		}
		if r := aux.Right(); r != nil {
			stack = append(stack, r)
		}
		if l := aux.Left(); l != nil {
			stack = append(stack, l)
		}
	}
	return nil
}

// OrderValidate checks that the inorder sequence is non-decreasing
// and that every node sits between its children (left <= node <= right).
// Equal keys may be found on both sides after rotations.
func OrderValidate[K infra.OrderedKey](tree BST[K]) error {
	err := walk[K](tree.Root(), func(n Node[K]) error {
		if l := n.Left(); l != nil && l.Key() > n.Key() {
			return fmt.Errorf("%w: left child %v > %v", ErrOrderViolation, l.Key(), n.Key())
		}
		if r := n.Right(); r != nil && r.Key() < n.Key() {
			return fmt.Errorf("%w: right child %v < %v", ErrOrderViolation, r.Key(), n.Key())
		}
		return nil
	})
	if err != nil {
		return err
	}

	var (
		prev    K
		hasPrev bool
	)
	tree.Foreach(func(idx int64, key K) bool {
		if hasPrev && key < prev {
			err = fmt.Errorf("%w: %v after %v at %d", ErrOrderViolation, key, prev, idx)
			return false
		}
		prev, hasPrev = key, true
		return true
	})
	return err
}

// LinkValidate checks that every child points back to its parent,
// that the root has no parent and that the node count equals the length.
func LinkValidate[K infra.OrderedKey](tree BST[K]) error {
	root := tree.Root()
	if root != nil && root.Parent() != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrLinkViolation, root.Key())
	}
	count := int64(0)
	err := walk[K](root, func(n Node[K]) error {
		count++
		for _, child := range []Node[K]{n.Left(), n.Right()} {
			if child != nil && child.Parent() != n {
				return fmt.Errorf("%w: child %v of %v", ErrLinkViolation, child.Key(), n.Key())
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if count != tree.Len() {
		return fmt.Errorf("%w: %d nodes, length %d", ErrSizeViolation, count, tree.Len())
	}
	return nil
}

func RootColorValidate[K infra.OrderedKey](tree RBTree[K]) error {
	if root := tree.Root(); root != nil && root.Color() != Black {
		return fmt.Errorf("%w: root %v", ErrRootColor, root.Key())
	}
	return nil
}

func RedViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	return walk[K](tree.Root(), func(n Node[K]) error {
		if n.Color() != Red {
			return nil
		}
		for _, child := range []Node[K]{n.Left(), n.Right()} {
			if child != nil && child.Color() == Red {
				return fmt.Errorf("%w: red %v has red child %v", ErrRedViolation, n.Key(), child.Key())
			}
		}
		return nil
	})
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
	        /  \
	     <8>    <15>
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Each NIL leaf to root black depth are equal.
*/
func BlackViolationValidate[K infra.OrderedKey](tree RBTree[K]) error {
	var blackHeight func(n Node[K]) (int, error)
	blackHeight = func(n Node[K]) (int, error) {
		if n == nil {
			return 0, nil
		}
		lh, err := blackHeight(n.Left())
		if err != nil {
			return 0, err
		}
		rh, err := blackHeight(n.Right())
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, fmt.Errorf("%w: %v has black height %d on the left and %d on the right",
				ErrBlackViolation, n.Key(), lh, rh)
		}
		if n.Color() == Black {
			lh++
		}
		return lh, nil
	}
	_, err := blackHeight(tree.Root())
	return err
}

func HeightValidate[K infra.OrderedKey](tree RBTree[K]) error {
	n, h := tree.Len(), tree.Height()
	if bound := 2 * math.Log2(float64(n+1)); float64(h) > bound {
		return fmt.Errorf("%w: height %d, length %d", ErrHeightViolation, h, n)
	}
	return nil
}

// ValidateBST returns all the binary search tree violations.
func ValidateBST[K infra.OrderedKey](tree BST[K]) error {
	return multierr.Combine(
		OrderValidate[K](tree),
		LinkValidate[K](tree),
	)
}

// ValidateRBTree returns all the binary search tree and
// red-black tree violations.
func ValidateRBTree[K infra.OrderedKey](tree RBTree[K]) error {
	return multierr.Combine(
		ValidateBST[K](tree),
		RootColorValidate[K](tree),
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
		HeightValidate[K](tree),
	)
}

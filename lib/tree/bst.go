package tree

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

var _ BST[int] = (*bst[int])(nil)

// bst is the unbalanced binary search tree. It is usable on its own
// and it is the structural core the red-black tree delegates to.
type bst[K infra.OrderedKey] struct {
	root  *node[K]
	count int64
	opts  *treeOptions
	stats *treeStats
}

func (t *bst[K]) Len() int64 {
	return t.count
}

func (t *bst[K]) Height() int {
	return t.root.height()
}

func (t *bst[K]) Root() Node[K] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// searchNode returns the highest node holding the key.
func (t *bst[K]) searchNode(key K) *node[K] {
	for aux := t.root; aux != nil; {
		res := infra.Compare(key, aux.key)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

func (t *bst[K]) Search(key K) bool {
	return t.searchNode(key) != nil
}

// insertNode attaches a new leaf and returns it.
// Equal keys go to the left subtree.
func (t *bst[K]) insertNode(key K, color Color) *node[K] {
	z := &node[K]{
		key:   key,
		color: color,
	}
	t.count++
	if t.root == nil {
		t.root = z
		return z
	}

	var y *node[K]
	for x := t.root; x != nil; {
		y = x
		if key <= x.key {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	if key <= y.key {
		y.left = z
	} else {
		y.right = z
	}
	return z
}

func (t *bst[K]) Insert(key K) {
	t.insertNode(key, Black)
	t.stats.IncreaseInsertCount()
	t.stats.RecordSize(1)
	t.afterMutation()
}

/*
removeNode removes the highest node holding the key.

d1: D has a left child. Copy the pred key up into D and splice
the pred out. The pred has no right child.

	    D                 P'
	   / \               / \
	  L   R   ======>   L   R
	   \                 \
	    P'                Pl
	   /
	  Pl

d2: D has only a right child. Symmetric with the succ, which
has no left child.

d3: D is a leaf, detach it from its parent or clear the root.

The returned node is the one physically detached from the tree,
not always the one matched the key. Its parent link and its
child link are kept for the red-black repair. It returns nil
without error if the sole root was removed.
*/
func (t *bst[K]) removeNode(key K) (*node[K], error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	d := t.searchNode(key)
	if d == nil {
		return nil, ErrKeyNotFound
	}
	t.count--

	var y *node[K]
	switch {
	case /* d1 */ d.left != nil:
		y = d.prev()
		d.key = y.key
		if y.parent == d {
			d.left = y.left
		} else {
			y.parent.right = y.left
		}
		if y.left != nil {
			y.left.parent = y.parent
		}
	case /* d2 */ d.right != nil:
		y = d.next()
		d.key = y.key
		if y.parent == d {
			d.right = y.right
		} else {
			y.parent.left = y.right
		}
		if y.right != nil {
			y.right.parent = y.parent
		}
	case /* d3 */ d.isRoot():
		t.root = nil
		return nil, nil
	default /* d3 */ :
		y = d
		if d.parent.left == d {
			d.parent.left = nil
		} else {
			d.parent.right = nil
		}
	}
	return y, nil
}

func (t *bst[K]) Delete(key K) error {
	y, err := t.removeNode(key)
	if err != nil {
		return err
	}
	if y != nil {
		y.parent, y.left, y.right = nil, nil, nil
	}
	t.stats.IncreaseDeleteCount()
	t.stats.RecordSize(-1)
	t.afterMutation()
	return nil
}

func (t *bst[K]) Min() (res K, ok bool) {
	if t.root == nil {
		return res, false
	}
	return t.root.minimum().key, true
}

func (t *bst[K]) Max() (res K, ok bool) {
	if t.root == nil {
		return res, false
	}
	return t.root.maximum().key, true
}

func (t *bst[K]) LargestLessThan(key K, strict ...bool) (res K, ok bool) {
	isStrict := len(strict) <= 0 || strict[0]
	for aux := t.root; aux != nil; {
		switch {
		case key < aux.key:
			aux = aux.left
		case key == aux.key && isStrict:
			aux = aux.left
		case key == aux.key:
			return key, true
		default:
			res, ok = aux.key, true
			aux = aux.right
		}
	}
	return res, ok
}

func (t *bst[K]) SmallestGreaterThan(key K, strict ...bool) (res K, ok bool) {
	isStrict := len(strict) <= 0 || strict[0]
	for aux := t.root; aux != nil; {
		switch {
		case key > aux.key:
			aux = aux.right
		case key == aux.key && isStrict:
			aux = aux.right
		case key == aux.key:
			return key, true
		default:
			res, ok = aux.key, true
			aux = aux.left
		}
	}
	return res, ok
}

// Inorder traversal with an explicit stack, O(height) space.
func (t *bst[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*node[K], 0, 32)
		defer func() {
			clear(stack)
		}()

		for aux := t.root; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
		for size := len(stack); size > 0; size = len(stack) {
			aux := stack[size-1]
			stack = stack[:size-1]
			if !yield(aux.key) {
				return
			}
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (t *bst[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*node[K], 0, 32)
		defer func() {
			clear(stack)
		}()

		for aux := t.root; aux != nil; aux = aux.right {
			stack = append(stack, aux)
		}
		for size := len(stack); size > 0; size = len(stack) {
			aux := stack[size-1]
			stack = stack[:size-1]
			if !yield(aux.key) {
				return
			}
			for aux = aux.left; aux != nil; aux = aux.right {
				stack = append(stack, aux)
			}
		}
	}
}

func (t *bst[K]) Foreach(action func(idx int64, key K) bool) {
	idx := int64(0)
	for key := range t.All() {
		if !action(idx, key) {
			return
		}
		idx++
	}
}

func (t *bst[K]) String() string {
	return printTree(t.root, plainLabel[K])
}

// Release unlinks all nodes top-down.
func (t *bst[K]) Release() {
	aux := t.root
	t.root = nil
	if aux == nil {
		return
	}

	stack := make([]*node[K], 0, 32)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		if aux.left != nil {
			stack = append(stack, aux.left)
		}
		if aux.right != nil {
			stack = append(stack, aux.right)
		}
		aux.parent, aux.left, aux.right = nil, nil, nil
	}
	t.stats.RecordSize(-t.count)
	t.count = 0
}

func (t *bst[K]) afterMutation() {
	if !t.opts.isValidate {
		return
	}
	if err := ValidateBST[K](t); err != nil {
		t.opts.logger.Error("bst validation failed", zap.Error(err))
		// Fail fast, the tree is corrupted.
		panic(err)
	}
}

func buildBalanced[K infra.OrderedKey](sorted []K, parent *node[K]) *node[K] {
	if len(sorted) <= 0 {
		return nil
	}
	mid := len(sorted) >> 1
	n := &node[K]{
		key:    sorted[mid],
		parent: parent,
	}
	n.left = buildBalanced[K](sorted[:mid], n)
	n.right = buildBalanced[K](sorted[mid+1:], n)
	return n
}

func newBST[K infra.OrderedKey](opts *treeOptions) *bst[K] {
	return &bst[K]{
		opts:  opts,
		stats: newTreeStats(opts),
	}
}

// NewBST sorts a copy of the keys once and builds a balanced
// tree by splitting around the midpoint recursively.
func NewBST[K infra.OrderedKey](keys []K, opts ...TreeOption) BST[K] {
	t := newBST[K](newTreeOptions(opts...))
	if len(keys) > 0 {
		sorted := slices.Clone(keys)
		slices.Sort(sorted)
		t.root = buildBalanced[K](sorted, nil)
		t.count = int64(len(sorted))
		t.stats.RecordSize(t.count)
		t.afterMutation()
	}
	return t
}

package tree

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

var _ RBTree[int] = (*rbTree[int])(nil)

const (
	insertRepairMsg = "insert repair"
	deleteRepairMsg = "delete repair"
)

// rbTree delegates the raw structural mutations and all
// read operations to the unbalanced core, then repairs the
// red-black properties around the touched node.
type rbTree[K infra.OrderedKey] struct {
	core *bst[K]
}

func (t *rbTree[K]) Len() int64 { return t.core.Len() }
func (t *rbTree[K]) Height() int { return t.core.Height() }
func (t *rbTree[K]) Root() Node[K] { return t.core.Root() }
func (t *rbTree[K]) Search(key K) bool { return t.core.Search(key) }
func (t *rbTree[K]) Min() (K, bool) { return t.core.Min() }
func (t *rbTree[K]) Max() (K, bool) { return t.core.Max() }
func (t *rbTree[K]) All() iter.Seq[K] { return t.core.All() }
func (t *rbTree[K]) Backward() iter.Seq[K] { return t.core.Backward() }
func (t *rbTree[K]) Foreach(action func(idx int64, key K) bool) { t.core.Foreach(action) }
func (t *rbTree[K]) Release() { t.core.Release() }

func (t *rbTree[K]) LargestLessThan(key K, strict ...bool) (K, bool) {
	return t.core.LargestLessThan(key, strict...)
}

func (t *rbTree[K]) SmallestGreaterThan(key K, strict ...bool) (K, bool) {
	return t.core.SmallestGreaterThan(key, strict...)
}

func (t *rbTree[K]) String() string {
	return printTree(t.core.root, colorLabel[K])
}

func (t *rbTree[K]) Graphviz() string {
	return graphviz(t.core.root)
}

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// The longest path is at most twice the shortest one, so the
// height is bounded by 2*log2(n+1).

func (t *rbTree[K]) Insert(key K) {
	x := t.core.insertNode(key, Red)
	x = t.insertRepair(x)
	t.resolveRoot(x)
	t.core.stats.IncreaseInsertCount()
	t.core.stats.RecordSize(1)
	t.afterMutation()
}

/*
New node X is red.

<X> is a RED node.
[X] is a BLACK node (or NIL).

i1: X is the root, repaint it into black.

i2: X's parent P is black, nothing is violated.

i3: Both the parent P and the uncle U are red, so the grandpa G
is black. Push the red-violation up to G.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

i4: P is red but U is black. If X is an inner grandchild, rotate X
up first so that the outer shape is reached, X takes P's place.
Then rotate the middle node around G and repaint.

	    [G]                 <G>                [P]
	    / \    rotate(P)    / \    repaint     / \
	  <P> [U]  ========>  <X> [G]  ======>   <X> <G>
	  /                         \                  \
	<X>                         [U]                [U]
*/
func (t *rbTree[K]) insertRepair(x *node[K]) *node[K] {
	for {
		if /* i1 */ x.isRoot() {
			t.traceRepair(insertRepairMsg, "root", x)
			x.color = Black
			return x
		}

		if /* i2 */ x.parent.isBlack() {
			t.traceRepair(insertRepairMsg, "black-parent", x)
			return x
		}

		// The red parent is never the root, so G exists and it is black.
		gp := x.grandparent()
		if gp == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] red parent without grandparent")
		}

		if /* i3 */ u := x.uncle(); u.isRed() {
			t.traceRepair(insertRepairMsg, "red-uncle", x)
			x.parent.color = Black
			u.color = Black
			gp.color = Red
			x = gp
			continue
		}

		/* i4 */
		t.traceRepair(insertRepairMsg, "rotate", x)
		if x == x.parent.left && x.parent == gp.right {
			t.rotateRight(x)
		} else if x == x.parent.right && x.parent == gp.left {
			t.rotateLeft(x)
		} else {
			x = x.parent
		}

		if gp.left == x {
			t.rotateRight(x)
		} else {
			t.rotateLeft(x)
		}
		x.color = Black
		x.left.color, x.right.color = Red, Red
		return x
	}
}

func (t *rbTree[K]) Delete(key K) error {
	y, err := t.core.removeNode(key)
	if err != nil {
		return err
	}

	switch {
	case y == nil:
		// The sole root was removed.
	case y.isRed():
		t.traceRepair(deleteRepairMsg, "red-detached", y)
	case y.left != nil || y.right != nil:
		// A black node with exactly one child, the child must be red.
		t.traceRepair(deleteRepairMsg, "red-child", y)
		if y.left != nil {
			y.left.color = Black
		} else {
			y.right.color = Black
		}
	default:
		t.deleteRepair(y)
		t.resolveRoot(y.parent)
	}
	if y != nil {
		y.parent, y.left, y.right = nil, nil, nil
	}

	t.core.stats.IncreaseDeleteCount()
	t.core.stats.RecordSize(-1)
	t.afterMutation()
	return nil
}

/*
All paths through X are one black short. X may be the black
leaf just detached from the tree, its parent link is still valid
and its old slot is nil.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

r1: X has no parent, the whole tree lost one black, done.

r2: X's sibling S is red, so P and the nephews are black.
Rotate S up toward X's side, swap S and P colors, then
X has a black sibling (the old inner nephew).

	  [P]                   <S>               [S]
	  / \    rotate(S)      / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======> <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

r3: S and both nephews are black. Repaint S into red.
If P is red, repaint it into black and done, otherwise
P is one black short, continue at P.

r4: S is black and at least one nephew is red.
If the far nephew Sd is black, rotate the near nephew Sc up
to take S's place and repaint, then the far nephew is red.
Rotate S around P, swap S and P colors, repaint Sd into black.

	  {P}                   {S}                {S}
	  / \    rotate(S)      / \    repaint     / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 {Sc} <Sd>          [X] {Sc}           [X] {Sc}
*/
func (t *rbTree[K]) deleteRepair(x *node[K]) {
	for {
		p := x.parent
		if /* r1 */ p == nil {
			t.traceRepair(deleteRepairMsg, "root", x)
			return
		}

		sib := x.siblingBeforeDeletion()
		if sib == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] black deficiency without sibling")
		}

		if /* r2 */ sib.isRed() {
			t.traceRepair(deleteRepairMsg, "red-sibling", x)
			if sib == p.right {
				t.rotateLeft(sib)
			} else {
				t.rotateRight(sib)
			}
			sib.color = Black
			p.color = Red
			sib = x.siblingBeforeDeletion()
		}

		if /* r3 */ sib.left.isBlack() && sib.right.isBlack() {
			t.traceRepair(deleteRepairMsg, "black-nephews", x)
			sib.color = Red
			if p.isRed() {
				p.color = Black
				return
			}
			x = p
			continue
		}

		/* r4 */
		t.traceRepair(deleteRepairMsg, "red-nephew", x)
		if sib == p.left && sib.left.isBlack() {
			sib = sib.right
			t.rotateLeft(sib)
			sib.color = Black
			sib.left.color = Red
		} else if sib == p.right && sib.right.isBlack() {
			sib = sib.left
			t.rotateRight(sib)
			sib.color = Black
			sib.right.color = Red
		}

		if sib == p.left {
			t.rotateRight(sib)
			sib.left.color = Black
		} else {
			t.rotateLeft(sib)
			sib.right.color = Black
		}
		sib.color, p.color = p.color, sib.color
		return
	}
}

func (t *rbTree[K]) rotateLeft(x *node[K]) {
	x.rotateLeft()
	t.core.stats.IncreaseRotationCount(Left)
}

func (t *rbTree[K]) rotateRight(x *node[K]) {
	x.rotateRight()
	t.core.stats.IncreaseRotationCount(Right)
}

// resolveRoot walks up from the last touched node,
// the rotations may have replaced the root.
func (t *rbTree[K]) resolveRoot(from *node[K]) {
	if from == nil {
		return
	}
	aux := from
	for ; aux.parent != nil; aux = aux.parent {
	}
	t.core.root = aux
}

func (t *rbTree[K]) traceRepair(msg, repairCase string, x *node[K]) {
	t.core.stats.IncreaseRepairCount(repairCase)
	if ce := t.core.opts.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("case", repairCase),
			zap.Any("key", x.key),
		)
	}
}

func (t *rbTree[K]) afterMutation() {
	if !t.core.opts.isValidate {
		return
	}
	if err := ValidateRBTree[K](t); err != nil {
		t.core.opts.logger.Error("rbtree validation failed", zap.Error(err))
		// Fail fast, the tree is corrupted.
		panic(err)
	}
}

// NewRBTree sorts a copy of the keys once and inserts them one by one.
func NewRBTree[K infra.OrderedKey](keys []K, opts ...TreeOption) RBTree[K] {
	t := &rbTree[K]{
		core: newBST[K](newTreeOptions(opts...)),
	}
	if len(keys) > 0 {
		sorted := slices.Clone(keys)
		slices.Sort(sorted)
		for _, key := range sorted {
			t.Insert(key)
		}
	}
	return t
}

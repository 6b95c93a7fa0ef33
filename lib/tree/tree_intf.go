package tree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/benz9527/xtree/lib/infra"
)

type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "Unknown"
}

type Direction int8

const (
	Left Direction = -1 + iota
	Root
	Right
)

var (
	ErrKeyNotFound     = errors.New("[tree] key not found")
	ErrEmptyTree       = fmt.Errorf("[tree] empty tree, %w", ErrKeyNotFound)
	ErrOrderViolation  = errors.New("[tree] in-order violation")
	ErrLinkViolation   = errors.New("[tree] parent link violation")
	ErrSizeViolation   = errors.New("[tree] node count mismatches the length")
	ErrRootColor       = errors.New("[rbtree] root is not black")
	ErrRedViolation    = errors.New("[rbtree] red violation")
	ErrBlackViolation  = errors.New("[rbtree] black violation")
	ErrHeightViolation = errors.New("[rbtree] height exceeds 2*log2(n+1)")
)

// Node is the read-only view of a tree vertex.
// The color is only meaningful for red-black tree nodes.
type Node[K infra.OrderedKey] interface {
	Key() K
	Color() Color
	Left() Node[K]
	Right() Node[K]
	Parent() Node[K]
	// Next returns the in-order successor or nil.
	Next() Node[K]
	// Prev returns the in-order predecessor or nil.
	Prev() Node[K]
}

// BST is the ordered key tree surface shared by the
// unbalanced binary search tree and the red-black tree.
// Equal keys are kept and routed to the left subtree.
// Not thread safe, callers have to wrap every call with
// a single writer lock if they share the tree.
type BST[K infra.OrderedKey] interface {
	Len() int64
	Height() int
	Root() Node[K]
	Insert(key K)
	// Delete removes the highest node holding the key.
	Delete(key K) error
	Search(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	// LargestLessThan returns the largest key < key (<= key if strict is false).
	// The strict is true by default.
	LargestLessThan(key K, strict ...bool) (K, bool)
	// SmallestGreaterThan returns the smallest key > key (>= key if strict is false).
	// The strict is true by default.
	SmallestGreaterThan(key K, strict ...bool) (K, bool)
	// All returns a lazy ascending in-order sequence. It can be ranged
	// repeatedly, every range restarts from the minimum.
	All() iter.Seq[K]
	Backward() iter.Seq[K]
	Foreach(action func(idx int64, key K) bool)
	String() string
	Release()
}

type RBTree[K infra.OrderedKey] interface {
	BST[K]
	// Graphviz exports the tree shape as a dot digraph.
	// https://dreampuf.github.io/GraphvizOnline/
	Graphviz() string
}

package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func newRawRBTree(root *node[int], count int64) *rbTree[int] {
	return &rbTree[int]{
		core: &bst[int]{
			root:  root,
			count: count,
			opts:  newTreeOptions(),
		},
	}
}

func link(p *node[int], l, r *node[int]) *node[int] {
	p.left, p.right = l, r
	if l != nil {
		l.parent = p
	}
	if r != nil {
		r.parent = p
	}
	return p
}

func TestValidateRBTree(t *testing.T) {
	type testcase struct {
		name     string
		tree     func() *rbTree[int]
		expected []error
	}
	testcases := []testcase{
		{
			name: "valid",
			tree: func() *rbTree[int] {
				root := link(&node[int]{key: 20}, &node[int]{key: 10, color: Red}, &node[int]{key: 30, color: Red})
				return newRawRBTree(root, 3)
			},
		},
		{
			name: "empty",
			tree: func() *rbTree[int] {
				return newRawRBTree(nil, 0)
			},
		},
		{
			name: "red root",
			tree: func() *rbTree[int] {
				return newRawRBTree(&node[int]{key: 10, color: Red}, 1)
			},
			expected: []error{ErrRootColor},
		},
		{
			name: "red node with red child",
			tree: func() *rbTree[int] {
				l := link(&node[int]{key: 10, color: Red}, &node[int]{key: 5, color: Red}, nil)
				return newRawRBTree(link(&node[int]{key: 20}, l, nil), 3)
			},
			expected: []error{ErrRedViolation},
		},
		{
			name: "uneven black height",
			tree: func() *rbTree[int] {
				return newRawRBTree(link(&node[int]{key: 20}, &node[int]{key: 10}, nil), 2)
			},
			expected: []error{ErrBlackViolation},
		},
		{
			name: "left child greater than parent",
			tree: func() *rbTree[int] {
				root := link(&node[int]{key: 20}, &node[int]{key: 30, color: Red}, &node[int]{key: 40, color: Red})
				return newRawRBTree(root, 3)
			},
			expected: []error{ErrOrderViolation},
		},
		{
			name: "broken parent link",
			tree: func() *rbTree[int] {
				root := link(&node[int]{key: 20}, &node[int]{key: 10, color: Red}, nil)
				root.left.parent = nil
				return newRawRBTree(root, 2)
			},
			expected: []error{ErrLinkViolation},
		},
		{
			name: "length mismatch",
			tree: func() *rbTree[int] {
				return newRawRBTree(&node[int]{key: 20}, 2)
			},
			expected: []error{ErrSizeViolation},
		},
		{
			name: "red root and red violation",
			tree: func() *rbTree[int] {
				root := link(&node[int]{key: 20, color: Red}, &node[int]{key: 10, color: Red}, &node[int]{key: 30, color: Red})
				return newRawRBTree(root, 3)
			},
			expected: []error{ErrRootColor, ErrRedViolation},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			err := ValidateRBTree[int](tc.tree())
			if len(tc.expected) <= 0 {
				require.NoError(tt, err)
				return
			}
			require.Len(tt, multierr.Errors(err), len(tc.expected))
			for _, target := range tc.expected {
				require.ErrorIs(tt, err, target)
			}
		})
	}
}

func TestHeightValidate(t *testing.T) {
	chain := link(&node[int]{key: 30}, link(&node[int]{key: 20}, &node[int]{key: 10}, nil), nil)
	require.ErrorIs(t, HeightValidate[int](newRawRBTree(chain, 1)), ErrHeightViolation)
	require.NoError(t, HeightValidate[int](newRawRBTree(chain, 7)))
}

func TestValidateBST_Duplicates(t *testing.T) {
	// Equal keys on both sides are accepted.
	root := link(&node[int]{key: 5}, &node[int]{key: 5}, &node[int]{key: 5})
	tree := newRawRBTree(root, 3)
	require.NoError(t, ValidateBST[int](tree.core))
	require.NoError(t, OrderValidate[int](tree))
}

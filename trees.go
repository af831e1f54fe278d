// Package trees ties the balanced tree variants together behind one
// interface. The variants share the read-only contract from abstract and
// differ only in how they keep themselves balanced.
package trees

import (
	"fmt"

	"github.com/treekit/trees/abstract"
	"github.com/treekit/trees/avl"
	"github.com/treekit/trees/llrb"
	"github.com/treekit/trees/rbtree"
)

// Tree is the operation set every variant provides. All operations are
// total: inserting a present key overwrites, deleting or searching an
// absent key is a silent negative outcome.
type Tree[T abstract.Ordered] interface {
	Insert(v T)
	Delete(v T)
	Contains(v T) bool
	Min() (T, bool)
	Max() (T, bool)
	Height() uint
	CountLeaves() uint
	InOrder() []T
	PreOrder() []T
	IsEmpty() bool
	Sprint() string
}

// Variant names accepted by New.
const (
	KindLLRB   = "llrb"
	KindRBTree = "rbtree"
	KindAVL    = "avl"
)

// Kinds lists the supported variant names.
func Kinds() []string {
	return []string{KindLLRB, KindRBTree, KindAVL}
}

// New returns an empty tree of the named variant.
func New[T abstract.Ordered](kind string) (Tree[T], error) {
	switch kind {
	case KindLLRB:
		return llrb.New[T](), nil
	case KindRBTree:
		return rbtree.New[T](), nil
	case KindAVL:
		return avl.New[T](), nil
	default:
		return nil, fmt.Errorf("unknown tree variant %q", kind)
	}
}
